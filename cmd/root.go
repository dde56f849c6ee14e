package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flytaly/mdsite/pkg/log"
	"github.com/flytaly/mdsite/pkg/site"
	"github.com/spf13/cobra"
)

type ProgramCfg struct {
	Root    string // directory with static files, content and template
	LogPath string
	Site    site.Config
}

func getConfig(cmd *cobra.Command) (ProgramCfg, error) {
	flags := cmd.Flags()
	root, _ := flags.GetString("root")
	logPath, _ := flags.GetString("log")
	static, _ := flags.GetString("static")
	content, _ := flags.GetString("content")
	template, _ := flags.GetString("template")
	public, _ := flags.GetString("public")

	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return ProgramCfg{}, err
		}
	}
	if !filepath.IsAbs(public) {
		public = filepath.Join(root, public)
	}

	return ProgramCfg{
		Root:    root,
		LogPath: logPath,
		Site: site.Config{
			StaticDir:    fsPath(static),
			ContentDir:   fsPath(content),
			TemplatePath: fsPath(template),
			PublicDir:    public,
		},
	}, nil
}

// fsPath converts a path relative to the root into an fs.FS path
func fsPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func newGenerator(cfg ProgramCfg) (*site.Generator, log.Logger, error) {
	logger, err := log.New(cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	g := site.New(os.DirFS(cfg.Root), cfg.Site, site.WithLogger(logger))
	return g, logger, nil
}

func build(g *site.Generator) error {
	start := time.Now()
	report, err := g.Build()
	if err != nil {
		printError(err)
		return err
	}
	printReport(report, g.Config().PublicDir, time.Since(start))
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdsite",
	Short: "Generate a static site from markdown files",
	Long: `Generate a static site from markdown files

Launch the program in a directory that contains the static files, the content
with markdown pages and the page template. Static files are copied to the
public directory, every markdown page is rendered into the template.

Use 'watch' command to rebuild the site on changes.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		g, logger, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		defer logger.Close()
		return build(g)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	defaults := site.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringP("root", "r", "", "path to the site directory (default is the working directory)")
	flags.StringP("log", "l", "", "path to the log file")
	flags.String("static", defaults.StaticDir, "directory with static files, relative to the root")
	flags.String("content", defaults.ContentDir, "directory with markdown pages, relative to the root")
	flags.String("template", defaults.TemplatePath, "page template, relative to the root")
	flags.String("public", defaults.PublicDir, "output directory")
}
