package cmd

import (
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flytaly/mdsite/pkg/fswatcher"
	"github.com/flytaly/mdsite/pkg/log"
	"github.com/flytaly/mdsite/pkg/site"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Build the site and rebuild it when sources change",
	Long: `Build the site and rebuild it when static files, content or the template change.

Internally, watcher polls the filesystem, so don't use the program with the
root directory of the filesystem or in the folders with large number of files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetDuration("interval")

		g, logger, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		defer logger.Close()

		// a broken page shouldn't stop the watcher
		_ = build(g)

		return watch(g, fswatcher.NewFsPoller(os.DirFS(cfg.Root)), interval, logger)
	},
}

var ExcludedDirs = map[string]bool{"node_modules": true}

func shouldSkip(fi fs.FileInfo) bool {
	name := fi.Name()
	if name == "." { // don't skip root folder
		return false
	}
	return strings.HasPrefix(name, ".") || (fi.IsDir() && ExcludedDirs[name])
}

func watch(g *site.Generator, w fswatcher.FsWatcher, interval time.Duration, logger log.Logger) error {
	w.AddShouldSkipHook(shouldSkip)

	cfg := g.Config()
	for _, name := range []string{cfg.StaticDir, cfg.ContentDir, cfg.TemplatePath} {
		if err := w.Add(name); err != nil {
			logger.Error("Couldn't watch %s: %v", name, err)
		}
	}

	sign := make(chan os.Signal, 1)
	signal.Notify(sign, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sign)

	go func() {
		if err := w.Start(interval); err != nil {
			logger.Error("%v", err)
		}
	}()
	printWatching(cfg)

	// events of one scan arrive in a burst, rebuild once after it
	var rebuild <-chan time.Time
	for {
		select {
		case e := <-w.Events():
			logger.Info("%s %s", e.Op, e.Name)
			if rebuild == nil {
				rebuild = time.After(interval)
			}
		case err := <-w.Errors():
			logger.Error("%v", err)
		case <-rebuild:
			rebuild = nil
			_ = build(g)
		case <-sign:
			return w.Close()
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 500*time.Millisecond, "poll interval duration (e.g. 1s, 500ms...)")
}
