package cmd

import (
	"fmt"
	"os"

	"github.com/flytaly/mdsite/pkg/parser"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print the HTML fragment of a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		html, err := parser.Render(string(data))
		if err != nil {
			return err
		}
		if title, _ := cmd.Flags().GetBool("title"); title {
			t, err := parser.ExtractTitle(string(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolP("title", "t", false, "print the page title before the content")
}
