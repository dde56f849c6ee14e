package cmd

import (
	"fmt"
	"time"

	"github.com/flytaly/mdsite/pkg/site"
	"github.com/gookit/color"
)

const maxPathWidth = 60

func formatReport(r site.Report, public string, elapsed time.Duration) string {
	output := fmt.Sprintf(" %s  Copied %s files, generated %s pages in %s\n",
		color.Green.Sprint("✓"),
		color.Cyan.Sprint(r.Files),
		color.Cyan.Sprint(r.Pages),
		elapsed.Round(time.Millisecond))
	if r.Warnings > 0 {
		output += fmt.Sprintf(" %s  %d pages are not well formed, see the log\n",
			color.Yellow.Sprint("!"), r.Warnings)
	}
	output += fmt.Sprintf("    Output: %s", color.Cyan.Sprint(tail(public, maxPathWidth)))
	return output
}

func printReport(r site.Report, public string, elapsed time.Duration) {
	fmt.Println(formatReport(r, public, elapsed))
}

func printError(err error) {
	fmt.Printf(" %s  %s\n", color.Red.Sprint("✗"), err)
}

func printWatching(cfg site.Config) {
	fmt.Printf(" %s  Watching %s, %s and %s\n",
		color.Green.Sprint("➜"),
		color.Cyan.Sprint(cfg.StaticDir),
		color.Cyan.Sprint(cfg.ContentDir),
		color.Cyan.Sprint(cfg.TemplatePath))
}

// tail shortens s to its last n runes
func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}
