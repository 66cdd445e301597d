package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`                 _                             `,
	`  ___  ___  _ __| |_ ___  ___ ___  _ __   ___ `,
	` / __|/ _ \| '__| __/ __|/ __/ _ \| '_ \ / _ \`,
	` \__ \ (_) | |  | |_\__ \ (_| (_) | |_) |  __/`,
	` |___/\___/|_|   \__|___/\___\___/| .__/ \___|`,
	`                                  |_|         `,
}

// Bar colours from cold to warm, one per banner line.
var bannerColors = []string{"#60a5fa", "#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the sortscope banner to w.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(profile.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
