package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the stategate banner and version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"     _        _                    _       ", "#34d399"},
		{" ___| |_ __ _| |_ ___  __ _  __ _| |_ ___ ", "#2dd4bf"},
		{"/ __| __/ _` | __/ _ \\/ _` |/ _` | __/ _ \\", "#22d3ee"},
		{"\\__ \\ || (_| | ||  __/ (_| | (_| | ||  __/", "#38bdf8"},
		{"|___/\\__\\__,_|\\__\\___|\\__, |\\__,_|\\__\\___|", "#60a5fa"},
		{"                      |___/               ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", strings.TrimSpace(version))
}
