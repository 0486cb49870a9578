package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the orgtree ASCII art banner and version to w.
// Colors are dropped automatically when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Teal/Green)
	lines := []struct {
		text  string
		color string
	}{
		{"   ___             _____              ", "#22d3ee"},
		{"  / _ \\ _ __ __ _ |_   _| __ ___  ___ ", "#2dd4bf"},
		{" | | | | '__/ _` |  | || '__/ _ \\/ _ \\", "#34d399"},
		{" | |_| | | | (_| |  | || | |  __/  __/", "#4ade80"},
		{"  \\___/|_|  \\__, |  |_||_|  \\___|\\___|", "#a3e635"},
		{"            |___/                     ", "#facc15"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}

// FormatError styles err for display on w (bold red on color terminals).
func FormatError(w io.Writer, err error) string {
	out := termenv.NewOutput(w)
	return out.String("Error: " + err.Error()).Foreground(out.Color("#ef4444")).Bold().String()
}
