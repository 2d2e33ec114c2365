// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/golangee/mlg/config"
	"github.com/golangee/mlg/token"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorSuccess = lipgloss.Color("#10B981") // Emerald
)

// styles of the console output.
type styles struct {
	path    lipgloss.Style
	error   lipgloss.Style
	warning lipgloss.Style
	snippet lipgloss.Style
	success lipgloss.Style
}

// newStyles renders for w. The color mode is one of the config.Color values.
func newStyles(w io.Writer, color string) styles {
	r := lipgloss.NewRenderer(w)

	switch color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	default:
		if f, ok := w.(*os.File); !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return styles{
		path:    r.NewStyle().Bold(true),
		error:   r.NewStyle().Foreground(colorError).Bold(true),
		warning: r.NewStyle().Foreground(colorWarning).Bold(true),
		snippet: r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
	}
}

func (s styles) severity(sev token.Severity) string {
	if sev == token.Error {
		return s.error.Render(sev.String())
	}

	return s.warning.Render(sev.String())
}
