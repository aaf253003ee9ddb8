package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by every writer in this package.
var (
	// StyleCyan is used for token locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for errors.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for check names and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Swatch renders a two-cell block in the given hex color.
func Swatch(hex string, useColors bool) string {
	if !useColors {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex[:min(len(hex), 7)])).Render("  ") + " "
}

// ShouldUseColors decides whether output gets ANSI styling. force wins,
// then FORCE_COLOR and GITHUB_ACTIONS, then NO_COLOR, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
