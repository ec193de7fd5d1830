// styles.go - Lipgloss style definitions for the bubbletea TUI
package main

import "github.com/charmbracelet/lipgloss"

// Styles are rebuilt from the active theme by rebuildStyles; the
// declarations here carry the structural attributes (bold, padding,
// borders), the colors come from the theme.

// ─── Title / Banner ────────────────────────────────────────────────────────────

var (
	titleStyle lipgloss.Style

	bannerSuccessStyle lipgloss.Style
	bannerErrorStyle   lipgloss.Style
	bannerWarningStyle lipgloss.Style
)

// ─── Table ─────────────────────────────────────────────────────────────────────

var (
	tableHeaderStyle   lipgloss.Style
	tableCellStyle     lipgloss.Style
	tableSelectedStyle lipgloss.Style
	tableCursorStyle   lipgloss.Style
	tableEmptyStyle    lipgloss.Style
	tableSepStyle      lipgloss.Style
)

// ─── Footer ────────────────────────────────────────────────────────────────────

var (
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	footerStyle     lipgloss.Style
	footerInfoStyle lipgloss.Style
)

// ─── Filter ────────────────────────────────────────────────────────────────────

var (
	filterActiveStyle   lipgloss.Style
	filterInactiveStyle lipgloss.Style
)

// ─── Modal / Overlay ───────────────────────────────────────────────────────────

var (
	modalStyle      lipgloss.Style
	modalTitleStyle lipgloss.Style
	modalTextStyle  lipgloss.Style
	formHintStyle   lipgloss.Style
)

// ─── Detail View ───────────────────────────────────────────────────────────────

var (
	detailKeyStyle    lipgloss.Style
	detailValStyle    lipgloss.Style
	detailHelpStyle   lipgloss.Style
	detailBorderStyle lipgloss.Style
)

// ─── Spinner / Loading ─────────────────────────────────────────────────────────

var (
	spinnerStyle     lipgloss.Style
	loadingMsgStyle  lipgloss.Style
	loadingHintStyle lipgloss.Style
)

// rebuildStyles derives every style from the active theme. Called at
// startup and on theme switch.
func rebuildStyles() {
	t := currentTheme()

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	bannerSuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	bannerErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	bannerWarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).PaddingRight(2)
	tableCellStyle = lipgloss.NewStyle().Foreground(t.Text).PaddingRight(2)
	tableSelectedStyle = lipgloss.NewStyle().Background(t.Surface).Foreground(t.Highlight).Bold(true).PaddingRight(2)
	tableCursorStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	tableEmptyStyle = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true).PaddingLeft(3)
	tableSepStyle = lipgloss.NewStyle().Foreground(t.Subtle)

	footerKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Subtle)
	footerStyle = lipgloss.NewStyle().PaddingLeft(1)
	footerInfoStyle = lipgloss.NewStyle().Foreground(t.Dimmed).Italic(true)

	filterActiveStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	filterInactiveStyle = lipgloss.NewStyle().Foreground(t.Subtle)

	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3).
		MaxWidth(80)
	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1)
	modalTextStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	formHintStyle = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)

	detailKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	detailValStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	detailHelpStyle = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
	detailBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)

	spinnerStyle = lipgloss.NewStyle().Foreground(t.Accent)
	loadingMsgStyle = lipgloss.NewStyle().Foreground(t.TextMuted).MarginLeft(1)
	loadingHintStyle = lipgloss.NewStyle().Foreground(t.AccentLight).Italic(true)
}

func init() {
	rebuildStyles()
}
