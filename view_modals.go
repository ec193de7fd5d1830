// view_modals.go - Help and version modal views
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Help Modal ────────────────────────────────────────────────────────────────

type helpModel struct {
	width  int
	height int
}

func newHelpModel() helpModel {
	return helpModel{}
}

func (m helpModel) View() string {
	title := modalTitleStyle.Render("Keyboard Shortcuts")

	shortcuts := []struct{ key, desc string }{
		{"h", "Help"},
		{"i", "State details"},
		{"tab", "Cycle sort column (server-side)"},
		{"f", "Filter states by name (server-side)"},
		{"r", "Refresh current query"},
		{"↑↓", "Move selection"},
		{"v", "Version"},
		{"1-5", "Switch theme"},
		{"q", "Quit"},
	}

	var lines []string
	for _, s := range shortcuts {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			footerKeyStyle.Width(4).Render(s.key),
			modalTextStyle.Render(s.desc)))
	}

	// Theme list
	themeLines := []string{"", filterActiveStyle.Render("  Themes:")}
	for i, t := range themes {
		marker := "  "
		if i == currentThemeIndex {
			marker = "● "
		}
		swatch := lipgloss.NewStyle().Foreground(t.Accent).Render("██")
		themeLines = append(themeLines, fmt.Sprintf("  %s%s %s %s",
			marker,
			footerKeyStyle.Width(2).Render(fmt.Sprintf("%d", i+1)),
			swatch,
			modalTextStyle.Render(t.Name)))
	}

	hints := []string{
		"",
		formHintStyle.Render("Sorting and filtering re-query the API; results"),
		formHintStyle.Render("are cached per query for ten minutes."),
		"",
		formHintStyle.Render("Press Esc or Enter to close"),
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + "\n" + strings.Join(themeLines, "\n") + "\n" + strings.Join(hints, "\n")
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Version Modal ─────────────────────────────────────────────────────────────

type versionModel struct {
	width  int
	height int
}

func newVersionModel() versionModel {
	return versionModel{}
}

func (m versionModel) View() string {
	title := modalTitleStyle.Render("Version")
	body := modalTextStyle.Render(GetVersion())
	hint := "\n\n" + formHintStyle.Render("Press Esc or Enter to close")

	content := title + "\n\n" + body + hint
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
