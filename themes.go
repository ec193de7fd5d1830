// themes.go - Theme definitions for the TUI
package main

import "github.com/charmbracelet/lipgloss"

// theme holds all configurable colors for the TUI.
type theme struct {
	Name        string
	Accent      lipgloss.Color
	AccentLight lipgloss.Color
	Subtle      lipgloss.Color
	Dimmed      lipgloss.Color
	Highlight   lipgloss.Color
	Surface     lipgloss.Color
	Text        lipgloss.Color // normal cell text
	TextMuted   lipgloss.Color // secondary text (values, descriptions)
	Success     lipgloss.Color // success banner
	Error       lipgloss.Color // failure banner
	Warning     lipgloss.Color // neutral/empty banner
}

// themes is the list of available themes, selectable via keys 1–5.
var themes = []theme{
	// 1 - Default Violet
	{
		Name: "Violet", Accent: "#7C3AED", AccentLight: "#A78BFA",
		Subtle: "#6C6C6C", Dimmed: "#4A4A4A", Highlight: "#E8E8E8",
		Surface: "#2A2A2A", Text: "#BBBBBB", TextMuted: "#CCCCCC",
		Success: "#10B981", Error: "#EF4444", Warning: "#F59E0B",
	},
	// 2 - Tokyo Night
	{
		Name: "Tokyo Night", Accent: "#7AA2F7", AccentLight: "#89DDFF",
		Subtle: "#565F89", Dimmed: "#3B4261", Highlight: "#C0CAF5",
		Surface: "#1A1B26", Text: "#A9B1D6", TextMuted: "#C0CAF5",
		Success: "#9ECE6A", Error: "#F7768E", Warning: "#E0AF68",
	},
	// 3 - Nord
	{
		Name: "Nord", Accent: "#88C0D0", AccentLight: "#8FBCBB",
		Subtle: "#4C566A", Dimmed: "#3B4252", Highlight: "#ECEFF4",
		Surface: "#2E3440", Text: "#D8DEE9", TextMuted: "#ECEFF4",
		Success: "#A3BE8C", Error: "#BF616A", Warning: "#EBCB8B",
	},
	// 4 - Gruvbox Dark
	{
		Name: "Gruvbox", Accent: "#FE8019", AccentLight: "#FABD2F",
		Subtle: "#928374", Dimmed: "#665C54", Highlight: "#EBDBB2",
		Surface: "#282828", Text: "#BDAE93", TextMuted: "#EBDBB2",
		Success: "#B8BB26", Error: "#FB4934", Warning: "#FABD2F",
	},
	// 5 - Catppuccin Mocha
	{
		Name: "Catppuccin", Accent: "#CBA6F7", AccentLight: "#F5C2E7",
		Subtle: "#6C7086", Dimmed: "#45475A", Highlight: "#CDD6F4",
		Surface: "#1E1E2E", Text: "#BAC2DE", TextMuted: "#CDD6F4",
		Success: "#A6E3A1", Error: "#F38BA8", Warning: "#F9E2AF",
	},
}

// currentThemeIndex tracks the active theme.
var currentThemeIndex = DefaultThemeIndex

// currentTheme returns the active theme.
func currentTheme() theme {
	return themes[currentThemeIndex]
}

// setTheme switches to the given theme index and rebuilds all styles.
func setTheme(index int) {
	if index < 0 || index >= len(themes) {
		return
	}
	currentThemeIndex = index
	rebuildStyles()
}
