// view_detail.go - Scrollable per-state detail view
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type detailModel struct {
	stateName string
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
}

// newDetailModel builds a detail panel for one state, listing every
// field in display order with its label, formatted value, and the help
// text describing what the statistic means.
func newDetailModel(rec StateRecord, columns []string, width, height int) detailModel {
	m := detailModel{
		stateName: rec.Name,
		width:     width,
		height:    height,
	}
	m.setContent(rec, columns)
	return m
}

func (m *detailModel) setContent(rec StateRecord, columns []string) {
	var b strings.Builder
	for _, col := range columns {
		meta := metaFor(col)
		val, ok := rec.Values[col]
		if !ok {
			continue
		}
		b.WriteString(detailKeyStyle.Render(meta.label+":") + " " +
			detailValStyle.Render(formatValue(col, val)) + "\n")
		if meta.help != "" {
			b.WriteString(detailHelpStyle.Render("  "+meta.help) + "\n")
		}
		b.WriteString("\n")
	}

	vpWidth := min(m.width-6, 76)
	vpHeight := m.height - 10
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(b.String())
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q", "i":
			return m, func() tea.Msg { return backToTableMsg{} }
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m detailModel) View() string {
	title := modalTitleStyle.Render(fmt.Sprintf("State: %s", m.stateName))

	var body string
	if !m.ready {
		body = loadingMsgStyle.Render("Loading…")
	} else {
		body = m.viewport.View()
	}

	scrollHint := ""
	if m.ready {
		pct := m.viewport.ScrollPercent()
		scrollHint = tableSepStyle.Render(fmt.Sprintf(" %.0f%%", pct*100))
	}

	hint := formHintStyle.Render("↑↓ scroll  Esc close") + scrollHint
	content := title + "\n\n" + body + "\n\n" + hint

	box := detailBorderStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
