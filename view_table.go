// view_table.go - Main states table with banner, filter bar, sort cycling, and footer
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// queryChangedMsg asks the root model to re-fetch with a new query.
type queryChangedMsg struct {
	query Query
}

// bannerKind classifies the status line under the title.
type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerSuccess
	bannerError
	bannerWarning
)

type banner struct {
	kind bannerKind
	text string
}

type tableModel struct {
	columns []string // display order, already canonicalized
	records []StateRecord
	banner  banner
	failed  bool // last fetch errored; rows area shows the outage notice

	cursor int
	offset int
	width  int
	height int

	filterInput   textinput.Model
	filterFocused bool
	filterVisible bool
	filterText    string

	sortIndex  int  // into sortKeys
	filterMode bool // current query is the name_contains variant
}

func newTableModel(initialSortKey string) tableModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter by name…"
	ti.Prompt = "Filter: "
	ti.PromptStyle = filterActiveStyle
	ti.CharLimit = FilterCharLimit

	sortIndex := 0
	for i, k := range sortKeys {
		if k == initialSortKey {
			sortIndex = i
			break
		}
	}

	return tableModel{
		filterInput: ti,
		sortIndex:   sortIndex,
	}
}

// ─── Data ──────────────────────────────────────────────────────────────────────

// setResult installs a fetch outcome. Every cycle replaces the prior one
// wholesale; nothing is merged or retained.
func (m *tableModel) setResult(msg statesResultMsg) {
	m.cursor = 0
	m.offset = 0

	if msg.err != nil {
		m.records = nil
		m.columns = nil
		m.failed = true
		m.banner = banner{kind: bannerError, text: msg.err.Error()}
		return
	}
	m.failed = false

	if msg.result.empty() {
		m.records = nil
		m.columns = nil
		m.banner = banner{kind: bannerWarning, text: "No states matched your query."}
		return
	}

	m.records = msg.result.records
	m.columns = orderColumns(msg.result.columns)
	noun := "states"
	if len(m.records) == 1 {
		noun = "state"
	}
	m.banner = banner{kind: bannerSuccess, text: fmt.Sprintf("Loaded %d %s.", len(m.records), noun)}
}

func (m tableModel) selectedRecord() (StateRecord, bool) {
	if m.cursor >= 0 && m.cursor < len(m.records) {
		return m.records[m.cursor], true
	}
	return StateRecord{}, false
}

// currentQuery reflects the active variant: name filter when filter mode
// is on, otherwise the selected sort key.
func (m tableModel) currentQuery() Query {
	if m.filterMode {
		return filterQuery(m.filterText)
	}
	return sortQuery(sortKeys[m.sortIndex])
}

func (m *tableModel) toggleFilter() {
	if m.filterVisible && m.filterFocused {
		m.filterFocused = false
		if m.filterText == "" {
			m.filterVisible = false
		}
		return
	}
	if m.filterVisible && !m.filterFocused {
		m.filterFocused = true
		m.filterInput.Focus()
		return
	}
	m.filterVisible = true
	m.filterFocused = true
	m.filterInput.Focus()
}

// cycleSortColumn advances the server-side sort key and requests a
// re-fetch. Cycling the sort leaves filter mode.
func (m *tableModel) cycleSortColumn() tea.Cmd {
	if m.filterMode {
		m.filterMode = false
	} else {
		m.sortIndex = (m.sortIndex + 1) % len(sortKeys)
	}
	q := m.currentQuery()
	return func() tea.Msg { return queryChangedMsg{query: q} }
}

// commitFilter switches to the name_contains variant and requests a
// re-fetch with the current input text.
func (m *tableModel) commitFilter() tea.Cmd {
	m.filterFocused = false
	m.filterMode = true
	q := m.currentQuery()
	return func() tea.Msg { return queryChangedMsg{query: q} }
}

// ─── Update ────────────────────────────────────────────────────────────────────

func (m tableModel) Update(msg tea.Msg) (tableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filterFocused {
			switch msg.String() {
			case "esc":
				m.filterFocused = false
				if m.filterText == "" {
					m.filterVisible = false
				}
				return m, nil
			case "enter":
				return m, m.commitFilter()
			default:
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				m.filterText = m.filterInput.Value()
				return m, cmd
			}
		}

		visible := m.visibleRows()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
				if m.cursor >= m.offset+visible {
					m.offset = m.cursor - visible + 1
				}
			}
		case "home", "g":
			m.cursor = 0
			m.offset = 0
		case "end", "G":
			m.cursor = max(0, len(m.records)-1)
			if m.cursor >= visible {
				m.offset = m.cursor - visible + 1
			}
		case "pgup":
			m.cursor = max(0, m.cursor-visible)
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		case "pgdown":
			m.cursor = min(len(m.records)-1, m.cursor+visible)
			if m.cursor >= m.offset+visible {
				m.offset = m.cursor - visible + 1
			}
		case "tab":
			return m, m.cycleSortColumn()
		case "f":
			m.toggleFilter()
		}
	}
	return m, nil
}

func (m tableModel) visibleRows() int {
	// title(1) + banner(1) + filter(0/1) + header(1) + sep(1) + footer(3) + spacing(1)
	used := 8
	if m.filterVisible {
		used++
	}
	return max(1, m.height-used)
}

// ─── View ──────────────────────────────────────────────────────────────────────

func (m tableModel) View() string {
	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("╭ U.S. States Data Explorer ╮") + "\n")

	// Status banner
	b.WriteString(m.renderBanner() + "\n")

	// Filter bar
	if m.filterVisible {
		if m.filterFocused {
			b.WriteString(m.filterInput.View() + "\n")
		} else {
			dim := filterInactiveStyle.Render(fmt.Sprintf("  Filter: %s", m.filterText))
			b.WriteString(dim + "\n")
		}
	}

	cols := m.displayColumns()

	// Header row
	var headerCells []string
	for _, col := range cols {
		meta := metaFor(col)
		title := meta.label
		if !m.filterMode && col == sortKeys[m.sortIndex] {
			title += " ▲"
		}
		headerCells = append(headerCells, tableHeaderStyle.Width(meta.width).Render(title))
	}
	b.WriteString("  " + strings.Join(headerCells, "") + "\n")

	// Separator
	sepLen := 0
	for _, col := range cols {
		sepLen += metaFor(col).width
	}
	sep := tableSepStyle.Render(strings.Repeat("─", min(sepLen+2, max(m.width, 1))))
	b.WriteString("  " + sep + "\n")

	// Rows
	visible := m.visibleRows()
	rendered := 0
	switch {
	case m.failed:
		b.WriteString(tableEmptyStyle.Render("Could not retrieve data. The API might be starting up or temporarily unavailable.") + "\n")
		rendered = 1
	case len(m.records) == 0:
		b.WriteString(tableEmptyStyle.Render("No states to display") + "\n")
		rendered = 1
	default:
		end := min(m.offset+visible, len(m.records))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(m.records[i], cols, i == m.cursor) + "\n")
		}
		rendered = end - m.offset
	}

	// Pad remaining space
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	// Footer
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m tableModel) renderBanner() string {
	switch m.banner.kind {
	case bannerSuccess:
		return "  " + bannerSuccessStyle.Render(m.banner.text)
	case bannerError:
		return "  " + bannerErrorStyle.Render(m.banner.text)
	case bannerWarning:
		return "  " + bannerWarningStyle.Render(m.banner.text)
	}
	return ""
}

// displayColumns returns the columns to render, falling back to the
// canonical set before any data has arrived so the header is stable.
func (m tableModel) displayColumns() []string {
	if len(m.columns) > 0 {
		return m.columns
	}
	return canonicalColumns
}

func (m tableModel) renderRow(rec StateRecord, cols []string, selected bool) string {
	var cells []string
	for _, col := range cols {
		meta := metaFor(col)
		val := formatValue(col, rec.Values[col])

		style := tableCellStyle.Width(meta.width)
		if selected {
			style = tableSelectedStyle.Width(meta.width)
		}
		if meta.width > 4 {
			val = truncateToRunes(val, meta.width-2)
		}
		cells = append(cells, style.Render(val))
	}

	prefix := "  "
	if selected {
		prefix = tableCursorStyle.Render("▸ ")
	}

	return prefix + strings.Join(cells, "")
}

func (m tableModel) renderFooter() string {
	shortcuts := []struct{ key, desc string }{
		{"tab", "Sort"}, {"f", "Filter"}, {"i", "Details"}, {"r", "Refresh"},
		{"h", "Help"}, {"v", "Version"}, {"q", "Quit"},
	}

	line1 := renderShortcutLine(shortcuts)

	var sortHint string
	if m.filterMode {
		sortHint = formHintStyle.Render(fmt.Sprintf("  Filtering by name: %q  (Tab returns to sorting)", m.filterText))
	} else {
		sortHint = formHintStyle.Render(fmt.Sprintf("  Tab: cycle sort column  (sorting by %s)", metaFor(sortKeys[m.sortIndex]).label))
	}

	info := footerInfoStyle.Render("  " + footerInfo)

	return footerStyle.Render(line1 + "\n" + sortHint + "\n" + info)
}

func renderShortcutLine(shortcuts []struct{ key, desc string }) string {
	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, footerKeyStyle.Render(s.key)+" "+footerDescStyle.Render(s.desc))
	}
	return strings.Join(parts, "  ")
}
