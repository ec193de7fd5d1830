// app.go - Root bubbletea model: one fetch-then-render pass per user input
package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// viewState is the active screen. Each user parameter change re-enters
// fetching and the result replaces whatever was shown before.
type viewState int

const (
	viewFetching viewState = iota
	viewTable
	viewHelp
	viewVersion
	viewDetail
)

type appModel struct {
	fetcher *Fetcher
	query   Query
	state   viewState

	table   tableModel
	loading loadingModel
	help    helpModel
	version versionModel
	detail  detailModel

	width  int
	height int
	log    zerolog.Logger
}

func newAppModel(fetcher *Fetcher, initial Query, log zerolog.Logger) appModel {
	m := appModel{
		fetcher: fetcher,
		query:   initial,
		state:   viewFetching,
		table:   newTableModel(initial.SortBy),
		help:    newHelpModel(),
		version: newVersionModel(),
		log:     log,
	}
	if initial.isFilter {
		m.table.filterMode = true
		m.table.filterText = initial.NameContains
		m.table.filterVisible = initial.NameContains != ""
		m.table.filterInput.SetValue(initial.NameContains)
	}
	m.loading = newLoadingModel("Fetching " + initial.describe() + "…")
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), fetchStatesCmd(m.fetcher, m.query))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.width, m.table.height = msg.Width, msg.Height
		m.loading.width, m.loading.height = msg.Width, msg.Height
		m.help.width, m.help.height = msg.Width, msg.Height
		m.version.width, m.version.height = msg.Width, msg.Height
		m.detail.width, m.detail.height = msg.Width, msg.Height
		return m, nil

	case statesResultMsg:
		// Ignore results for queries the user has since moved past.
		if msg.query.cacheKey() != m.query.cacheKey() {
			return m, nil
		}
		m.table.setResult(msg)
		m.state = viewTable
		return m, nil

	case queryChangedMsg:
		m.query = msg.query
		m.state = viewFetching
		m.loading = newLoadingModel("Fetching " + msg.query.describe() + "…")
		return m, tea.Batch(m.loading.Init(), fetchStatesCmd(m.fetcher, msg.query))

	case backToTableMsg:
		m.state = viewTable
		return m, nil

	case spinner.TickMsg:
		if m.state == viewFetching {
			var cmd tea.Cmd
			m.loading, cmd = m.loading.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is focused, everything except ctrl+c is
	// text entry for the table's input.
	if m.state == viewTable && m.table.filterFocused {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.state == viewDetail {
			// detail view closes on q
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		if m.state == viewHelp || m.state == viewVersion {
			m.state = viewTable
			return m, nil
		}
		return m, tea.Quit
	}

	switch m.state {
	case viewHelp, viewVersion:
		switch msg.String() {
		case "esc", "enter":
			m.state = viewTable
		}
		return m, nil

	case viewDetail:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case viewFetching:
		// Input is ignored while a fetch is in flight; the request
		// either completes or times out.
		return m, nil
	}

	// viewTable
	switch msg.String() {
	case "h":
		m.state = viewHelp
		return m, nil
	case "v":
		m.state = viewVersion
		return m, nil
	case "i":
		if rec, ok := m.table.selectedRecord(); ok {
			m.detail = newDetailModel(rec, m.table.displayColumns(), m.width, m.height)
			m.state = viewDetail
		}
		return m, nil
	case "r":
		m.state = viewFetching
		m.loading = newLoadingModel("Fetching " + m.query.describe() + "…")
		return m, tea.Batch(m.loading.Init(), fetchStatesCmd(m.fetcher, m.query))
	case "1", "2", "3", "4", "5":
		setTheme(int(msg.String()[0] - '1'))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	switch m.state {
	case viewFetching:
		return m.loading.View()
	case viewHelp:
		return m.help.View()
	case viewVersion:
		return m.version.View()
	case viewDetail:
		return m.detail.View()
	}
	return m.table.View()
}
