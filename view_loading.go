// view_loading.go - Fetch-in-progress view shown while a query is in flight
package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadingModel struct {
	spinner spinner.Model
	message string
	width   int
	height  int
}

// newLoadingModel builds the in-flight view for one query; message is
// the query description, e.g. "Fetching states sorted by income…".
func newLoadingModel(message string) loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return loadingModel{spinner: s, message: message}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loadingModel) View() string {
	title := modalTitleStyle.Render("Querying the states API")
	line := m.spinner.View() + loadingMsgStyle.Render(m.message)
	hint := loadingHintStyle.Render("fresh results are cached for ten minutes")

	box := modalStyle.Render(title + "\n\n" + line + "\n\n" + hint)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
