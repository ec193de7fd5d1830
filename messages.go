// messages.go - Custom tea.Msg types and tea.Cmd factories for async fetches
package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ─── Result Messages ───────────────────────────────────────────────────────────

// statesResultMsg carries the outcome of one fetch cycle. Exactly one of
// result/err is meaningful; a nil err with zero records is the empty
// outcome.
type statesResultMsg struct {
	query  Query
	result resultSet
	err    error
}

// backToTableMsg tells the root model to return to the main table view.
type backToTableMsg struct{}

// ─── Command Factories ─────────────────────────────────────────────────────────

// fetchStatesCmd runs one fetch (cache-through) off the UI loop and
// reports the outcome as a statesResultMsg.
func fetchStatesCmd(f *Fetcher, q Query) tea.Cmd {
	return func() tea.Msg {
		rs, err := f.Fetch(q)
		return statesResultMsg{query: q, result: rs, err: err}
	}
}
