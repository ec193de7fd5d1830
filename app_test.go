package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) tableModel {
	t.Helper()
	m := newTableModel(DefaultSortKey)
	m.width = 160
	m.height = 30
	return m
}

func successMsg(q Query, names ...string) statesResultMsg {
	return statesResultMsg{query: q, result: testResult(names...)}
}

func TestTableSuccessBanner(t *testing.T) {
	m := newTestTable(t)
	m.setResult(successMsg(filterQuery("New"), "New York", "New Jersey", "New Mexico", "New Hampshire"))

	assert.Equal(t, bannerSuccess, m.banner.kind)
	assert.Equal(t, "Loaded 4 states.", m.banner.text)
	assert.Contains(t, m.View(), "Loaded 4 states.")
	assert.Contains(t, m.View(), "New York")
}

func TestTableSingleRowBanner(t *testing.T) {
	m := newTestTable(t)
	m.setResult(successMsg(filterQuery("Hawaii"), "Hawaii"))

	assert.Equal(t, "Loaded 1 state.", m.banner.text)
}

func TestTableEmptyResultShowsNeutralWarning(t *testing.T) {
	m := newTestTable(t)
	m.setResult(statesResultMsg{query: filterQuery("Zzz")})

	assert.Equal(t, bannerWarning, m.banner.kind)
	assert.Empty(t, m.records)

	view := m.View()
	assert.Contains(t, view, "No states matched your query.")
	assert.NotContains(t, view, "Could not retrieve")
}

func TestTableFailureShowsErrorBanner(t *testing.T) {
	m := newTestTable(t)
	m.setResult(statesResultMsg{
		query: sortQuery("name"),
		err:   errors.New("error fetching data from API: connection refused"),
	})

	assert.Equal(t, bannerError, m.banner.kind)
	assert.True(t, m.failed)
	assert.Empty(t, m.records)

	view := m.View()
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, view, "Could not retrieve data")
}

func TestTableResultReplacesPriorCycle(t *testing.T) {
	m := newTestTable(t)
	m.setResult(successMsg(sortQuery("name"), "Alabama", "Alaska"))
	m.cursor = 1

	m.setResult(statesResultMsg{query: filterQuery("Zzz")})
	assert.Zero(t, m.cursor, "no state survives across cycles")
	assert.Empty(t, m.records)

	m.setResult(successMsg(sortQuery("name"), "Maine"))
	assert.Len(t, m.records, 1)
	assert.Equal(t, bannerSuccess, m.banner.kind)
}

func TestTableCycleSortRequestsRefetch(t *testing.T) {
	m := newTestTable(t) // starts at "name"

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)

	msg, ok := cmd().(queryChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "sort_by=population", msg.query.cacheKey())
}

func TestTableSortCyclesThroughAllKeys(t *testing.T) {
	m := newTestTable(t)
	seen := []string{sortKeys[m.sortIndex]}
	for i := 0; i < len(sortKeys)-1; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		require.NotNil(t, cmd)
		seen = append(seen, sortKeys[m.sortIndex])
	}
	assert.Equal(t, sortKeys, seen)
}

func TestTableFilterCommitRequestsRefetch(t *testing.T) {
	m := newTestTable(t)

	// Open the filter, type "New", commit with Enter.
	var cmd tea.Cmd
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	require.True(t, m.filterFocused)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("New")})
	assert.Equal(t, "New", m.filterText)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(queryChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "name_contains=New", msg.query.cacheKey())
	assert.True(t, m.filterMode)
}

func TestTableUnknownColumnsRendered(t *testing.T) {
	m := newTestTable(t)
	rs := resultSet{
		columns: []string{"name", "region", "population"},
		records: []StateRecord{{
			Name: "Georgia",
			Values: map[string]any{
				"name": "Georgia", "region": "South", "population": json.Number("4931"),
			},
		}},
	}
	m.setResult(statesResultMsg{query: sortQuery("name"), result: rs})

	assert.Equal(t, []string{"name", "population", "region"}, m.columns)
	view := m.View()
	assert.Contains(t, view, "South")
}

func TestAppResultForCurrentQueryRenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name":"New York"},{"name":"New Jersey"},{"name":"New Mexico"},{"name":"New Hampshire"}]`)
	}))
	defer srv.Close()

	f := newFetcher(srv.URL, 5*time.Second, time.Minute, zerolog.Nop())
	q := filterQuery("New")
	app := newAppModel(f, q, zerolog.Nop())
	assert.Equal(t, viewFetching, app.state)

	msg := fetchStatesCmd(f, q)()
	model, _ := app.Update(msg)
	app = model.(appModel)

	assert.Equal(t, viewTable, app.state)
	assert.Equal(t, "Loaded 4 states.", app.table.banner.text)
}

func TestAppStaleResultIgnored(t *testing.T) {
	f := newFetcher("http://unused.invalid", time.Second, time.Minute, zerolog.Nop())
	app := newAppModel(f, sortQuery("income"), zerolog.Nop())

	stale := successMsg(sortQuery("name"), "Alabama")
	model, _ := app.Update(stale)
	app = model.(appModel)

	assert.Equal(t, viewFetching, app.state, "result for an abandoned query must not render")
}

func TestAppFailureShowsSingleCoherentMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := newFetcher(srv.URL, time.Second, time.Minute, zerolog.Nop())
	q := sortQuery("name")
	app := newAppModel(f, q, zerolog.Nop())
	app.width, app.height = 160, 30
	app.table.width, app.table.height = 160, 30

	msg := fetchStatesCmd(f, q)()
	model, _ := app.Update(msg)
	app = model.(appModel)

	require.Equal(t, viewTable, app.state)
	view := app.View()
	assert.Contains(t, view, "Could not retrieve data")
	assert.NotContains(t, view, "Loaded")
}

func TestAppQueryChangeReentersFetching(t *testing.T) {
	f := newFetcher("http://unused.invalid", time.Second, time.Minute, zerolog.Nop())
	app := newAppModel(f, sortQuery("name"), zerolog.Nop())
	app.state = viewTable

	model, cmd := app.Update(queryChangedMsg{query: sortQuery("area")})
	app = model.(appModel)

	assert.Equal(t, viewFetching, app.state)
	assert.Equal(t, "sort_by=area", app.query.cacheKey())
	assert.NotNil(t, cmd)
}

func TestLoadingViewNamesQuery(t *testing.T) {
	m := newLoadingModel("Fetching states sorted by income…")
	m.width, m.height = 80, 24

	view := m.View()
	assert.Contains(t, view, "Querying the states API")
	assert.Contains(t, view, "states sorted by income")
	assert.Contains(t, view, "cached for ten minutes")
}

func TestAppHelpAndVersionModals(t *testing.T) {
	f := newFetcher("http://unused.invalid", time.Second, time.Minute, zerolog.Nop())
	app := newAppModel(f, sortQuery("name"), zerolog.Nop())
	app.state = viewTable

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	app = model.(appModel)
	assert.Equal(t, viewHelp, app.state)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(appModel)
	assert.Equal(t, viewTable, app.state)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	app = model.(appModel)
	assert.Equal(t, viewVersion, app.state)
}

func TestAppDetailViewRoundTrip(t *testing.T) {
	f := newFetcher("http://unused.invalid", time.Second, time.Minute, zerolog.Nop())
	app := newAppModel(f, sortQuery("name"), zerolog.Nop())
	app.width, app.height = 160, 30
	app.table.width, app.table.height = 160, 30
	app.state = viewTable
	app.table.setResult(successMsg(sortQuery("name"), "Vermont"))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	app = model.(appModel)
	require.Equal(t, viewDetail, app.state)
	assert.Contains(t, app.View(), "Vermont")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(appModel)
	// Detail view emits backToTableMsg via command; deliver it.
	model, _ = app.Update(backToTableMsg{})
	app = model.(appModel)
	assert.Equal(t, viewTable, app.state)
}
