// constants.go - Application-wide constants and configuration defaults
package main

import "time"

// API Defaults
const (
	// DefaultBaseURL is the states API endpoint.
	DefaultBaseURL = "https://apis.robwiederstein.org"

	// DefaultTimeout bounds each API request. Generous because the
	// backing service can cold-start.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL is how long a fetched result is reused for the
	// same query parameter before refetching.
	DefaultCacheTTL = 10 * time.Minute
)

// UI Defaults
const (
	// DefaultSortKey is the initial server-side sort column.
	DefaultSortKey = "name"

	// DefaultThemeIndex selects the startup color theme.
	DefaultThemeIndex = 0

	// FilterCharLimit caps the name filter input length.
	FilterCharLimit = 64
)

// sortKeys is the fixed set of columns the API accepts for sort_by, in
// the order the sort selector cycles through them.
var sortKeys = []string{
	"name",
	"population",
	"income",
	"illiteracy",
	"life_exp",
	"murder",
	"hs_grad",
	"frost",
	"area",
}

// footerInfo is the static informational footer line.
const footerInfo = "1970s state.x77 dataset · served by the states API (FastAPI + PostgreSQL)"
