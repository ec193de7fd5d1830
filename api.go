// api.go - HTTP client for the states API
package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Query is the single parameter sent to the API: either a sort column
// key or a name-substring filter. Exactly one is in effect; a Query with
// a NameContains set is the filter variant, otherwise the sort variant.
type Query struct {
	SortBy       string
	NameContains string
	isFilter     bool
}

// sortQuery requests server-side ordering by the given column key.
func sortQuery(key string) Query {
	return Query{SortBy: key}
}

// filterQuery requests server-side name filtering. The empty string is a
// valid filter (matches everything).
func filterQuery(text string) Query {
	return Query{NameContains: text, isFilter: true}
}

// cacheKey uniquely identifies the query for memoization.
func (q Query) cacheKey() string {
	if q.isFilter {
		return "name_contains=" + q.NameContains
	}
	return "sort_by=" + q.SortBy
}

// describe returns a short human-readable form for log lines and the
// loading message.
func (q Query) describe() string {
	if q.isFilter {
		if q.NameContains == "" {
			return "all states"
		}
		return fmt.Sprintf("states matching %q", q.NameContains)
	}
	return fmt.Sprintf("states sorted by %s", q.SortBy)
}

// apiClient issues GET requests against the states API. One request per
// user interaction, no retries; any transport or HTTP-status problem is
// returned as an error for the UI to display.
type apiClient struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func newAPIClient(baseURL string, timeout time.Duration, log zerolog.Logger) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// statesURL builds the request URL for a query, e.g.
// {base}/states?sort_by=income or {base}/states?name_contains=New.
func (c *apiClient) statesURL(q Query) string {
	v := url.Values{}
	if q.isFilter {
		v.Set("name_contains", q.NameContains)
	} else {
		v.Set("sort_by", q.SortBy)
	}
	return c.baseURL + "/states?" + v.Encode()
}

// fetchStates performs the GET and decodes the response. Row order is
// whatever the API returned; the client never re-sorts.
func (c *apiClient) fetchStates(q Query) (resultSet, error) {
	reqURL := c.statesURL(q)
	c.log.Debug().Str("url", reqURL).Msg("fetching states")

	resp, err := c.httpc.Get(reqURL)
	if err != nil {
		c.log.Warn().Err(err).Str("url", reqURL).Msg("request failed")
		return resultSet{}, fmt.Errorf("error fetching data from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("url", reqURL).Msg("bad status")
		return resultSet{}, fmt.Errorf("error fetching data from API: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resultSet{}, fmt.Errorf("error reading API response: %w", err)
	}

	rs, err := decodeStates(body)
	if err != nil {
		return resultSet{}, err
	}

	c.log.Debug().Int("records", len(rs.records)).Str("query", q.cacheKey()).Msg("fetched states")
	return rs, nil
}
