package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatesArray(t *testing.T) {
	body := []byte(`[
		{"name":"Alabama","population":3615,"income":3624,"illiteracy":2.1},
		{"name":"Alaska","population":365,"income":6315,"illiteracy":1.5}
	]`)

	rs, err := decodeStates(body)
	require.NoError(t, err)
	require.Len(t, rs.records, 2)

	assert.Equal(t, "Alabama", rs.records[0].Name)
	assert.Equal(t, "Alaska", rs.records[1].Name)
	assert.Equal(t, json.Number("3624"), rs.records[0].Values["income"])
	assert.Equal(t, json.Number("1.5"), rs.records[1].Values["illiteracy"])
	assert.Equal(t, []string{"name", "population", "income", "illiteracy"}, rs.columns)
}

func TestDecodeStatesSingleObject(t *testing.T) {
	// Some deployments return a bare object for single-row responses;
	// it must be treated as a one-element list.
	body := []byte(`{"name":"Hawaii","population":868}`)

	rs, err := decodeStates(body)
	require.NoError(t, err)
	require.Len(t, rs.records, 1)
	assert.Equal(t, "Hawaii", rs.records[0].Name)
	assert.Equal(t, []string{"name", "population"}, rs.columns)
}

func TestDecodeStatesStateNameAlias(t *testing.T) {
	body := []byte(`[{"state_name":"Ohio","income":4561}]`)

	rs, err := decodeStates(body)
	require.NoError(t, err)
	require.Len(t, rs.records, 1)
	assert.Equal(t, "Ohio", rs.records[0].Name)
	assert.Equal(t, "Ohio", rs.records[0].Values["name"])
	assert.Equal(t, []string{"name", "income"}, rs.columns)
}

func TestDecodeStatesColumnUnionPreservesOrder(t *testing.T) {
	// The union of columns keeps first-seen order across records, even
	// when later records introduce new fields.
	body := []byte(`[
		{"name":"Texas","area":262134},
		{"name":"Utah","area":82096,"frost":137}
	]`)

	rs, err := decodeStates(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "area", "frost"}, rs.columns)
}

func TestDecodeStatesMissingFields(t *testing.T) {
	// Fields other than name are optional; absent ones simply don't
	// appear in Values.
	body := []byte(`[{"name":"Nevada"}]`)

	rs, err := decodeStates(body)
	require.NoError(t, err)
	require.Len(t, rs.records, 1)
	_, ok := rs.records[0].Values["population"]
	assert.False(t, ok)
}

func TestDecodeStatesMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"truncated array", `[{"name":"Iowa"`},
		{"truncated object", `{"name": "Texas"`},
		{"truncated object after comma", `{"name":"Iowa",`},
		{"scalar", `42`},
		{"string", `"nope"`},
		{"html error page", `<html>502</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStates([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDecodeStatesEmptyArray(t *testing.T) {
	rs, err := decodeStates([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, rs.empty())
	assert.Empty(t, rs.columns)
}
