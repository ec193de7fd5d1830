// records.go - StateRecord type and JSON normalization for API responses
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StateRecord is one row of per-state statistics as returned by the API.
// Only the name is guaranteed; every other field may be absent. Records
// are immutable snapshots, replaced wholesale on each fetch.
type StateRecord struct {
	Name string
	// Values holds every field of the record keyed by column name,
	// including the name itself. Numbers are json.Number, everything
	// else is string/bool/nil as decoded.
	Values map[string]any
}

// resultSet is a decoded API response: the records plus the union of
// their columns in first-seen order. Column order matters because unknown
// columns are displayed after the canonical ones in their original order.
type resultSet struct {
	columns []string
	records []StateRecord
}

func (r resultSet) empty() bool { return len(r.records) == 0 }

// decodeStates parses an API response body into a resultSet. A top-level
// single object is treated as a one-element list. Key order within each
// object is preserved via token-level decoding, which encoding/json maps
// would lose.
func decodeStates(body []byte) (resultSet, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return resultSet{}, fmt.Errorf("malformed response: %w", err)
	}

	var rs resultSet
	seen := make(map[string]bool)

	switch delim, ok := tok.(json.Delim); {
	case ok && delim == '[':
		for dec.More() {
			rec, cols, err := decodeRecord(dec)
			if err != nil {
				return resultSet{}, err
			}
			rs.records = append(rs.records, rec)
			rs.columns = mergeColumns(rs.columns, cols, seen)
		}
		if _, err := dec.Token(); err != nil {
			return resultSet{}, fmt.Errorf("malformed response: %w", err)
		}
	case ok && delim == '{':
		rec, cols, err := decodeRecordFields(dec)
		if err != nil {
			return resultSet{}, err
		}
		rs.records = append(rs.records, rec)
		rs.columns = mergeColumns(rs.columns, cols, seen)
	default:
		return resultSet{}, fmt.Errorf("malformed response: expected object or array, got %v", tok)
	}

	return rs, nil
}

// decodeRecord consumes one object from an array, including its opening
// brace.
func decodeRecord(dec *json.Decoder) (StateRecord, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return StateRecord{}, nil, fmt.Errorf("malformed response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return StateRecord{}, nil, fmt.Errorf("malformed response: expected object, got %v", tok)
	}
	return decodeRecordFields(dec)
}

// decodeRecordFields reads key/value pairs up to and including the
// closing brace. Some API deployments name the key column "state_name"
// instead of "name"; both are normalized to "name".
func decodeRecordFields(dec *json.Decoder) (StateRecord, []string, error) {
	rec := StateRecord{Values: make(map[string]any)}
	var cols []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return StateRecord{}, nil, fmt.Errorf("malformed response: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return StateRecord{}, nil, fmt.Errorf("malformed response: non-string key %v", keyTok)
		}
		if key == "state_name" {
			key = "name"
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return StateRecord{}, nil, fmt.Errorf("malformed response: %w", err)
		}

		if _, dup := rec.Values[key]; !dup {
			cols = append(cols, key)
		}
		rec.Values[key] = val
		if key == "name" {
			if s, ok := val.(string); ok {
				rec.Name = s
			}
		}
	}

	// The closing brace must actually be there; a truncated body is a
	// malformed response, not a short record.
	tok, err := dec.Token()
	if err != nil {
		return StateRecord{}, nil, fmt.Errorf("malformed response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '}' {
		return StateRecord{}, nil, fmt.Errorf("malformed response: expected closing brace, got %v", tok)
	}

	return rec, cols, nil
}

func mergeColumns(union, cols []string, seen map[string]bool) []string {
	for _, c := range cols {
		if !seen[c] {
			seen[c] = true
			union = append(union, c)
		}
	}
	return union
}
