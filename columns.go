// columns.go - Canonical column ordering and per-column display metadata
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// columnFormat selects how a column's values are rendered.
type columnFormat int

const (
	formatText columnFormat = iota
	formatInteger
	formatCurrency     // whole units with a $ prefix
	formatFixed        // two decimal places
	formatPercent      // two decimal places with a % suffix
	formatPercentWhole // one decimal place with a % suffix
)

// columnMeta describes how a known column is displayed.
type columnMeta struct {
	key    string
	label  string
	help   string
	format columnFormat
	width  int
}

// canonicalColumns is the preferred left-to-right display order. Columns
// missing from a response are skipped; columns the response adds on top
// are appended after these in their original order.
var canonicalColumns = []string{
	"name", "population", "income", "area", "hs_grad",
	"murder", "illiteracy", "life_exp", "frost",
}

// columnMetadata maps known column keys to their display configuration.
// Descriptions follow the 1970s state.x77 dataset documentation.
var columnMetadata = map[string]columnMeta{
	"name": {
		key: "name", label: "State Name", width: 16,
		help:   "The name of the U.S. state.",
		format: formatText,
	},
	"population": {
		key: "population", label: "Population", width: 12,
		help:   "Estimated population in 1975.",
		format: formatInteger,
	},
	"income": {
		key: "income", label: "Income", width: 9,
		help:   "Per capita income in 1974.",
		format: formatCurrency,
	},
	"illiteracy": {
		key: "illiteracy", label: "Illiteracy (%)", width: 16,
		help:   "Illiteracy rate in 1970 (percent of population).",
		format: formatPercent,
	},
	"life_exp": {
		key: "life_exp", label: "Life Exp. (yrs)", width: 17,
		help:   "Life expectancy in years (1969-71).",
		format: formatFixed,
	},
	"murder": {
		key: "murder", label: "Murder Rate", width: 13,
		help:   "Murder and non-negligent manslaughter rate per 100,000 population in 1976.",
		format: formatFixed,
	},
	"hs_grad": {
		key: "hs_grad", label: "HS Grad (%)", width: 13,
		help:   "Percent of high-school graduates in 1970.",
		format: formatPercentWhole,
	},
	"frost": {
		key: "frost", label: "Frost Days", width: 12,
		help:   "Mean number of days with minimum temperature below freezing (1931-1960) in capital or large city.",
		format: formatInteger,
	},
	"area": {
		key: "area", label: "Area (sq. mi)", width: 14,
		help:   "Land area in square miles.",
		format: formatInteger,
	},
}

// defaultColumnWidth is used for columns the API adds that we know
// nothing about.
const defaultColumnWidth = 14

// metaFor returns the display metadata for a column, falling back to an
// identity configuration for unknown columns.
func metaFor(key string) columnMeta {
	if m, ok := columnMetadata[key]; ok {
		return m
	}
	return columnMeta{key: key, label: key, format: formatText, width: defaultColumnWidth}
}

// orderColumns arranges data columns for display: canonical columns that
// are present, in canonical order, then the leftovers in their original
// order. A response missing canonical columns is never an error.
func orderColumns(dataCols []string) []string {
	present := make(map[string]bool, len(dataCols))
	for _, c := range dataCols {
		present[c] = true
	}

	var ordered []string
	picked := make(map[string]bool)
	for _, c := range canonicalColumns {
		if present[c] {
			ordered = append(ordered, c)
			picked[c] = true
		}
	}
	for _, c := range dataCols {
		if !picked[c] {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

// formatValue renders a single cell according to the column's format
// rule. Missing values render as "--"; values of an unexpected type fall
// back to their plain representation.
func formatValue(key string, val any) string {
	if val == nil {
		return "--"
	}

	meta := metaFor(key)
	num, isNum := val.(json.Number)
	if !isNum {
		return fmt.Sprint(val)
	}

	switch meta.format {
	case formatInteger:
		if i, err := num.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := num.Float64(); err == nil {
			return strconv.FormatInt(int64(f), 10)
		}
	case formatCurrency:
		if i, err := num.Int64(); err == nil {
			return "$" + strconv.FormatInt(i, 10)
		}
		if f, err := num.Float64(); err == nil {
			return "$" + strconv.FormatInt(int64(f), 10)
		}
	case formatFixed:
		if f, err := num.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	case formatPercent:
		if f, err := num.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', 2, 64) + "%"
		}
	case formatPercentWhole:
		if f, err := num.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', 1, 64) + "%"
		}
	}
	return num.String()
}
