package models

import "strings"

// Row is one input record keyed by normalized (trimmed, lowercased) column
// name. Column presence is source-dependent and never guaranteed.
type Row map[string]string

// Get returns the value for a normalized column name, or "" when the column
// is absent.
func (r Row) Get(column string) string {
	return r[NormalizeHeader(column)]
}

// First walks an ordered chain of column-name synonyms and returns the first
// non-empty value found. Returns "" when no synonym yields a value.
func (r Row) First(columns ...string) string {
	for _, c := range columns {
		if v := strings.TrimSpace(r[NormalizeHeader(c)]); v != "" {
			return v
		}
	}
	return ""
}

// Table is the in-memory representation of one uploaded report: named columns
// plus an ordered sequence of rows. Headers keep their normalized form.
type Table struct {
	SourceFile  string
	Headers     []string
	Rows        []Row
	RowCount    int
	ColumnCount int
}

// NormalizeHeader canonicalizes a column name for lookup: trim and lowercase.
// Marketplace exports vary wildly in header casing and padding.
func NormalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable builds a Table from raw headers and cell grids, normalizing all
// column names. Short rows are padded implicitly (missing cells read as "").
func NewTable(sourceFile string, headers []string, records [][]string) *Table {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(normalized))
		for i, h := range normalized {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		SourceFile:  sourceFile,
		Headers:     normalized,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(normalized),
	}
}
