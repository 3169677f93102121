/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxUploadBytes caps the size of a dataset accepted by Load.
const MaxUploadBytes = 10 << 20

// PreviewRows is the number of rows shown in a dataset preview.
const PreviewRows = 5

// Table is a loaded dataset: a header row and string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Preview is the part of a table shown back to the user. It is stored in
// the session between the upload and analyze steps.
type Preview struct {
	Filename  string
	Columns   []string
	Rows      [][]string
	TotalRows int
}

// Supported reports whether name has an extension Load can read.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}

	return false
}

// Load reads a CSV or XLSX dataset, choosing the parser by file extension.
func Load(name string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if len(data) > MaxUploadBytes {
		return nil, errTooLarge
	}

	var records [][]string

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		records, err = readCSV(data)
	case ".xlsx":
		records, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, err
	}

	return newTable(records)
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return records, nil
}

func readXLSX(data []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	defer func() {
		_ = book.Close()
	}()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheets
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func newTable(records [][]string) (*Table, error) {
	// Skip leading blank lines the way spreadsheet exports often have them.
	for len(records) > 0 && isBlankRecord(records[0]) {
		records = records[1:]
	}

	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	columns := normalizeColumns(records[0])
	rows := make([][]string, 0, len(records)-1)

	for i, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}

		if len(record) > len(columns) {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", errRaggedRow, i+2, len(record), len(columns))
		}

		row := make([]string, len(columns))
		copy(row, record)
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// normalizeColumns names blank headers "Unnamed: N" and suffixes duplicates
// with ".1", ".2", ... so every column can be selected unambiguously.
func normalizeColumns(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}

		columns[i] = name
	}

	return columns
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// Preview returns the header and the first n rows of the table.
func (t *Table) Preview(filename string, n int) Preview {
	n = min(n, len(t.Rows))

	rows := make([][]string, n)
	for i := range n {
		rows[i] = append([]string(nil), t.Rows[i]...)
	}

	return Preview{
		Filename:  filename,
		Columns:   append([]string(nil), t.Columns...),
		Rows:      rows,
		TotalRows: len(t.Rows),
	}
}

// HasColumn reports whether name is one of the previewed columns.
func (p Preview) HasColumn(name string) bool {
	for _, c := range p.Columns {
		if c == name {
			return true
		}
	}

	return false
}
