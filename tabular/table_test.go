// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	data := "\xef\xbb\xbfage,bp,,label\n30,120,x,yes\n\n45,140\n"

	table, err := Load("vitals.CSV", strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantColumns := []string{"age", "bp", "Unnamed: 2", "label"}
	if strings.Join(table.Columns, "|") != strings.Join(wantColumns, "|") {
		t.Fatalf("unexpected columns %q", table.Columns)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	if got := table.Rows[1]; got[0] != "45" || got[3] != "" {
		t.Fatalf("expected short row padded to header width, got %q", got)
	}
}

func TestLoadCSVDuplicateColumns(t *testing.T) {
	t.Parallel()

	table, err := Load("d.csv", strings.NewReader("a,a,b,a\n1,2,3,4\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := strings.Join(table.Columns, ","); got != "a,a.1,b,a.2" {
		t.Fatalf("unexpected columns %q", got)
	}
}

func TestLoadCSVRejectsRaggedRow(t *testing.T) {
	t.Parallel()

	_, err := Load("d.csv", strings.NewReader("a,b\n1,2,3\n"))
	if !errors.Is(err, errRaggedRow) {
		t.Fatalf("expected ragged row error, got %v", err)
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := Load("empty.csv", strings.NewReader("\n\n")); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected empty table error, got %v", err)
	}
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"legacy.xls", "notes.txt", "noext"} {
		if _, err := Load(name, strings.NewReader("a,b\n")); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: expected unsupported format error, got %v", name, err)
		}

		if Supported(name) {
			t.Fatalf("%s: expected unsupported", name)
		}
	}
}

func TestLoadRejectsOversizedUpload(t *testing.T) {
	t.Parallel()

	big := bytes.Repeat([]byte("a"), MaxUploadBytes+1)
	if _, err := Load("big.csv", bytes.NewReader(big)); !errors.Is(err, errTooLarge) {
		t.Fatalf("expected too large error, got %v", err)
	}
}

func TestLoadXLSX(t *testing.T) {
	t.Parallel()

	book := excelize.NewFile()
	defer func() {
		_ = book.Close()
	}()

	sheet := book.GetSheetName(0)
	cells := map[string]interface{}{
		"A1": "age", "B1": "label",
		"A2": 30, "B2": "yes",
		"A3": 61, "B3": "no",
	}

	for cell, value := range cells {
		if err := book.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("SetCellValue failed: %v", err)
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	table, err := Load("data.xlsx", buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if preview := table.Preview("data.xlsx", 1); !preview.HasColumn("label") || preview.HasColumn("missing") {
		t.Fatalf("unexpected columns %q", table.Columns)
	}

	if len(table.Rows) != 2 || table.Rows[1][0] != "61" {
		t.Fatalf("unexpected rows %q", table.Rows)
	}
}

func TestLoadXLSXRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Load("broken.xlsx", strings.NewReader("not a zip")); err == nil {
		t.Fatal("expected error for invalid workbook")
	}
}

func TestPreviewCopiesFirstRows(t *testing.T) {
	t.Parallel()

	table := &Table{
		Columns: []string{"x"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}},
	}

	preview := table.Preview("x.csv", PreviewRows)
	if len(preview.Rows) != PreviewRows || preview.TotalRows != 7 || preview.Filename != "x.csv" {
		t.Fatalf("unexpected preview %+v", preview)
	}

	preview.Rows[0][0] = "changed"
	if table.Rows[0][0] != "1" {
		t.Fatal("preview must not alias table rows")
	}

	if !preview.HasColumn("x") {
		t.Fatal("expected preview column")
	}

	short := (&Table{Columns: []string{"x"}, Rows: [][]string{{"1"}}}).Preview("s.csv", PreviewRows)
	if len(short.Rows) != 1 {
		t.Fatalf("expected 1 row preview, got %d", len(short.Rows))
	}
}
