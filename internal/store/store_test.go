package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// writeSheet creates a workbook at path with a single flat table on the
// named sheet. The default Sheet1 is removed unless it is the target.
func writeSheet(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("delete default sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

var header = []any{"Date", "Hours Worked", "Extra Hours"}

// ============================================================
// Merge / Flatten
// ============================================================

func TestNewIsEmpty(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("new store should be empty, got %d records", s.Len())
	}
	if len(s.Months()) != 0 {
		t.Fatal("new store should have no months")
	}
	if rows := s.Flatten(); rows != nil {
		t.Fatalf("expected nil flatten, got %d rows", len(rows))
	}
}

func TestMergeCreatesMonthBucket(t *testing.T) {
	s := New()
	s.Merge(day("2025-01-15"), "08:30", "00:30")

	months := s.Months()
	if len(months) != 1 || months[0] != "2025-01" {
		t.Fatalf("months = %v, want [2025-01]", months)
	}
	rec, ok := s.Records("2025-01")["2025-01-15"]
	if !ok {
		t.Fatal("record not filed under its date")
	}
	if rec.Worked != "08:30" || rec.Extra != "00:30" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestMergeIdempotent(t *testing.T) {
	s := New()
	s.Merge(day("2025-01-15"), "08:30", "00:30")
	s.Merge(day("2025-01-15"), "08:30", "00:30")

	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
}

func TestMergeOverwritesSameDate(t *testing.T) {
	s := New()
	s.Merge(day("2025-01-15"), "08:00", "00:00")
	s.Merge(day("2025-01-15"), "09:15", "01:15")

	rows := s.Flatten()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after overwrite, got %d", len(rows))
	}
	if rows[0].Worked != "09:15" || rows[0].Extra != "01:15" {
		t.Fatalf("overwrite lost: %+v", rows[0])
	}
}

func TestMonthsSorted(t *testing.T) {
	s := New()
	s.Merge(day("2025-03-01"), "08:00", "00:00")
	s.Merge(day("2024-12-31"), "08:00", "00:00")
	s.Merge(day("2025-01-10"), "08:00", "00:00")

	months := s.Months()
	want := []string{"2024-12", "2025-01", "2025-03"}
	if len(months) != len(want) {
		t.Fatalf("months = %v", months)
	}
	for i := range want {
		if months[i] != want[i] {
			t.Fatalf("months = %v, want %v", months, want)
		}
	}
}

func TestFlattenChronological(t *testing.T) {
	s := New()
	// Merged out of order on purpose.
	s.Merge(day("2025-01-20"), "07:45", "-00:15")
	s.Merge(day("2024-12-05"), "08:00", "00:00")
	s.Merge(day("2025-01-03"), "08:30", "00:30")

	rows := s.Flatten()
	want := []string{"2024-12-05", "2025-01-03", "2025-01-20"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, d := range want {
		if rows[i].Date != d {
			t.Fatalf("row %d: date %q, want %q", i, rows[i].Date, d)
		}
	}
}

func TestLen(t *testing.T) {
	s := New()
	s.Merge(day("2025-01-15"), "08:00", "00:00")
	s.Merge(day("2025-02-15"), "08:00", "00:00")
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

// ============================================================
// Load
// ============================================================

func TestLoadMissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	if s.Len() != 0 {
		t.Fatal("missing file should load as empty store")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	if err := os.WriteFile(path, []byte("this is not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if s.Len() != 0 {
		t.Fatal("corrupt file should load as empty store")
	}
}

func TestLoadFromDataSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")
	writeSheet(t, path, DataSheet, [][]any{
		header,
		{"2025-01-10", "08:00", "00:00"},
		{"2025-01-20", "07:45", "-00:15"},
	})

	s := Load(path)
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	rec := s.Records("2025-01")["2025-01-20"]
	if rec.Worked != "07:45" || rec.Extra != "-00:15" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestLoadLegacyFirstSheet(t *testing.T) {
	// Old workbooks had the flat table on their only, arbitrarily named
	// sheet. No Data sheet present.
	path := filepath.Join(t.TempDir(), "legacy.xlsx")
	writeSheet(t, path, "Sheet1", [][]any{
		header,
		{"2024-11-05", "08:15", "00:15"},
	})

	s := Load(path)
	if s.Len() != 1 {
		t.Fatalf("expected 1 record from legacy sheet, got %d", s.Len())
	}
	if _, ok := s.Records("2024-11")["2024-11-05"]; !ok {
		t.Fatal("legacy record not loaded")
	}
}

func TestLoadDataSheetPreferred(t *testing.T) {
	// Both a first sheet and a Data sheet carry tables; Data wins.
	path := filepath.Join(t.TempDir(), "both.xlsx")
	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]any{"Date", "Hours Worked", "Extra Hours"})
	f.SetSheetRow("Sheet1", "A2", &[]any{"2020-01-01", "01:00", "00:00"})
	if _, err := f.NewSheet(DataSheet); err != nil {
		t.Fatal(err)
	}
	f.SetSheetRow(DataSheet, "A1", &[]any{"Date", "Hours Worked", "Extra Hours"})
	f.SetSheetRow(DataSheet, "A2", &[]any{"2025-06-06", "08:00", "00:00"})
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
	if _, ok := s.Records("2025-06")["2025-06-06"]; !ok {
		t.Fatal("Data sheet should take precedence over legacy sheet")
	}
}

func TestLoadSkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.xlsx")
	writeSheet(t, path, DataSheet, [][]any{
		header,
		{"2025-01-10", "08:00", "00:00"},
		{"not a date", "08:00", "00:00"},
		{""},
		{"2025-01-11", "08:30", "00:30"},
	})

	s := Load(path)
	if s.Len() != 2 {
		t.Fatalf("expected 2 valid records, got %d", s.Len())
	}
}

func TestLoadRejectsHeaderlessSheet(t *testing.T) {
	// A sheet that is not a flat table (e.g. a calendar grid) must not be
	// misread as history.
	path := filepath.Join(t.TempDir(), "grid.xlsx")
	writeSheet(t, path, "January 2025", [][]any{
		{"January 2025"},
		{},
		{"Monday", "Tuesday", "Wednesday"},
	})

	s := Load(path)
	if s.Len() != 0 {
		t.Fatal("non-table sheet should load as empty store")
	}
}

func TestLoadSpreadsheetFormattedDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.xlsx")
	writeSheet(t, path, DataSheet, [][]any{
		header,
		{"1/2/06", "08:00", "00:00"},
		{"01/02/2006", "07:00", "-01:00"},
	})

	s := Load(path)
	// Both spellings normalize to the same canonical date, so the second
	// row overwrites the first.
	if s.Len() != 1 {
		t.Fatalf("expected 1 record after normalization, got %d", s.Len())
	}
	rec, ok := s.Records("2006-01")["2006-01-02"]
	if !ok {
		t.Fatal("date not normalized to canonical form")
	}
	if rec.Worked != "07:00" {
		t.Fatalf("later row should win: %+v", rec)
	}
}

func TestLoadEmptyDataSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.xlsx")
	writeSheet(t, path, DataSheet, [][]any{header})

	s := Load(path)
	if s.Len() != 0 {
		t.Fatal("header-only Data sheet is a valid empty store")
	}
}
