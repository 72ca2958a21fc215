package store

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the forms a Data sheet date cell may arrive in. Cells we
// wrote ourselves are plain YYYY-MM-DD text; workbooks touched by a
// spreadsheet application may have been coerced to a date-styled cell,
// which excelize renders in m/d/yy style.
var dateLayouts = []string{
	DateLayout,
	"1/2/06",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01-02-06",
}

// Load reads prior history from the workbook at path. Every failure mode —
// missing file, unknown layout, corrupt rows — degrades to an empty store:
// a run must never be blocked by an unreadable artifact from a previous one.
func Load(path string) *Store {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return New()
	}
	defer f.Close()

	if st, err := fromSheet(f, DataSheet); err == nil {
		return st
	}
	// Legacy workbooks kept the flat table on their only sheet, unnamed.
	if sheets := f.GetSheetList(); len(sheets) > 0 {
		if st, err := fromSheet(f, sheets[0]); err == nil {
			return st
		}
	}
	return New()
}

// fromSheet rebuilds a store from a flat Date / Hours Worked / Extra Hours
// table. The header row must match, which keeps a calendar sheet in a
// legacy workbook from being misread as data. Rows whose date cannot be
// parsed are skipped.
func fromSheet(f *excelize.File, sheet string) (*Store, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 || len(rows[0]) < 3 || rows[0][0] != "Date" {
		return nil, fmt.Errorf("sheet %q: not a data table", sheet)
	}

	st := New()
	for _, row := range rows[1:] {
		if len(row) < 1 {
			continue
		}
		date, ok := parseDate(row[0])
		if !ok {
			continue
		}
		var worked, extra string
		if len(row) > 1 {
			worked = row[1]
		}
		if len(row) > 2 {
			extra = row[2]
		}
		st.Merge(date, worked, extra)
	}
	return st, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
