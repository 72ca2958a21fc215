package store

import (
	"sort"
	"time"
)

const (
	// DataSheet is the workbook sheet holding the canonical flat table.
	// It is the round-trip source for the next run's Load.
	DataSheet = "Data"

	// DateLayout is the canonical textual date form used for record keys
	// and the Data sheet.
	DateLayout = "2006-01-02"

	monthKeyLayout = "2006-01"
)

// DefaultFilename is the workbook written in the working directory when no
// --file flag is given.
const DefaultFilename = "work_hours_history.xlsx"

// DayRecord is one date's worked/extra pair, kept as formatted HH:MM text.
// The persisted form is textual, so the store holds text too; durations are
// only materialized when totals are computed.
type DayRecord struct {
	Worked string
	Extra  string
}

// Row is one flattened record of the Data sheet.
type Row struct {
	Date   string
	Worked string
	Extra  string
}

// Store maps month keys ("2006-01") to date-keyed day records. A store is
// rebuilt fresh each run: Load, one Merge, then Flatten for output.
type Store struct {
	months map[string]map[string]DayRecord
}

func New() *Store {
	return &Store{months: make(map[string]map[string]DayRecord)}
}

// Merge files the record for date under its month, overwriting any existing
// record for that date. Re-logging a day corrects the earlier entry.
func (s *Store) Merge(date time.Time, worked, extra string) {
	mk := date.Format(monthKeyLayout)
	if s.months[mk] == nil {
		s.months[mk] = make(map[string]DayRecord)
	}
	s.months[mk][date.Format(DateLayout)] = DayRecord{Worked: worked, Extra: extra}
}

// Months returns the known month keys in ascending order.
func (s *Store) Months() []string {
	keys := make([]string, 0, len(s.months))
	for mk := range s.months {
		keys = append(keys, mk)
	}
	sort.Strings(keys)
	return keys
}

// Records returns one month's records keyed by date.
func (s *Store) Records(monthKey string) map[string]DayRecord {
	return s.months[monthKey]
}

// Len reports the total number of day records.
func (s *Store) Len() int {
	n := 0
	for _, recs := range s.months {
		n += len(recs)
	}
	return n
}

// Flatten returns every record as a Data sheet row, sorted chronologically.
// Month keys and dates share a lexicographic-equals-chronological layout, so
// plain string sorts give calendar order.
func (s *Store) Flatten() []Row {
	var rows []Row
	for _, mk := range s.Months() {
		recs := s.months[mk]
		dates := make([]string, 0, len(recs))
		for d := range recs {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			rows = append(rows, Row{Date: d, Worked: recs[d].Worked, Extra: recs[d].Extra})
		}
	}
	return rows
}
