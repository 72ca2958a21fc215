// Package calendar lays out one month of day records as a Monday-first
// calendar grid. It is pure layout: the xlsx writer and the terminal view
// both consume the same Grid.
package calendar

import (
	"fmt"
	"time"

	"github.com/sadopc/workcal/internal/hours"
	"github.com/sadopc/workcal/internal/store"
)

// zeroExtra is the stored text meaning "no overtime"; days at exactly the
// standard workday get no extra sub-line.
const zeroExtra = "00:00"

// Day is one grid slot. Num 0 marks a padding slot belonging to an adjacent
// month. Worked/Extra are display text; Extra stays empty when overtime is
// zero.
type Day struct {
	Num     int
	Worked  string
	Extra   string
	Weekend bool
}

// HasRecord reports whether the slot carries logged hours.
func (d Day) HasRecord() bool { return d.Worked != "" }

// Week is a fixed Monday-to-Sunday run of slots.
type Week [7]Day

// Grid is the rendered layout for one month.
type Grid struct {
	Year  int
	Month time.Month
	Title string

	Weeks []Week

	TotalWorked time.Duration
	TotalExtra  time.Duration
}

// Build lays out year/month with the given date-keyed records. Leading and
// trailing slots outside the month stay zero. Totals sum every record via
// hours.Parse, so malformed stored text contributes nothing.
func Build(year int, month time.Month, records map[string]store.DayRecord) Grid {
	g := Grid{
		Year:  year,
		Month: month,
		Title: fmt.Sprintf("%s %d", month, year),
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	slot := mondayIndex(first.Weekday())

	var week Week
	for day := 1; day <= lastDay; day++ {
		cell := Day{Num: day, Weekend: slot >= 5}
		key := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if rec, ok := records[key]; ok {
			cell.Worked = rec.Worked
			if rec.Extra != zeroExtra {
				cell.Extra = rec.Extra
			}
		}
		week[slot] = cell
		slot++
		if slot == 7 {
			g.Weeks = append(g.Weeks, week)
			week = Week{}
			slot = 0
		}
	}
	if slot != 0 {
		g.Weeks = append(g.Weeks, week)
	}

	for _, rec := range records {
		g.TotalWorked += hours.Parse(rec.Worked)
		g.TotalExtra += hours.Parse(rec.Extra)
	}
	return g
}

// mondayIndex maps time.Weekday (Sunday-first) to a Monday-first column.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
