// Package workbook writes the work-hours history as a single .xlsx
// document: one styled calendar sheet per month, newest last, plus the flat
// Data sheet the next run reconstructs its state from.
package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sadopc/workcal/internal/calendar"
	"github.com/sadopc/workcal/internal/hours"
	"github.com/sadopc/workcal/internal/store"
)

// Sheet geometry. Day columns are A..G; each day block stacks three rows
// (number, worked, extra) so the columns stay aligned whether or not an
// extra line is present.
const (
	titleRow    = 1
	headerRow   = 3
	firstDayRow = 4
	dayRows     = 3
	numCols     = 7
	colWidth    = 15
)

// Fill colors, carried over from the legacy workbooks so old and new sheets
// look alike.
const (
	headerColor  = "366092"
	weekendColor = "FFE6E6"
	weekdayColor = "E6F3FF"
	extraColor   = "FFD700"
	workedColor  = "90EE90"
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// styleSet holds the style IDs registered on one file. Style IDs are
// per-file in excelize, so the set is rebuilt for every Assemble.
type styleSet struct {
	title       int
	header      int
	dayWeekday  int
	dayWeekend  int
	subWeekday  int
	subWeekend  int
	extra       int
	totalLabel  int
	totalWorked int
	totalExtra  int
}

// Assemble builds the full workbook from the store: month sheets in
// ascending month order, then the Data sheet. The default empty sheet is
// removed so the document contains exactly what the store holds.
func Assemble(st *store.Store) (*excelize.File, error) {
	f := excelize.NewFile()
	styles, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("register styles: %w", err)
	}

	for _, mk := range st.Months() {
		t, err := time.Parse("2006-01", mk)
		if err != nil {
			return nil, fmt.Errorf("month key %q: %w", mk, err)
		}
		grid := calendar.Build(t.Year(), t.Month(), st.Records(mk))
		if _, err := f.NewSheet(grid.Title); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", grid.Title, err)
		}
		if err := writeMonth(f, grid, styles); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", grid.Title, err)
		}
	}

	if err := writeData(f, st); err != nil {
		return nil, fmt.Errorf("data sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}
	return f, nil
}

// Write assembles the workbook and saves it to path. This is the one fatal
// path in the program: failing to persist must be visible, not swallowed.
func Write(st *store.Store, path string) error {
	f, err := Assemble(st)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func writeMonth(f *excelize.File, grid calendar.Grid, s styleSet) error {
	sheet := grid.Title

	if err := f.MergeCell(sheet, cell(1, titleRow), cell(numCols, titleRow)); err != nil {
		return err
	}
	f.SetCellValue(sheet, cell(1, titleRow), grid.Title)
	f.SetCellStyle(sheet, cell(1, titleRow), cell(numCols, titleRow), s.title)

	for i, name := range weekdayNames {
		f.SetCellValue(sheet, cell(i+1, headerRow), name)
	}
	f.SetCellStyle(sheet, cell(1, headerRow), cell(numCols, headerRow), s.header)

	for w, week := range grid.Weeks {
		base := firstDayRow + w*dayRows
		for i, day := range week {
			if day.Num == 0 {
				continue
			}
			col := i + 1
			dayStyle, subStyle := s.dayWeekday, s.subWeekday
			if day.Weekend {
				dayStyle, subStyle = s.dayWeekend, s.subWeekend
			}
			f.SetCellValue(sheet, cell(col, base), day.Num)
			f.SetCellStyle(sheet, cell(col, base), cell(col, base), dayStyle)
			f.SetCellStyle(sheet, cell(col, base+1), cell(col, base+2), subStyle)
			if day.Worked != "" {
				f.SetCellValue(sheet, cell(col, base+1), "W: "+day.Worked)
			}
			if day.Extra != "" {
				f.SetCellValue(sheet, cell(col, base+2), "E: "+day.Extra)
				f.SetCellStyle(sheet, cell(col, base+2), cell(col, base+2), s.extra)
			}
		}
	}

	// Totals sit one blank row below the last week.
	totalRow := firstDayRow + len(grid.Weeks)*dayRows + 1
	if err := f.MergeCell(sheet, cell(1, totalRow), cell(2, totalRow)); err != nil {
		return err
	}
	f.SetCellValue(sheet, cell(1, totalRow), "MONTHLY TOTAL:")
	f.SetCellStyle(sheet, cell(1, totalRow), cell(2, totalRow), s.totalLabel)
	f.SetCellValue(sheet, cell(3, totalRow), "Worked: "+hours.Format(grid.TotalWorked))
	f.SetCellStyle(sheet, cell(3, totalRow), cell(3, totalRow), s.totalWorked)
	f.SetCellValue(sheet, cell(5, totalRow), "Extra: "+hours.Format(grid.TotalExtra))
	f.SetCellStyle(sheet, cell(5, totalRow), cell(5, totalRow), s.totalExtra)

	return f.SetColWidth(sheet, "A", "G", colWidth)
}

func writeData(f *excelize.File, st *store.Store) error {
	if _, err := f.NewSheet(store.DataSheet); err != nil {
		return err
	}
	head := []any{"Date", "Hours Worked", "Extra Hours"}
	if err := f.SetSheetRow(store.DataSheet, "A1", &head); err != nil {
		return err
	}
	for i, row := range st.Flatten() {
		values := []any{row.Date, row.Worked, row.Extra}
		if err := f.SetSheetRow(store.DataSheet, cell(1, i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	center := &excelize.Alignment{Horizontal: "center"}
	border := thinBorder()

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      solid(headerColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.dayWeekday, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      solid(weekdayColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.dayWeekend, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      solid(weekendColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.subWeekday, err = f.NewStyle(&excelize.Style{
		Fill:      solid(weekdayColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.subWeekend, err = f.NewStyle(&excelize.Style{
		Fill:      solid(weekendColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.extra, err = f.NewStyle(&excelize.Style{
		Fill:      solid(extraColor),
		Alignment: center,
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.totalLabel, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return s, err
	}
	if s.totalWorked, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solid(workedColor),
	}); err != nil {
		return s, err
	}
	if s.totalExtra, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solid(extraColor),
	}); err != nil {
		return s, err
	}
	return s, nil
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Style: 1, Color: "000000"}
	}
	return borders
}

// cell converts 1-based coordinates to an A1-style reference. Coordinates
// here are always in range, so the error cannot occur.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
