// Package tui is the read-only month browser behind "workcal view". It
// renders the same calendar grids the workbook gets, plus a bar chart of
// daily worked hours.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/workcal/internal/calendar"
	"github.com/sadopc/workcal/internal/hours"
	"github.com/sadopc/workcal/internal/store"
)

type viewMode int

const (
	viewCalendar viewMode = iota
	viewChart
)

var viewNames = []string{"Calendar", "Chart"}

const cellWidth = 10

// Model is the root Bubble Tea model for the month browser.
type Model struct {
	store  *store.Store
	months []string
	idx    int
	mode   viewMode

	width  int
	height int

	help  help.Model
	chart barchart.Model
}

func New(st *store.Store) Model {
	m := Model{
		store:  st,
		months: st.Months(),
		help:   help.New(),
		chart:  barchart.New(60, 12),
	}
	// Open on the most recent month.
	m.idx = len(m.months) - 1
	m.buildChart()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			m = m.prevMonth()
			return m, nil
		case key.Matches(msg, keys.Right):
			m = m.nextMonth()
			return m, nil
		case key.Matches(msg, keys.Tab):
			m = m.toggleMode()
			return m, nil
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m Model) prevMonth() Model {
	if m.idx > 0 {
		m.idx--
		m.buildChart()
	}
	return m
}

func (m Model) nextMonth() Model {
	if m.idx < len(m.months)-1 {
		m.idx++
		m.buildChart()
	}
	return m
}

func (m Model) toggleMode() Model {
	if m.mode == viewCalendar {
		m.mode = viewChart
	} else {
		m.mode = viewCalendar
	}
	return m
}

// grid builds the current month's layout; ok is false on an empty store.
func (m Model) grid() (calendar.Grid, bool) {
	if m.idx < 0 || m.idx >= len(m.months) {
		return calendar.Grid{}, false
	}
	mk := m.months[m.idx]
	t, err := time.Parse("2006-01", mk)
	if err != nil {
		return calendar.Grid{}, false
	}
	return calendar.Build(t.Year(), t.Month(), m.store.Records(mk)), true
}

func (m *Model) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 60
	}
	m.chart = barchart.New(chartWidth, 12)

	grid, ok := m.grid()
	if !ok {
		return
	}
	recs := m.store.Records(m.months[m.idx])

	var bars []barchart.BarData
	last := time.Date(grid.Year, grid.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	for day := 1; day <= last; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", grid.Year, grid.Month, day)
		value := 0.0
		style := lipgloss.NewStyle().Foreground(colorSubtle)
		if rec, ok := recs[key]; ok {
			value = hours.Parse(rec.Worked).Hours()
			style = lipgloss.NewStyle().Foreground(colorPrimary)
		}
		bars = append(bars, barchart.BarData{
			Label:  fmt.Sprintf("%02d", day),
			Values: []barchart.BarValue{{Name: "worked", Value: value, Style: style}},
		})
	}
	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m Model) View() string {
	if len(m.months) == 0 {
		return panelStyle.Render(
			titleStyle.Render("workcal") + "\n\n" +
				mutedStyle.Render("No work hours logged yet. Run workcal to add a day."),
		)
	}

	grid, _ := m.grid()
	header := m.renderHeader(grid.Title)

	var content string
	switch m.mode {
	case viewChart:
		content = m.chart.View()
	default:
		content = m.renderCalendar(grid)
	}

	footer := footerStyle.Render(m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(content),
		footer,
	)
}

func (m Model) renderHeader(monthTitle string) string {
	var tabs []string
	for i, name := range viewNames {
		if viewMode(i) == m.mode {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	pos := mutedStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.months)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(monthTitle), "  ",
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...), "  ",
		pos,
	)
}

func (m Model) renderCalendar(grid calendar.Grid) string {
	var lines []string

	var heads []string
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		heads = append(heads, dayHeaderStyle.Render(pad(name)))
	}
	lines = append(lines, strings.Join(heads, ""))

	for _, week := range grid.Weeks {
		var nums, worked, extra []string
		for _, day := range week {
			if day.Num == 0 {
				nums = append(nums, pad(""))
				worked = append(worked, pad(""))
				extra = append(extra, pad(""))
				continue
			}
			numStyle := dayNumStyle
			if day.Weekend {
				numStyle = weekendNumStyle
			}
			nums = append(nums, numStyle.Render(pad(fmt.Sprintf("%d", day.Num))))
			if day.Worked != "" {
				worked = append(worked, workedStyle.Render(pad("W: "+day.Worked)))
			} else {
				worked = append(worked, pad(""))
			}
			if day.Extra != "" {
				extra = append(extra, extraStyle.Render(pad("E: "+day.Extra)))
			} else {
				extra = append(extra, pad(""))
			}
		}
		lines = append(lines, strings.Join(nums, ""))
		lines = append(lines, strings.Join(worked, ""))
		lines = append(lines, strings.Join(extra, ""))
	}

	lines = append(lines, "")
	lines = append(lines, totalStyle.Render("MONTHLY TOTAL")+
		workedStyle.Render("  Worked: "+hours.Format(grid.TotalWorked))+
		extraStyle.Render("  Extra: "+hours.Format(grid.TotalExtra)))

	return strings.Join(lines, "\n")
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}
