// Package prompt drives the interactive logging session: pick a day, enter
// alternating clock-in/clock-out times, and get back the values the store
// merges. Validation happens inside the forms, so bad input re-prompts
// instead of failing the run.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/workcal/internal/hours"
	"github.com/sadopc/workcal/internal/store"
)

// doneWord ends the time-entry loop.
const doneWord = "done"

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Session is the outcome of one interactive logging session.
type Session struct {
	Date  time.Time
	Times []time.Duration
}

// Run walks the full session against the terminal. The returned error is
// only ever a cancelled or failed form; invalid input never surfaces here.
func Run(now time.Time) (*Session, error) {
	date, err := selectDate(now)
	if err != nil {
		return nil, err
	}
	times, err := collectTimes(date)
	if err != nil {
		return nil, err
	}
	return &Session{Date: date, Times: times}, nil
}

func selectDate(now time.Time) (time.Time, error) {
	choice := "today"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which day are you logging?").
				Options(
					huh.NewOption("Today", "today"),
					huh.NewOption("Yesterday", "yesterday"),
					huh.NewOption("Another date", "custom"),
				).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return time.Time{}, err
	}

	switch choice {
	case "yesterday":
		return today(now).AddDate(0, 0, -1), nil
	case "custom":
		return askCustomDate(now)
	default:
		return today(now), nil
	}
}

func askCustomDate(now time.Time) (time.Time, error) {
	var input string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("2025-01-15").
				Description("YYYY-MM-DD, today or earlier").
				Validate(ValidateDate(now)).
				Value(&input),
		),
	)
	if err := form.Run(); err != nil {
		return time.Time{}, err
	}
	date, _ := time.Parse(store.DateLayout, strings.TrimSpace(input))
	return date, nil
}

func collectTimes(date time.Time) ([]time.Duration, error) {
	var times []time.Duration
	for {
		var input string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Time entry %d — %s (%s)",
						len(times)+1, hours.EntryKind(len(times)), date.Format("Monday"))).
					Placeholder("08.30").
					Description("HH.MM format; type done to finish").
					Validate(ValidateEntry).
					Value(&input),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}
		input = strings.TrimSpace(input)
		if strings.EqualFold(input, doneWord) {
			return times, nil
		}
		t, _ := hours.ParseClock(input)
		times = append(times, t)
	}
}

// ValidateDate accepts a YYYY-MM-DD date no later than now's calendar day.
func ValidateDate(now time.Time) func(string) error {
	return func(s string) error {
		d, err := time.Parse(store.DateLayout, strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD, e.g. 2025-01-15")
		}
		if d.After(today(now)) {
			return fmt.Errorf("cannot log hours for a future date")
		}
		return nil
	}
}

// ValidateEntry accepts an HH.MM clock time or the done sentinel.
func ValidateEntry(s string) error {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, doneWord) {
		return nil
	}
	_, err := hours.ParseClock(s)
	return err
}

// Summary renders the session result for the terminal.
func Summary(date time.Time, worked, extra time.Duration, path string) string {
	extraStyle := successStyle
	if extra < 0 {
		extraStyle = warningStyle
	}
	lines := []string{
		labelStyle.Render("Results for "+date.Format("2006-01-02")) +
			mutedStyle.Render(" ("+date.Format("Monday")+")"),
		"  Hours worked  " + valueStyle.Render(hours.Format(worked)),
		"  Extra hours   " + extraStyle.Render(hours.Format(extra)),
		mutedStyle.Render("Saved to " + path),
	}
	return strings.Join(lines, "\n")
}

// today truncates now to its calendar day in UTC, matching how record
// dates are keyed.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
