package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StandardWorkday is the baseline a day's worked time is measured against
// when computing extra hours.
const StandardWorkday = 8 * time.Hour

// Format renders d as zero-padded HH:MM. Negative durations get a single
// leading sign on the absolute magnitude, so -15m is "-00:15".
func Format(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int(d / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}

// Parse reads an HH:MM string produced by Format. Malformed input yields a
// zero duration rather than an error: stored text that cannot be read must
// never fail a run.
func Parse(s string) time.Duration {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	h, m, ok := splitHM(s, ":")
	if !ok {
		return 0
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if neg {
		d = -d
	}
	return d
}

// ParseClock reads a wall-clock time in the HH.MM format used at the entry
// prompt and returns it as an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	h, m, ok := splitHM(strings.TrimSpace(s), ".")
	if !ok || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: want HH.MM, e.g. 08.30", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func splitHM(s, sep string) (h, m int, ok bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 {
		return 0, 0, false
	}
	return h, m, true
}

// Worked sums clock-out minus clock-in over consecutive pairs of clock
// times. A trailing unmatched clock-in contributes nothing.
func Worked(times []time.Duration) time.Duration {
	var total time.Duration
	for i := 0; i+1 < len(times); i += 2 {
		total += times[i+1] - times[i]
	}
	return total
}

// Extra is worked time beyond the given workday; negative for short days.
func Extra(worked, workday time.Duration) time.Duration {
	return worked - workday
}

// EntryKind labels the nth entry of the alternating in/out sequence.
func EntryKind(n int) string {
	if n%2 == 0 {
		return "Clock In"
	}
	return "Clock Out"
}
