package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayOffset is the fixed shift between stored instants (UTC) and the
// wall-clock time printed on tickets.
const DisplayOffset = 6 * time.Hour

// DisplayZoneLabel is appended to every formatted date.
const DisplayZoneLabel = "GMT-6"

// TBC is printed when a ticket has no target date.
const TBC = "to be confirmed"

// localInputLayout is the datetime-local form used by config files and the TUI.
const localInputLayout = "2006-01-02T15:04"

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// toDisplay shifts an instant into the display frame. The result is still
// tagged UTC; only its wall-clock fields are meaningful.
func toDisplay(t time.Time) time.Time {
	return t.UTC().Add(-DisplayOffset)
}

// fromDisplay is the inverse of toDisplay.
func fromDisplay(t time.Time) time.Time {
	return t.Add(DisplayOffset).UTC()
}

// FormatTargetDate renders "14 Feb 2025, 19:00 GMT-6", or TBC when t is nil.
func FormatTargetDate(t *time.Time) string {
	if t == nil {
		return TBC
	}
	d := toDisplay(*t)
	return fmt.Sprintf("%d %s %d, %02d:%02d %s",
		d.Day(), monthAbbrev[d.Month()-1], d.Year(), d.Hour(), d.Minute(), DisplayZoneLabel)
}

// ParseDisplayDate parses the output of FormatTargetDate back into a UTC instant.
func ParseDisplayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutSuffix(s, " "+DisplayZoneLabel)
	if !ok {
		return time.Time{}, fmt.Errorf("parse display date %q: missing %s suffix", s, DisplayZoneLabel)
	}
	datePart, clock, ok := strings.Cut(rest, ", ")
	if !ok {
		return time.Time{}, fmt.Errorf("parse display date %q: missing time", s)
	}
	fields := strings.Fields(datePart)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("parse display date %q: want day, month and year", s)
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse display date %q: day: %w", s, err)
	}
	month := monthIndex(fields[1])
	if month == 0 {
		return time.Time{}, fmt.Errorf("parse display date %q: unknown month %q", s, fields[1])
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse display date %q: year: %w", s, err)
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("parse display date %q: bad clock %q", s, clock)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("parse display date %q: bad hour %q", s, hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("parse display date %q: bad minute %q", s, mm)
	}
	wall := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if wall.Day() != day {
		return time.Time{}, fmt.Errorf("parse display date %q: day out of range", s)
	}
	return fromDisplay(wall), nil
}

func monthIndex(abbrev string) time.Month {
	for i, m := range monthAbbrev {
		if strings.EqualFold(m, abbrev) {
			return time.Month(i + 1)
		}
	}
	return 0
}

// FormatLocalInput renders t as YYYY-MM-DDTHH:MM in the display frame.
func FormatLocalInput(t time.Time) string {
	return toDisplay(t).Format(localInputLayout)
}

// ParseLocalInput parses YYYY-MM-DDTHH:MM in the display frame and returns
// the matching UTC instant.
func ParseLocalInput(s string) (time.Time, error) {
	wall, err := time.Parse(localInputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse local date %q: want YYYY-MM-DDTHH:MM: %w", s, err)
	}
	return fromDisplay(wall), nil
}

// NextValentines returns the next 14 February, 19:00 display time, strictly
// after now.
func NextValentines(now time.Time) time.Time {
	year := toDisplay(now).Year()
	for {
		d := fromDisplay(time.Date(year, time.February, 14, 19, 0, 0, 0, time.UTC))
		if d.After(now) {
			return d
		}
		year++
	}
}
