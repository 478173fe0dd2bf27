// Package window computes the weekly reporting window for a clipping run.
//
// The clipping week runs Friday through Thursday: the window ends on the most
// recent Thursday on or before the reference date (the reference date itself
// when it falls on a Thursday) and starts six days earlier. Older revisions of
// the tool also shipped Saturday→Thursday and Friday→today variants; this rule
// is the one the weekly report settled on.
package window

import "time"

// Window is a closed calendar-date interval, inclusive at both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Current returns the reporting window anchored to today.
func Current(today time.Time) Window {
	end := truncateToDate(today)
	offset := (int(end.Weekday()) - int(time.Thursday) + 7) % 7
	end = end.AddDate(0, 0, -offset)
	return Window{
		Start: end.AddDate(0, 0, -6),
		End:   end,
	}
}

// Contains reports whether d falls inside the window, comparing calendar
// dates only.
func (w Window) Contains(d time.Time) bool {
	d = truncateToDate(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
