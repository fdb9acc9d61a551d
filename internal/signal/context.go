package signal

import "time"

// RunContext carries the analysis window and baseline window through every
// stage. Stages read it; none of them mutate it.
type RunContext struct {
	RunID       string
	GeneratedAt time.Time

	WindowStart time.Time
	WindowEnd   time.Time

	BaselineStart time.Time
	BaselineEnd   time.Time
}

// WindowDays returns the analysis window length in days, never less than a
// small epsilon so rate computations can't divide by zero.
func (c RunContext) WindowDays() float64 {
	return durationDays(c.WindowEnd.Sub(c.WindowStart))
}

// BaselineDays returns the baseline window length in days.
func (c RunContext) BaselineDays() float64 {
	return durationDays(c.BaselineEnd.Sub(c.BaselineStart))
}

func durationDays(d time.Duration) float64 {
	const minDays = 1.0 / 24.0 // one hour floor
	days := d.Hours() / 24
	if days < minDays {
		return minDays
	}
	return days
}

// InWindow reports whether t falls within [WindowStart, WindowEnd).
func (c RunContext) InWindow(t time.Time) bool {
	return !t.Before(c.WindowStart) && t.Before(c.WindowEnd)
}

// InBaseline reports whether t falls within [BaselineStart, BaselineEnd).
func (c RunContext) InBaseline(t time.Time) bool {
	return !t.Before(c.BaselineStart) && t.Before(c.BaselineEnd)
}
