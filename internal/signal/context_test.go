package signal

import (
	"testing"
	"time"
)

func TestRunContextWindowDays(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := RunContext{
		WindowStart: start,
		WindowEnd:   start.Add(72 * time.Hour),
	}

	if got, want := ctx.WindowDays(), 3.0; got != want {
		t.Errorf("WindowDays() = %v, want %v", got, want)
	}
}

func TestRunContextWindowDaysFloorsAtOneHour(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := RunContext{
		WindowStart: start,
		WindowEnd:   start.Add(10 * time.Minute),
	}

	want := 1.0 / 24.0
	if got := ctx.WindowDays(); got != want {
		t.Errorf("WindowDays() = %v, want %v", got, want)
	}
}

func TestRunContextBaselineDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := RunContext{
		BaselineStart: start,
		BaselineEnd:   start.Add(14 * 24 * time.Hour),
	}

	if got, want := ctx.BaselineDays(), 14.0; got != want {
		t.Errorf("BaselineDays() = %v, want %v", got, want)
	}
}

func TestRunContextInWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := RunContext{
		WindowStart: start,
		WindowEnd:   start.Add(24 * time.Hour),
	}

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before window", start.Add(-time.Minute), false},
		{"at window start", start, true},
		{"inside window", start.Add(12 * time.Hour), true},
		{"at window end (exclusive)", start.Add(24 * time.Hour), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ctx.InWindow(c.t); got != c.want {
				t.Errorf("InWindow(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestRunContextInBaseline(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := RunContext{
		BaselineStart: start,
		BaselineEnd:   start.Add(7 * 24 * time.Hour),
	}

	if !ctx.InBaseline(start.Add(time.Hour)) {
		t.Error("InBaseline() = false, want true for a timestamp inside the baseline")
	}
	if ctx.InBaseline(start.Add(-time.Hour)) {
		t.Error("InBaseline() = true, want false for a timestamp before the baseline")
	}
}
