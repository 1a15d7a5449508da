package domain

import "time"

// TimeWindow is a candidate booking slot. Windows are generated fresh per
// availability request and never persisted.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// GenerateWindows walks [open, close] producing fixed-length windows at the
// given step; the last window starts no later than close minus length.
// A malformed range (close before open plus length) yields no windows.
func GenerateWindows(open, close time.Time, length, step time.Duration) []TimeWindow {
	if length <= 0 || step <= 0 {
		return nil
	}

	lastStart := close.Add(-length)

	windows := []TimeWindow{}
	for start := open; !start.After(lastStart); start = start.Add(step) {
		windows = append(windows, TimeWindow{Start: start, End: start.Add(length)})
	}
	return windows
}
