package sim

import "time"

// Window is an inclusive start/end date range for a matchup. A same-day
// window covers exactly one day.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates and builds a Window. The end date may equal the start
// date but must not precede it.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if w.Days() < 1 {
		return Window{}, ErrInvalidWindow
	}
	return w, nil
}

// Days returns the inclusive day count of the window. Both bounds are
// treated as civil dates: hours, minutes, and zone offsets are dropped
// before differencing.
func (w Window) Days() int {
	start := civil(w.Start)
	end := civil(w.End)
	return int(end.Sub(start).Hours()/24) + 1
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
