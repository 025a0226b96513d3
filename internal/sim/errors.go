package sim

import "errors"

var (
	// ErrInvalidWindow is returned when a simulation window ends before it
	// starts. The simulators fail fast rather than running over a zero or
	// negative day count.
	ErrInvalidWindow = errors.New("invalid date range: end before start")

	// ErrInvalidTrials is returned when the requested Monte-Carlo trial
	// count is not positive.
	ErrInvalidTrials = errors.New("trial count must be positive")
)
