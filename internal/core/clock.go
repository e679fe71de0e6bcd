package core

import "time"

// Clock provides the current time. Spawn timing compares readings from it,
// so implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. time.Now carries a monotonic reading,
// so Sub between two values is immune to wall-clock jumps.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
