// util/time.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "time"

// TimeInterval represents a time interval with start and end times.
type TimeInterval [2]time.Time

// Start returns the start time of the interval.
func (ti TimeInterval) Start() time.Time {
	return ti[0]
}

// End returns the end time of the interval.
func (ti TimeInterval) End() time.Time {
	return ti[1]
}

// Duration returns the duration of the interval.
func (ti TimeInterval) Duration() time.Duration {
	return ti[1].Sub(ti[0])
}

// Contains reports whether t falls within the interval, inclusive of both
// endpoints.
func (ti TimeInterval) Contains(t time.Time) bool {
	return !t.Before(ti[0]) && !t.After(ti[1])
}
