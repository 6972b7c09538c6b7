package uistate

import "github.com/benbjohnson/clock"

// RealClock returns the wall clock used outside tests
func RealClock() clock.Clock {
	return clock.New()
}
