package session

import "time"

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Implementations call f on their own
// goroutine or from an explicit advance; never from inside AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules callbacks on the runtime timer.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
