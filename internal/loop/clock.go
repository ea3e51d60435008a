package loop

import "time"

// Clock reports seconds elapsed since the scene started.
type Clock interface {
	Elapsed() float64
}

// MonotonicClock uses the monotonic reading carried by time.Time.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// ClockFunc adapts a host time source such as a window library's timer.
type ClockFunc func() float64

func (f ClockFunc) Elapsed() float64 { return f() }

// StepClock advances by a fixed step on every read. Headless runs use it to get
// reproducible frame times.
type StepClock struct {
	Step float64
	now  float64
}

func (c *StepClock) Elapsed() float64 {
	t := c.now
	c.now += c.Step
	return t
}
