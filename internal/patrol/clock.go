package patrol

import "fmt"

// DefaultStart is the countdown value a fresh clock starts from.
const DefaultStart = 1800

// Clock is the session's single countdown. It is decremented once per tick
// and wraps back to Start once it would drop below Floor.
type Clock struct {
	Start int
	Floor int
	value int
}

// NewClock creates a clock at start. floor is the low-water mark: the last
// value the clock shows before wrapping.
func NewClock(start, floor int) (*Clock, error) {
	if floor >= start {
		return nil, fmt.Errorf("clock floor %d must be below start %d", floor, start)
	}
	return &Clock{Start: start, Floor: floor, value: start}, nil
}

// Value returns the current countdown value.
func (c *Clock) Value() int {
	return c.value
}

// Period returns the number of ticks in one full loop, wrap tick included.
func (c *Clock) Period() int {
	return c.Start - c.Floor + 1
}

// tick advances by one and reports whether the clock wrapped.
func (c *Clock) tick() bool {
	if c.value-1 < c.Floor {
		c.value = c.Start
		return true
	}
	c.value--
	return false
}
