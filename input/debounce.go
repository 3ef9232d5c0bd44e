// Package input implements the per-key held-to-discrete-event debouncer:
// a four-state counter parameterized by (repeat, firstDelay) that turns a
// raw "is this key down this frame" bitmask into one-shot or auto-repeating
// handle events.
package input

// State is one of the four debounce states a Counter can be in.
type State uint8

const (
	Inactive State = iota
	Delay
	Repeat
	End
)

// Counter tracks one key's auto-repeat state across frames. The zero value
// is not usable; construct with NewCounter.
type Counter struct {
	repeat     uint32
	firstDelay uint32
	state      State
	canHandle  bool
	isHandled  bool
	n          uint32
}

// NewCounter builds a counter with the given repeat interval and initial
// delay, both in frames. repeat == 0 makes the key one-shot: it triggers
// once on press and not again until released and re-pressed. A firstDelay
// of 0 is treated as equal to repeat, so "instant repeat" needs no
// separate initial delay.
func NewCounter(repeat, firstDelay uint32) *Counter {
	if firstDelay == 0 {
		firstDelay = repeat
	}
	return &Counter{repeat: repeat, firstDelay: firstDelay, state: Inactive}
}

// Update advances the counter by one frame given whether the key is
// currently held.
func (c *Counter) Update(active bool) {
	if !active {
		c.state = Inactive
		c.canHandle = false
		c.isHandled = false
		c.n = 0
		return
	}
	if c.canHandle && !c.isHandled {
		return
	}
	c.isHandled = false
	switch c.state {
	case Inactive:
		c.canHandle = true
		if c.repeat == 0 {
			c.state = End
		} else {
			c.state = Delay
		}
	case Delay:
		c.n++
		c.canHandle = c.n == c.firstDelay
		if c.canHandle {
			c.n = 0
			c.state = Repeat
		}
	case Repeat:
		c.n = (c.n + 1) % c.repeat
		c.canHandle = c.n == 0
	case End:
		// no further triggers until released
	}
}

// CanHandle reports whether a trigger is currently pending consumption.
func (c *Counter) CanHandle() bool { return c.canHandle }

// Handle consumes a pending trigger, returning true if one was available.
func (c *Counter) Handle() bool {
	if c.canHandle {
		c.canHandle = false
		c.isHandled = true
		return true
	}
	return false
}
