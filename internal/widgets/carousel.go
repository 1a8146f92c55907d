package widgets

import (
	"sync"
	"time"
)

const (
	// AutoplayInterval is the delay between automatic advances.
	AutoplayInterval = 5 * time.Second
	// TransitionDuration is the fade-out window before the index moves.
	TransitionDuration = 300 * time.Millisecond
)

// Wrap returns index+delta modulo n. It returns 0 when n is not positive.
func Wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i := (index + delta) % n
	if i < 0 {
		i += n
	}
	return i
}

// Carousel tracks the visible slide. Next and Prev start a transition that
// Settle completes; GoTo jumps directly. It is safe for concurrent use.
type Carousel struct {
	mu            sync.Mutex
	n             int
	index         int
	pending       int
	transitioning bool
}

// NewCarousel returns a carousel of n slides showing slide 0.
func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n}
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Index returns the visible slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Transitioning reports whether a move is waiting for Settle.
func (c *Carousel) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitioning
}

// Next starts a transition to the following slide.
func (c *Carousel) Next() { c.step(1) }

// Prev starts a transition to the previous slide.
func (c *Carousel) Prev() { c.step(-1) }

func (c *Carousel) step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 {
		return
	}
	from := c.index
	if c.transitioning {
		from = c.pending
	}
	c.pending = Wrap(from, delta, c.n)
	c.transitioning = true
}

// Settle completes a pending transition. It returns the visible slide.
func (c *Carousel) Settle() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transitioning {
		c.index = c.pending
		c.transitioning = false
	}
	return c.index
}

// GoTo shows slide i immediately and drops any pending transition.
// Out-of-range indices are ignored.
func (c *Carousel) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.n {
		return
	}
	c.index = i
	c.transitioning = false
}
