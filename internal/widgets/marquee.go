package widgets

import (
	"fmt"
	"time"
)

// MarqueeDuration is the time for the track to scroll one full list width.
const MarqueeDuration = 30 * time.Second

// Marquee is an endlessly scrolling strip. The track holds the list twice so
// translating it by -50% loops seamlessly.
type Marquee[T any] struct {
	Items        []T
	Duration     time.Duration
	PauseOnHover bool
}

// NewMarquee returns a marquee with the default duration that pauses on hover.
func NewMarquee[T any](items []T) Marquee[T] {
	return Marquee[T]{Items: items, Duration: MarqueeDuration, PauseOnHover: true}
}

// Track returns the items followed by the items again.
func (m Marquee[T]) Track() []T {
	track := make([]T, 0, 2*len(m.Items))
	track = append(track, m.Items...)
	return append(track, m.Items...)
}

// AnimationStyle returns the inline animation-duration declaration.
func (m Marquee[T]) AnimationStyle() string {
	d := m.Duration
	if d <= 0 {
		d = MarqueeDuration
	}
	return fmt.Sprintf("animation-duration: %gs", d.Seconds())
}
