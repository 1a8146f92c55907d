package widgets

import "strconv"

// None marks an accordion with every panel closed.
const None = -1

// Accordion allows at most one open panel.
type Accordion struct {
	n    int
	open int
}

// NewAccordion returns an accordion of n panels, all closed.
func NewAccordion(n int) *Accordion {
	if n < 0 {
		n = 0
	}
	return &Accordion{n: n, open: None}
}

// Len returns the number of panels.
func (a *Accordion) Len() int { return a.n }

// Open returns the open panel index or None.
func (a *Accordion) Open() int { return a.open }

// IsOpen reports whether panel i is open.
func (a *Accordion) IsOpen(i int) bool {
	return a.open != None && a.open == i
}

// Set opens panel i, or closes everything for None. Out-of-range indices are
// ignored.
func (a *Accordion) Set(i int) {
	if i == None || a.inRange(i) {
		a.open = i
	}
}

// Toggle closes panel i when it is open and otherwise opens it, closing any
// other panel.
func (a *Accordion) Toggle(i int) {
	a.open = a.After(i)
}

// After returns the open index that toggling i would produce, without
// changing the accordion.
func (a *Accordion) After(i int) int {
	if !a.inRange(i) {
		return a.open
	}
	if a.open == i {
		return None
	}
	return i
}

func (a *Accordion) inRange(i int) bool {
	return i >= 0 && i < a.n
}

// ParseIndex reads a panel index from a query value. Empty or malformed
// values yield None.
func ParseIndex(raw string) int {
	if raw == "" {
		return None
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return None
	}
	return i
}
