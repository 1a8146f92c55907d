package widgets

import (
	"net/url"
	"sort"
	"strings"
)

// InitialDisplay is the number of entries a grid shows before "load more".
const InitialDisplay = 12

// Query parameter names carrying grid state.
const (
	ParamShow = "show"
	ParamType = "type"
	showAll   = "all"
)

// GridState is the user-controlled part of a grid: the show-all toggle and the
// selected category tags. Tags are kept sorted and unique so encoded URLs are
// stable.
type GridState struct {
	ShowAll bool
	Tags    []string
}

// ParseGridState reads grid state from query values. Tags rejected by allowed
// are dropped; a nil allowed accepts any non-empty tag.
func ParseGridState(values url.Values, allowed func(string) bool) GridState {
	state := GridState{ShowAll: values.Get(ParamShow) == showAll}
	for _, raw := range values[ParamType] {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || (allowed != nil && !allowed(tag)) {
				continue
			}
			state.Tags = append(state.Tags, tag)
		}
	}
	state.Tags = normalizeTags(state.Tags)
	return state
}

// Values encodes the state back into query values.
func (s GridState) Values() url.Values {
	values := url.Values{}
	if s.ShowAll {
		values.Set(ParamShow, showAll)
	}
	for _, tag := range s.Tags {
		values.Add(ParamType, tag)
	}
	return values
}

// Encode returns the state as a query string without the leading "?".
func (s GridState) Encode() string {
	return s.Values().Encode()
}

// HasTag reports whether tag is selected.
func (s GridState) HasTag(tag string) bool {
	i := sort.SearchStrings(s.Tags, tag)
	return i < len(s.Tags) && s.Tags[i] == tag
}

// WithShowAllToggled returns s with the show-all flag flipped.
func (s GridState) WithShowAllToggled() GridState {
	return GridState{ShowAll: !s.ShowAll, Tags: s.Tags}
}

// WithTagToggled returns s with tag added when absent and removed when present.
func (s GridState) WithTagToggled(tag string) GridState {
	tags := make([]string, 0, len(s.Tags)+1)
	found := false
	for _, t := range s.Tags {
		if t == tag {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	if !found && tag != "" {
		tags = append(tags, tag)
	}
	return GridState{ShowAll: s.ShowAll, Tags: normalizeTags(tags)}
}

// WithoutTags returns s with no tag filter.
func (s GridState) WithoutTags() GridState {
	return GridState{ShowAll: s.ShowAll}
}

// Grid is a paginated, optionally tag-filtered view over an ordered list. It
// never reorders its input.
type Grid[T any] struct {
	items []T
	tagOf func(T) string
	state GridState
}

// NewGrid returns a grid over items. tagOf extracts an entry's category; pass
// nil for grids without filtering.
func NewGrid[T any](items []T, tagOf func(T) string) *Grid[T] {
	return &Grid[T]{items: items, tagOf: tagOf}
}

// Apply replaces the grid's state.
func (g *Grid[T]) Apply(state GridState) *Grid[T] {
	state.Tags = normalizeTags(state.Tags)
	g.state = state
	return g
}

// State returns the current state.
func (g *Grid[T]) State() GridState {
	return g.state
}

// ToggleShowAll flips between the first InitialDisplay entries and all entries.
func (g *Grid[T]) ToggleShowAll() {
	g.state = g.state.WithShowAllToggled()
}

// ToggleTag adds or removes tag from the filter.
func (g *Grid[T]) ToggleTag(tag string) {
	g.state = g.state.WithTagToggled(tag)
}

// ClearTags removes every tag from the filter.
func (g *Grid[T]) ClearTags() {
	g.state = g.state.WithoutTags()
}

// Filtered returns the entries whose tag is selected, or all entries when no
// tag is selected.
func (g *Grid[T]) Filtered() []T {
	if len(g.state.Tags) == 0 || g.tagOf == nil {
		return g.items
	}
	out := make([]T, 0, len(g.items))
	for _, item := range g.items {
		if g.state.HasTag(g.tagOf(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Visible returns the entries to render.
func (g *Grid[T]) Visible() []T {
	filtered := g.Filtered()
	if g.state.ShowAll || len(filtered) <= InitialDisplay {
		return filtered
	}
	return filtered[:InitialDisplay]
}

// HasMore reports whether the load-more control applies.
func (g *Grid[T]) HasMore() bool {
	return len(g.Filtered()) > InitialDisplay
}

// Remaining is the number of filtered entries hidden by the initial cut.
func (g *Grid[T]) Remaining() int {
	if n := len(g.Filtered()) - InitialDisplay; n > 0 {
		return n
	}
	return 0
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := append([]string(nil), tags...)
	sort.Strings(out)
	n := 0
	for i, tag := range out {
		if i > 0 && tag == out[n-1] {
			continue
		}
		out[n] = tag
		n++
	}
	return out[:n]
}
