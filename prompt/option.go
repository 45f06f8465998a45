package prompt

import (
	"fmt"
	"strings"
)

// Option is a selectable item for Select, MultiSelect and
// GroupMultiSelect. Value uniqueness is the caller's responsibility; the
// engine addresses options purely by index.
type Option[T comparable] struct {
	Value T
	// Label is shown instead of the value when set.
	Label string
	// Hint is shown next to the highlighted option.
	Hint string
}

func (o Option[T]) label() string {
	if o.Label != "" {
		return o.Label
	}
	return fmt.Sprint(o.Value)
}

// joinLabels summarizes selected options for the submitted frame.
func joinLabels[T comparable](opts []Option[T], selected func(int) bool) string {
	var labels []string
	for i, o := range opts {
		if selected(i) {
			labels = append(labels, o.label())
		}
	}
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

// window is the sliding view over a long option list. It keeps the
// cursor visible and scrolls with it; the cursor itself wraps over the
// full list, not just the visible part.
type window struct {
	max   int // 0 disables windowing
	start int
}

// slice returns the visible index range [start, end) for a list of n
// rows with the cursor at c.
func (w *window) slice(c, n int) (int, int) {
	if w.max <= 0 || n <= w.max {
		w.start = 0
		return 0, n
	}
	if c < w.start {
		w.start = c
	}
	if c > w.start+w.max-1 {
		w.start = c - w.max + 1
	}
	if w.start > n-w.max {
		w.start = n - w.max
	}
	return w.start, w.start + w.max
}

// ellipsisTop and ellipsisBottom report whether rows are hidden above or
// below the window.
func (w *window) ellipsisTop() bool { return w.start > 0 }

func (w *window) ellipsisBottom(n int) bool {
	return w.max > 0 && w.start+w.max < n
}
