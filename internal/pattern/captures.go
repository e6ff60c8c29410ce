package pattern

import "sort"

// captureAccumulator collects capture spans produced during one matching
// attempt at a Group node, enforcing "last iteration wins" for a group
// repeated under a quantifier — the same rule standard regex engines use
// for a capturing group inside a `+` or `*`.
//
// An accumulator built with enabled == false is a no-op: non-group nodes
// (Atomic, and an Alternative with no Group alternative) use a disabled
// accumulator so they never allocate or record a span.
type captureAccumulator struct {
	enabled bool
	groups  []Span

	prevStart int
	prevEnd   int
}

// captureCapacityHint pre-sizes every accumulator's backing slice. It has no
// effect on correctness, only on how many times a heavily-repeated group
// reallocates while accumulating spans; callers adjust it through
// SetCaptureCapacityHint (wired from the public Config).
var captureCapacityHint = 4

// SetCaptureCapacityHint changes the capacity new accumulators are built
// with. Values <= 0 are ignored, leaving the previous hint in place.
func SetCaptureCapacityHint(n int) {
	if n > 0 {
		captureCapacityHint = n
	}
}

func newCaptureAccumulator(enabled bool) *captureAccumulator {
	if !enabled {
		return &captureAccumulator{}
	}
	return &captureAccumulator{enabled: enabled, groups: make([]Span, 0, captureCapacityHint)}
}

// add records the span [start,end) for the iteration-th repetition of the
// owning node, then appends any nested groups carried by match. When
// iteration > 0, the span recorded by the previous iteration is first
// evicted so only the last iteration's capture for this group survives.
func (c *captureAccumulator) add(iteration, start, end int, match Match) {
	if !c.enabled {
		return
	}
	if iteration > 0 {
		for i, g := range c.groups {
			if g.Start == c.prevStart && g.End == c.prevEnd {
				c.groups = append(c.groups[:i], c.groups[i+1:]...)
				break
			}
		}
	}
	c.prevStart, c.prevEnd = start, end
	c.groups = append(c.groups, Span{Start: start, End: end})
	if len(match.Groups) > 0 {
		c.groups = append(c.groups, match.Groups...)
	}
}

// items returns the accumulated groups sorted by ascending start position.
// The sort is stable and is redone on every call.
func (c *captureAccumulator) items() []Span {
	if len(c.groups) == 0 {
		return nil
	}
	sort.SliceStable(c.groups, func(i, j int) bool {
		return c.groups[i].Start < c.groups[j].Start
	})
	return c.groups
}
