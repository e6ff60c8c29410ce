package seqmatch

import "github.com/coregx/seqmatch/internal/pattern"

// Match is a snapshot of one successful matching operation: its bounds and
// the capture groups recorded within it. Group 0 is always the entire
// match, since the builder's Build wraps the whole chain in an outer group.
type Match struct {
	start  int
	end    int
	groups []pattern.Span
}

// Start returns the inclusive start position of the match.
func (m Match) Start() int { return m.start }

// End returns the exclusive end position of the match.
func (m Match) End() int { return m.end }

// Size returns the number of elements the match spans.
func (m Match) Size() int { return m.end - m.start }

// Group returns the capture span at index, or (Span{}, false) if there is
// no capture at that index — indexing a nonexistent group is never an
// error, matching how a failed match is never an error either.
func (m Match) Group(index int) (pattern.Span, bool) {
	if index < 0 || index >= len(m.groups) {
		return pattern.Span{}, false
	}
	return m.groups[index], true
}

// Groups returns all capture spans, sorted by ascending start position,
// index 0 being the whole match.
func (m Match) Groups() []pattern.Span {
	return m.groups
}

// HitsOf returns the sub-slice of items covered by m. It does not verify
// items is the same sequence the match came from. Match itself cannot carry
// this as a method since it isn't parameterized over T.
func HitsOf[T any](m Match, items []T) []T {
	if m.start < 0 || m.Size() <= 0 || m.end > len(items) {
		return nil
	}
	return items[m.start:m.end]
}

func matchFromPattern(m pattern.Match) Match {
	if !m.Success {
		return Match{start: -1, end: -1}
	}
	return Match{start: m.Start, end: m.End, groups: m.Groups}
}

// Matcher performs matching, replacing, and splitting operations on a
// sequence using a compiled Pattern. A Matcher owns a cursor and the last
// match it found; it is not safe to use from more than one goroutine at a
// time, even though the underlying Pattern is shareable.
type Matcher[T any] struct {
	root  pattern.Node[T]
	items []T

	current    Match
	hasCurrent bool
}

func newMatcher[T any](root pattern.Node[T], items []T) *Matcher[T] {
	return &Matcher[T]{root: root, items: items}
}

// Reset clears the current match, so the next Find starts from the
// beginning of the sequence.
func (m *Matcher[T]) Reset() {
	m.hasCurrent = false
	m.current = Match{}
}

// Start returns the start of the last match found, or -1 if none.
func (m *Matcher[T]) Start() int {
	if !m.hasCurrent {
		return -1
	}
	return m.current.Start()
}

// End returns the end of the last match found, or -1 if none.
func (m *Matcher[T]) End() int {
	if !m.hasCurrent {
		return -1
	}
	return m.current.End()
}

// Size returns the size of the last match found, or 0 if none.
func (m *Matcher[T]) Size() int {
	if !m.hasCurrent {
		return 0
	}
	return m.current.Size()
}

// Groups returns the capture spans of the last match found, or nil.
func (m *Matcher[T]) Groups() []pattern.Span {
	if !m.hasCurrent {
		return nil
	}
	return m.current.Groups()
}

// Match returns the last match found, or the zero Match if none.
func (m *Matcher[T]) Match() Match {
	return m.current
}

// Find scans forward from the end of the previous match (or the beginning
// of the sequence, if there has been none) for the next sub-sequence that
// satisfies the pattern. It returns false, and leaves the matcher reset, if
// no such sub-sequence exists.
func (m *Matcher[T]) Find() bool {
	start := 0
	if m.hasCurrent {
		start = m.current.End()
		if start < 0 {
			start = 0
		}
	}
	return m.findAt(start)
}

// findAt is the core search loop: it honors mustBeFirst, prefers a
// "complete" match immediately, and otherwise keeps the earliest
// "challenger" — a match that only succeeded because a terminal optional
// sub-pattern consumed zero items — promoting it if nothing better turns up
// by the end of the scan.
func (m *Matcher[T]) findAt(position int) bool {
	if len(m.items) == 0 || (position > 0 && m.root.MustBeFirst()) {
		m.Reset()
		return false
	}

	var challenger pattern.Match
	haveChallenger := false

	for i := position; i < len(m.items); i++ {
		if i > 0 && m.root.MustBeFirst() {
			m.Reset()
			return false
		}
		candidate := m.root.FindQuantified(m.items, i)
		if !candidate.Success || candidate.Size() <= 0 || !m.closesProperly(i, candidate.Size()) {
			continue
		}
		if candidate.Complete {
			m.current = matchFromPattern(candidate)
			m.hasCurrent = true
			return true
		}
		if !haveChallenger {
			challenger = candidate
			haveChallenger = true
		}
	}

	if haveChallenger {
		m.current = matchFromPattern(challenger)
		m.hasCurrent = true
		return true
	}
	m.Reset()
	return false
}

func (m *Matcher[T]) closesProperly(position, size int) bool {
	return !m.root.MustBeLast() || position+size == len(m.items)
}

// ReplaceWithList replaces every non-overlapping match with replacement,
// splicing it in over [start,end). A nil or empty replacement deletes the
// matched sub-sequence.
func (m *Matcher[T]) ReplaceWithList(replacement []T) []T {
	return m.ReplaceWithListFunc(func(Match) []T { return replacement })
}

// ReplaceWith replaces every match with the single value replacement.
func (m *Matcher[T]) ReplaceWith(replacement T) []T {
	return m.ReplaceWithList([]T{replacement})
}

// ReplaceWithFunc replaces every match with the single value transform
// returns for it.
func (m *Matcher[T]) ReplaceWithFunc(transform func(Match) T) []T {
	return m.ReplaceWithListFunc(func(match Match) []T {
		return []T{transform(match)}
	})
}

// ReplaceWithListFunc replaces every non-overlapping match with the list
// replacement returns for it.
//
// Matches are found left to right and collected first, then applied in
// reverse (rightmost first): splicing a replacement of different length
// shifts every index after it, and applying right to left means indices to
// the left — which is to say every match not yet applied — are never
// invalidated by an earlier splice.
func (m *Matcher[T]) ReplaceWithListFunc(replacement func(Match) []T) []T {
	if len(m.items) == 0 {
		return []T{}
	}

	m.Reset()
	var matches []Match
	for m.Find() {
		matches = append(matches, m.current)
	}

	result := append([]T(nil), m.items...)
	for i := len(matches) - 1; i >= 0; i-- {
		match := matches[i]
		rep := replacement(match)
		tail := append([]T(nil), result[match.End():]...)
		result = append(result[:match.Start()], rep...)
		result = append(result, tail...)
	}
	return result
}

// Split divides the sequence into the chunks between successive matches of
// the pattern and returns an iterator over them. If the pattern is never
// found, the single chunk returned is the whole sequence.
func (m *Matcher[T]) Split() *SplitIterator[T] {
	return &SplitIterator[T]{matcher: m}
}

// SplitIterator lazily yields the chunks between successive matches of the
// pattern that produced it, via repeated calls to Next.
type SplitIterator[T any] struct {
	matcher      *Matcher[T]
	lastPosition int
	done         bool
}

// Next reports whether another chunk is available, returning it if so.
func (s *SplitIterator[T]) Next() ([]T, bool) {
	if s.done || len(s.matcher.items) == 0 || s.lastPosition >= len(s.matcher.items) {
		return nil, false
	}

	var newPosition int
	if s.matcher.findAt(s.lastPosition) {
		newPosition = s.matcher.Start()
	} else {
		newPosition = len(s.matcher.items)
		s.done = true
	}

	chunk := s.matcher.items[s.lastPosition:newPosition]
	if s.done {
		s.lastPosition = newPosition
	} else {
		s.lastPosition = newPosition + s.matcher.Size()
	}
	return chunk, true
}
