// Package pattern implements the node graph and the greedy, quantifier-aware
// matching algorithm that the public seqmatch API is built on.
//
// The package mirrors the layered design of a regex engine's NFA package:
// a small set of node kinds share a common edge/quantifier header, and a
// single recursive algorithm (FindQuantified, the "Finder") walks the graph honoring
// min/max bounds, sibling chains, and group reentry via upstream links.
package pattern

// Span is a half-open interval [Start, End) over a matched sequence.
type Span struct {
	Start int
	End   int
}

// Match is the result of a single matching attempt at some position.
//
// A Match with Success == false carries no other meaningful field and
// should be compared against Fail, not constructed directly.
//
// Complete is false only for a match that succeeded solely because a
// terminal optional sub-pattern consumed zero items; the seqmatch Matcher's
// search loop (findAt) defers
// such a match in favor of a later, fuller one if one turns up.
type Match struct {
	Success  bool
	Start    int
	End      int
	Complete bool
	Groups   []Span
}

// Fail is the sentinel returned by every matching routine on failure.
var Fail = Match{Start: -1, End: -1}

// Size returns End-Start, or 0 for a failed match.
func (m Match) Size() int {
	if !m.Success {
		return 0
	}
	return m.End - m.Start
}

// success returns a zero-length successful, complete match at start.
func success(start int) Match {
	return Match{Success: true, Start: start, End: start, Complete: true}
}

// successRange returns a successful, complete match over [start,end).
func successRange(start, end int) Match {
	return Match{Success: true, Start: start, End: end, Complete: true}
}

// incomplete returns a zero-length successful match flagged incomplete:
// the caller matched nothing here only because a zero-width optional
// quantifier deferred to its upstream or sibling continuation.
func incomplete(at int) Match {
	return Match{Success: true, Start: at, End: at, Complete: false}
}

// and composes two successful matches into one spanning both, taking the
// span union and tagging the result with the other (terminal/continuation)
// match's completeness, then concatenating group lists without re-sorting —
// the outermost group's accumulator performs the final sort.
func (m Match) and(other Match) Match {
	if !m.Success || !other.Success {
		return Fail
	}
	start := m.Start
	if other.Start < start {
		start = other.Start
	}
	end := m.End
	if other.End > end {
		end = other.End
	}
	result := Match{Success: true, Start: start, End: end, Complete: other.Complete}
	if len(m.Groups) > 0 {
		result.Groups = append(result.Groups, m.Groups...)
	}
	if len(other.Groups) > 0 {
		result.Groups = append(result.Groups, other.Groups...)
	}
	return result
}

// withGroups appends the given groups (already-sorted or not) to the
// match's group list.
func (m Match) withGroups(groups []Span) Match {
	if !m.Success || len(groups) == 0 {
		return m
	}
	m.Groups = append(m.Groups, groups...)
	return m
}
