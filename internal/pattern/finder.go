package pattern

// FindQuantified is the single recursive algorithm every node kind shares:
// it finds as many atomic occurrences of this node as its quantifier and
// the rest of the graph allow, greedily, with a look-ahead early exit once
// the minimum is satisfied. See the package-level doc comment for the
// overall shape.
func (b *base[T]) FindQuantified(items []T, pos int) Match {
	groups := newCaptureAccumulator(b.self.CapturesEnabled())

	cursor := pos
	count := 0
	current := b.self.FindOne(items, cursor)

	// Zero-match shortcut: nothing matched here, but the quantifier allows
	// zero occurrences. Defer to whatever comes after this node, without
	// recording any capture for the zero-length outcome.
	if !current.Success && b.min == 0 {
		if up := b.upstreamMatch(items, cursor); up.Success {
			return incomplete(cursor)
		}
		if b.next != nil {
			if sib := b.siblingMatch(items, cursor, Fail); sib.Success {
				return sib
			}
			return incomplete(cursor)
		}
		return incomplete(cursor)
	}

	// Hard fail: nothing matched and at least one occurrence is required.
	if !current.Success {
		return Fail
	}

	// Greedy consumption loop.
	for current.Success {
		groups.add(count, cursor, cursor+current.Size(), current)
		count++
		cursor = current.End

		if count == b.max {
			return successRange(pos, cursor).
				and(b.siblingMatch(items, cursor, success(cursor))).
				withGroups(groups.items())
		}

		if b.min != b.max && count >= b.min {
			if decided, result := b.earlyExit(items, pos, cursor, groups); decided {
				return result
			}
		}

		current = b.self.FindOne(items, cursor)
	}

	// Loop exhausted without reaching max.
	if b.min == b.max || count < b.min {
		return Fail
	}
	return successRange(pos, cursor).
		and(b.siblingMatch(items, cursor, success(cursor))).
		withGroups(groups.items())
}

// earlyExit implements the greedy look-ahead test: once the quantifier's
// minimum is satisfied and it is open-ended, decide whether consuming one
// more occurrence could still leave the rest of the pattern satisfiable.
// The first applicable decision wins; returning decided == false means
// "keep consuming".
func (b *base[T]) earlyExit(items []T, pos, cursor int, groups *captureAccumulator) (bool, Match) {
	curNext := b.self.FindOne(items, cursor)
	sib := b.siblingMatch(items, cursor, Fail)
	sibNext := b.siblingMatch(items, cursor+1, success(cursor+1))
	up := b.upstreamMatch(items, cursor)
	upNext := b.upstreamMatch(items, cursor+1)

	switch {
	case !curNext.Success && sib.Success:
		return true, successRange(pos, cursor).and(sib).withGroups(groups.items())
	case curNext.Success && up.Success && !upNext.Success:
		return true, successRange(pos, cursor).withGroups(groups.items())
	case !curNext.Success && up.Success:
		return true, successRange(pos, cursor).withGroups(groups.items())
	case curNext.Success && sib.Success && !sibNext.Success:
		return true, successRange(pos, cursor).and(sib).withGroups(groups.items())
	}
	return false, Fail
}

func (b *base[T]) siblingMatch(items []T, pos int, deflt Match) Match {
	if b.next == nil {
		return deflt
	}
	return b.next.FindQuantified(items, pos)
}

func (b *base[T]) upstreamMatch(items []T, pos int) Match {
	if b.next != nil || b.upstream == nil {
		return Fail
	}
	return b.upstream.FindQuantified(items, pos)
}
