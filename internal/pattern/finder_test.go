package pattern

import "testing"

func digit(n int) Node[int] {
	return NewAtomic[int](func(v int) bool { return v == n })
}

func any_() Node[int] {
	return NewAtomic[int](func(int) bool { return true })
}

func TestFindQuantifiedExact(t *testing.T) {
	node := digit(1)
	node.SetQuantifier(1, 1)

	tests := []struct {
		items []int
		pos   int
		want  bool
		end   int
	}{
		{[]int{1, 1, 2}, 0, true, 1},
		{[]int{2, 1, 2}, 0, false, 0},
		{[]int{1}, 0, true, 1},
	}
	for _, tt := range tests {
		m := node.FindQuantified(tt.items, tt.pos)
		if m.Success != tt.want {
			t.Errorf("FindQuantified(%v,%d).Success = %v, want %v", tt.items, tt.pos, m.Success, tt.want)
			continue
		}
		if tt.want && m.End != tt.end {
			t.Errorf("FindQuantified(%v,%d).End = %d, want %d", tt.items, tt.pos, m.End, tt.end)
		}
	}
}

func TestFindQuantifiedZeroOrMore(t *testing.T) {
	node := digit(9)
	node.SetQuantifier(0, maxInt)

	tests := []struct {
		items []int
		pos   int
		end   int
	}{
		{[]int{9, 9, 9, 1}, 0, 3},
		{[]int{1, 9, 9}, 0, 0},
		{[]int{}, 0, 0},
	}
	for _, tt := range tests {
		m := node.FindQuantified(tt.items, tt.pos)
		if !m.Success {
			t.Errorf("FindQuantified(%v,%d) failed, want success", tt.items, tt.pos)
			continue
		}
		if m.End != tt.end {
			t.Errorf("FindQuantified(%v,%d).End = %d, want %d", tt.items, tt.pos, m.End, tt.end)
		}
	}
}

func TestFindQuantifiedOneOrMoreFailsOnZero(t *testing.T) {
	node := digit(9)
	node.SetQuantifier(1, maxInt)

	m := node.FindQuantified([]int{1, 2, 3}, 0)
	if m.Success {
		t.Errorf("FindQuantified() = %+v, want failure (min=1 with no matches)", m)
	}
}

func TestFindQuantifiedRangeGreedyThenSibling(t *testing.T) {
	// a{1,3} followed by a single fixed "2": over [1,1,1,2], a{1,3} greedily
	// eats all three 1s, then the sibling "2" matches at position 3.
	head := digit(1)
	head.SetQuantifier(1, 3)
	tail := digit(2)
	Append[int](head, tail)

	m := head.FindQuantified([]int{1, 1, 1, 2}, 0)
	if !m.Success || m.Start != 0 || m.End != 4 {
		t.Errorf("FindQuantified = %+v, want success span [0,4)", m)
	}
}

func TestFindQuantifiedEarlyExitYieldsToSibling(t *testing.T) {
	// any{1,} followed by a fixed "9": greedy any would eat the whole
	// sequence, but the early-exit test must back off by exactly the
	// amount the sibling needs.
	head := any_()
	head.SetQuantifier(1, maxInt)
	tail := digit(9)
	Append[int](head, tail)

	m := head.FindQuantified([]int{1, 2, 3, 9}, 0)
	if !m.Success || m.Start != 0 || m.End != 4 {
		t.Errorf("FindQuantified = %+v, want success span [0,4)", m)
	}
}

func TestFindQuantifiedEarlyExitFailsWithoutEnoughTail(t *testing.T) {
	head := any_()
	head.SetQuantifier(1, maxInt)
	tail := digit(9)
	Append[int](head, tail)

	// no 9 anywhere in the sequence: any{1,} consumes everything and the
	// mandatory sibling can never match, so the whole chain fails.
	m := head.FindQuantified([]int{1, 2, 3}, 0)
	if m.Success {
		t.Errorf("FindQuantified = %+v, want failure (sibling never satisfiable)", m)
	}
}

const maxInt = int(^uint(0) >> 1)
