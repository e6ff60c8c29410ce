package pattern

import "testing"

func TestGroupFindOneDelegatesToEntryPoint(t *testing.T) {
	entry := NewAtomic[int](func(v int) bool { return v == 7 })
	entry.SetQuantifier(1, 2)
	group := NewGroup[int](entry)

	m := group.FindOne([]int{7, 7, 1}, 0)
	if !m.Success || m.End != 2 {
		t.Errorf("FindOne = %+v, want success span [0,2)", m)
	}
}

func TestGroupCapturesEnabled(t *testing.T) {
	group := NewGroup[int](NewAtomic[int](func(int) bool { return true }))
	if !group.CapturesEnabled() {
		t.Error("a group must always enable captures")
	}
}

func TestGroupFindQuantifiedRecordsCapture(t *testing.T) {
	entry := NewAtomic[int](func(v int) bool { return v == 5 })
	group := NewGroup[int](entry)
	group.SetQuantifier(1, 1)

	m := group.FindQuantified([]int{5, 1, 2}, 0)
	if !m.Success {
		t.Fatalf("FindQuantified failed, want success")
	}
	if len(m.Groups) != 1 || m.Groups[0] != (Span{Start: 0, End: 1}) {
		t.Errorf("Groups = %v, want [{0 1}]", m.Groups)
	}
}

func TestGroupMustBeLastOrsEntryPoint(t *testing.T) {
	entry := NewAtomic[int](func(int) bool { return true })
	entry.SetMustBeLast(true)
	group := NewGroup[int](entry)

	if !group.MustBeLast() {
		t.Error("group.MustBeLast() should OR in its entry point's flag")
	}
}

func TestGroupAppendAsSiblingWiresUpstream(t *testing.T) {
	entry := NewAtomic[int](func(int) bool { return true })
	group := NewGroup[int](entry)
	sibling := NewAtomic[int](func(int) bool { return true })

	group.AppendAsSibling(sibling)

	if entry.Upstream() != sibling {
		t.Error("appending a sibling to a Group must wire its entry point's upstream to that sibling")
	}
}
