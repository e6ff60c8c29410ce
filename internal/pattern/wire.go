package pattern

// Append attaches value to the tail of the chain rooted at head and returns
// the (possibly new) head — head itself if non-nil, or value if head was
// nil, i.e. value is becoming the first token of a fresh pattern.
func Append[T any](head, value Node[T]) Node[T] {
	if head == nil {
		return value
	}
	head.AppendAsSibling(value)
	return head
}

// Or merges value as an alternative to the tail of the chain rooted at
// head, implementing the three cases the builder's .or() must handle:
//
//  1. the tail is already an Alternative — append value to its list;
//  2. the tail has a preceding sibling — replace that sibling's Next with
//     a brand-new Alternative(tail, value), preserving any dangling
//     upstream pointer via ReplaceSibling;
//  3. the tail is the only node in the chain — head itself becomes the new
//     Alternative, which the caller must adopt as its new head.
//
// Returns the (possibly new) head.
func Or[T any](head, value Node[T]) Node[T] {
	if head == nil {
		return value
	}
	last := head.Last()
	if alt, ok := last.(*alternativeNode[T]); ok {
		alt.AddAlternative(value)
		return head
	}
	penultimate := last.Previous()
	if penultimate != nil {
		penultimate.ReplaceSibling(NewAlternative(last, value))
		return head
	}
	return NewAlternative(head, value)
}

// Build wraps the chain rooted at head in an outer capturing Group so the
// whole match is always capture index 0.
func Build[T any](head Node[T]) Node[T] {
	return NewGroup(head)
}
