package pattern

// groupNode wraps a sub-graph (entryPoint) as a capturing group. Matching a
// group means running the Finder over its entry point; the returned span is
// the group's own span, and any nested captures from within entryPoint
// propagate upward through the capture accumulator.
type groupNode[T any] struct {
	base[T]
	entryPoint Node[T]
}

// NewGroup returns a Node wrapping entryPoint as a capturing group.
func NewGroup[T any](entryPoint Node[T]) Node[T] {
	n := &groupNode[T]{entryPoint: entryPoint}
	n.base = newBase[T](n)
	return n
}

// EntryPoint returns the sub-graph this group wraps.
func (n *groupNode[T]) EntryPoint() Node[T] { return n.entryPoint }

func (n *groupNode[T]) FindOne(items []T, pos int) Match {
	return n.entryPoint.FindQuantified(items, pos)
}

func (n *groupNode[T]) CapturesEnabled() bool { return true }

// MustBeFirst is the OR of this node's own flag and its entry point's,
// since an anchor placed inside the group still constrains the group as a
// whole.
func (n *groupNode[T]) MustBeFirst() bool {
	return n.base.MustBeFirst() || n.entryPoint.MustBeFirst()
}

// MustBeLast is the OR of this node's own flag and its entry point's last
// element's.
func (n *groupNode[T]) MustBeLast() bool {
	return n.base.MustBeLast() || n.entryPoint.Last().MustBeLast()
}

// AppendAsSibling wires the new sibling as normal, then — the first time
// this happens — makes it the upstream reentry point for the group's own
// entry point, so matching inside the group knows where to "return to"
// once its chain is exhausted.
func (n *groupNode[T]) AppendAsSibling(value Node[T]) {
	n.base.AppendAsSibling(value)
	last := n.entryPoint.Last()
	if last.Upstream() == nil {
		last.AppendAsUpstream(value)
	}
}
