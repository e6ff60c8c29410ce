package seqmatch

import (
	"reflect"

	"github.com/coregx/seqmatch/internal/pattern"
)

// Finalizer is a builder ready for a terminal operation: producing a
// compiled Pattern or a Matcher over some items.
type Finalizer[T any] interface {
	// Build completes the builder, producing a Pattern.
	Build() Pattern[T]

	// Matcher completes the builder and returns a Matcher over items.
	Matcher(items []T) *Matcher[T]
}

// Builder accepts matching predicates, samples, and nested groups.
type Builder[T any] interface {
	Finalizer[T]

	// Any adds a token that matches any single element.
	Any() Token[T]

	// Token adds a token that matches elements equal to sample.
	Token(sample T) Token[T]

	// TokenFunc adds a token that matches elements accepted by predicate.
	TokenFunc(predicate Predicate[T]) Token[T]

	// TokenPattern adds a capturing group wrapping an already-built Pattern.
	TokenPattern(sub Pattern[T]) Token[T]

	// TokenGroup adds a capturing group built by a nested builder. build
	// receives a fresh Starter, using this builder's MaxQuantifier, and must
	// return its Finalizer (typically the last Token of the nested chain,
	// since every Token is a Finalizer).
	TokenGroup(build func(Starter[T]) Finalizer[T]) Token[T]

	// Ending marks the most recently added token as needing to match the
	// trailing element of the sequence.
	Ending() Finalizer[T]
}

// Starter is a builder that can still be assigned the "beginning" anchor,
// i.e. one to which no token has been added yet.
type Starter[T any] interface {
	Builder[T]

	// Beginning marks the first token to be added as needing to match the
	// leading element of the sequence.
	Beginning() Builder[T]
}

// Token is returned immediately after a token is added; it carries a
// pending quantifier (default exactly-one) that can still be changed, an
// alternative that can still be attached, and a debug tag.
type Token[T any] interface {
	Builder[T]

	ZeroOrOne() Builder[T]
	ZeroOrMore() Builder[T]
	OneOrMore() Builder[T]
	Count(n int) Builder[T]
	CountRange(min, max int) Builder[T]

	// Or attaches an alternative sample to the pending token.
	Or(sample T) Token[T]
	// OrFunc attaches an alternative predicate to the pending token.
	OrFunc(predicate Predicate[T]) Token[T]
	// OrPattern attaches an already-built Pattern as an alternative group.
	OrPattern(sub Pattern[T]) Token[T]
	// OrGroup attaches a nested-builder group as an alternative.
	OrGroup(build func(Starter[T]) Finalizer[T]) Token[T]

	// Tag assigns a debug label to the pending token.
	Tag(value string) Token[T]
}

// builderImpl is the sole concrete Starter/Builder implementation. It owns
// the head of the chain being built; token-adding methods delegate to
// store/storeAlternative, which do the actual graph wiring via the node
// types' own AppendAsSibling/Or helpers.
type builderImpl[T any] struct {
	head          pattern.Node[T]
	mustBeFirst   bool
	maxQuantifier int
}

func (b *builderImpl[T]) Beginning() Builder[T] {
	b.mustBeFirst = true
	return b
}

func (b *builderImpl[T]) Any() Token[T] {
	return b.addToken(pattern.NewAtomic[T](func(T) bool { return true }))
}

func (b *builderImpl[T]) Token(sample T) Token[T] {
	return b.TokenFunc(func(v T) bool { return equal(v, sample) })
}

func (b *builderImpl[T]) TokenFunc(predicate Predicate[T]) Token[T] {
	return b.addToken(pattern.NewAtomic(pattern.Predicate[T](predicate)))
}

func (b *builderImpl[T]) TokenPattern(sub Pattern[T]) Token[T] {
	return b.addToken(sub.root)
}

func (b *builderImpl[T]) TokenGroup(build func(Starter[T]) Finalizer[T]) Token[T] {
	return b.TokenPattern(build(&builderImpl[T]{maxQuantifier: b.maxQuantifier}).Build())
}

// addToken stores node as the next (or first) element of the chain and
// returns a Token wrapping it — the common tail of every token-adding
// method above.
func (b *builderImpl[T]) addToken(node pattern.Node[T]) Token[T] {
	b.store(node)
	return &tokenImpl[T]{builder: b, node: node}
}

func (b *builderImpl[T]) Ending() Finalizer[T] {
	if b.head == nil {
		invalidBuilderOp("ending", "no pending token to mark as must-be-last")
	}
	b.head.Last().SetMustBeLast(true)
	return b
}

func (b *builderImpl[T]) Build() Pattern[T] {
	return Pattern[T]{root: pattern.Build(b.head)}
}

func (b *builderImpl[T]) Matcher(items []T) *Matcher[T] {
	return b.Build().Matcher(items)
}

func (b *builderImpl[T]) store(node pattern.Node[T]) {
	if b.head == nil {
		node.SetMustBeFirst(b.mustBeFirst)
		b.head = node
		return
	}
	b.head.AppendAsSibling(node)
}

func (b *builderImpl[T]) storeAlternative(node pattern.Node[T]) {
	if b.head == nil {
		b.store(node)
		return
	}
	b.head = pattern.Or(b.head, node)
	b.head.SetMustBeFirst(b.mustBeFirst)
}

func (b *builderImpl[T]) setTag(value string) {
	if b.head == nil {
		return
	}
	b.head.Last().SetTag(value)
}

// tokenImpl is the sole concrete Token implementation.
type tokenImpl[T any] struct {
	builder *builderImpl[T]
	node    pattern.Node[T]
}

func (t *tokenImpl[T]) Any() Token[T]                       { return t.builder.Any() }
func (t *tokenImpl[T]) Token(sample T) Token[T]              { return t.builder.Token(sample) }
func (t *tokenImpl[T]) TokenFunc(p Predicate[T]) Token[T]    { return t.builder.TokenFunc(p) }
func (t *tokenImpl[T]) TokenPattern(s Pattern[T]) Token[T]   { return t.builder.TokenPattern(s) }
func (t *tokenImpl[T]) TokenGroup(f func(Starter[T]) Finalizer[T]) Token[T] {
	return t.builder.TokenGroup(f)
}

func (t *tokenImpl[T]) Ending() Finalizer[T] { return t.builder.Ending() }
func (t *tokenImpl[T]) Build() Pattern[T]    { return t.builder.Build() }
func (t *tokenImpl[T]) Matcher(items []T) *Matcher[T] {
	return t.builder.Matcher(items)
}

func (t *tokenImpl[T]) ZeroOrOne() Builder[T]  { return t.CountRange(0, 1) }
func (t *tokenImpl[T]) ZeroOrMore() Builder[T] { return t.CountRange(0, t.builder.unbounded()) }
func (t *tokenImpl[T]) OneOrMore() Builder[T]  { return t.CountRange(1, t.builder.unbounded()) }
func (t *tokenImpl[T]) Count(n int) Builder[T] { return t.CountRange(n, n) }

// unbounded returns the builder's configured "no limit" quantifier, falling
// back to the package default for a builder constructed without going
// through Start/StartWithConfig.
func (b *builderImpl[T]) unbounded() int {
	if b.maxQuantifier <= 0 {
		return maxQuantifier
	}
	return b.maxQuantifier
}

func (t *tokenImpl[T]) CountRange(min, max int) Builder[T] {
	if min < 0 || max < min {
		invalidBuilderOp("count", "min must be >= 0 and <= max")
	}
	t.node.SetQuantifier(min, max)
	return t.builder
}

func (t *tokenImpl[T]) Or(sample T) Token[T] {
	return t.OrFunc(func(v T) bool { return equal(v, sample) })
}

func (t *tokenImpl[T]) OrFunc(predicate Predicate[T]) Token[T] {
	node := pattern.NewAtomic(pattern.Predicate[T](predicate))
	t.builder.storeAlternative(node)
	t.node = t.builder.head.Last()
	return t
}

func (t *tokenImpl[T]) OrPattern(sub Pattern[T]) Token[T] {
	t.builder.storeAlternative(sub.root)
	t.node = t.builder.head.Last()
	return t
}

func (t *tokenImpl[T]) OrGroup(build func(Starter[T]) Finalizer[T]) Token[T] {
	return t.OrPattern(build(&builderImpl[T]{maxQuantifier: t.builder.maxQuantifier}).Build())
}

func (t *tokenImpl[T]) Tag(value string) Token[T] {
	t.builder.setTag(value)
	return t
}

// maxQuantifier stands in for "no upper bound"; the Finder only ever
// reaches it after running out of items, so it terminates on any finite
// input regardless of how large it is.
const maxQuantifier = int(^uint(0) >> 1)

// equal is the comparator behind Token(sample) / Or(sample). T is
// deliberately left unconstrained (any, not comparable) so this package
// also works over types that cannot satisfy Go's comparable constraint,
// such as structs containing slices.
func equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
