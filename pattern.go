// Package seqmatch provides a regex-inspired matching engine over ordered
// sequences of arbitrary-typed elements.
//
// A Pattern is built with a fluent Builder — element-level predicates
// composed with quantifiers, grouping, and alternation — then applied to a
// sequence via Matcher, which finds, iterates, replaces, or splits the
// sub-sequences that satisfy it.
//
// Basic usage:
//
//	p := seqmatch.Start[int]().
//		Token(15).
//		Any().OneOrMore().
//		Build()
//
//	m := p.Matcher([]int{2, 15, 42, 42, 15})
//	if m.Find() {
//		fmt.Println(m.Start(), m.End()) // 1 5
//	}
//
// Limitations (by design):
//   - no lookahead/lookbehind assertions
//   - no non-greedy ("lazy") quantifiers
//   - no compilation to an NFA/DFA or any such optimization pass
//   - no backreferences
//   - a single Matcher is not safe for concurrent use; a Pattern is.
package seqmatch

import "github.com/coregx/seqmatch/internal/pattern"

// Predicate tests a single sequence element.
type Predicate[T any] func(T) bool

// Pattern is a compiled, read-only, reusable graph of pattern nodes. It is
// safe to share a Pattern across goroutines and to derive many independent
// Matcher instances from it.
type Pattern[T any] struct {
	root pattern.Node[T]
}

// Matcher returns a Matcher applying this pattern to items. The Matcher
// holds its own cursor and is not safe to share across goroutines, even
// though the Pattern it was built from is.
func (p Pattern[T]) Matcher(items []T) *Matcher[T] {
	return newMatcher(p.root, items)
}

// Start returns a new pattern builder using DefaultConfig.
func Start[T any]() Starter[T] {
	return StartWithConfig[T](DefaultConfig())
}

// StartWithConfig returns a new pattern builder tuned by cfg. It panics with
// a BuilderError if cfg is invalid.
func StartWithConfig[T any](cfg Config) Starter[T] {
	if err := cfg.Validate(); err != nil {
		invalidBuilderOp("config", err.Error())
	}
	pattern.SetCaptureCapacityHint(cfg.GroupCapacityHint)
	return &builderImpl[T]{maxQuantifier: cfg.MaxQuantifier}
}
