package seqmatch_test

import (
	"fmt"

	"github.com/coregx/seqmatch"
)

// Example demonstrates finding a marker followed by a run of one or more
// elements of any value.
func Example() {
	p := seqmatch.Start[int]().
		Token(15).
		Any().OneOrMore().
		Build()

	m := p.Matcher([]int{2, 15, 42, 42, 15})
	if m.Find() {
		fmt.Println(m.Start(), m.End())
	}
	// Output: 1 5
}

// ExampleMatcher_ReplaceWith demonstrates substituting every match with a
// single value.
func ExampleMatcher_ReplaceWith() {
	p := seqmatch.Start[int]().Token(0).Build()
	result := p.Matcher([]int{1, 0, 2, 0, 3}).ReplaceWith(-1)
	fmt.Println(result)
	// Output: [1 -1 2 -1 3]
}

// ExampleMatcher_Split demonstrates dividing a sequence on its matches.
func ExampleMatcher_Split() {
	p := seqmatch.Start[int]().Token(0).Build()
	it := p.Matcher([]int{1, 2, 0, 3, 4, 0, 5}).Split()
	for {
		chunk, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

// ExampleStarter_Beginning demonstrates anchoring a pattern to the first
// element of the sequence.
func ExampleStarter_Beginning() {
	p := seqmatch.Start[int]().Beginning().Token(2).Token(15).Build()
	fmt.Println(p.Matcher([]int{2, 15, 42}).Find())
	fmt.Println(p.Matcher([]int{1, 2, 15}).Find())
	// Output:
	// true
	// false
}
