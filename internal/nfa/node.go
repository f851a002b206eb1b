// Package nfa builds the Thompson NFA graph described in spec.md §3 and
// §4.5 from the postfix token stream produced by package syntax. Nodes
// live in a single arena owned by the Program and are addressed by index,
// so the intentionally cyclic quantifier loops need no special ownership
// handling (grounded on the teacher's StateID/arena design in nfa/nfa.go).
package nfa

// Kind discriminates the tagged Node variants of the finished NFA.
type Kind uint8

const (
	// KindChar is a literal/shorthand/set/any matcher (one out-edge).
	KindChar Kind = iota
	// KindGroupStart is an epsilon transition carrying group metadata.
	KindGroupStart
	// KindGroupEnd is an epsilon transition carrying group metadata.
	KindGroupEnd
	// KindAssertion is an epsilon transition gated by a zero-width predicate.
	KindAssertion
	// KindSplit is a pure epsilon fan-out to exactly two out-edges, used
	// for both alternation and every quantifier.
	KindSplit
	// KindMatch is the unique terminal sentinel (EOF).
	KindMatch
	// KindSkip is an epsilon passthrough used for empty subexpressions
	// and zero-repetition boundaries.
	KindSkip
)

// Node is one vertex of the NFA graph. Only the fields relevant to Kind
// are meaningful, mirroring the teacher's tagged-struct State type rather
// than an interface hierarchy (spec.md §9, "Polymorphic nodes").
type Node struct {
	Kind Kind

	// KindChar
	Matcher    Matcher
	IsCaptured bool

	// KindGroupStart / KindGroupEnd
	GroupIndex     int
	GroupRepeated  bool
	GroupCapturing bool

	// KindAssertion
	Assertion Assertion

	// Out holds the node's out-edges in preference order: for a greedy
	// quantifier split, "consume" precedes "skip"; reversed for
	// reluctant. KindChar/GroupStart/GroupEnd/Assertion/Skip have
	// exactly one out-edge; KindSplit has exactly two; KindMatch has
	// none.
	Out []int
}
