// Package syntax implements the lexer, sub-parsers, greediness resolver,
// concatenation inserter, group annotator and infix-to-postfix converter
// that turn a pattern string into the postfix token stream consumed by
// package nfa.
package syntax

import "fmt"

// Kind discriminates the tagged Atom variants produced by the lexer and
// consumed by every later compilation stage.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindShorthand
	KindAny
	KindSet
	KindAnchor
	KindLookahead
	KindGroupStart
	KindGroupEnd
	KindJoin
	KindAlt
	KindStar
	KindPlus
	KindOpt
	KindRepRange
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindShorthand:
		return "Shorthand"
	case KindAny:
		return "Any"
	case KindSet:
		return "Set"
	case KindAnchor:
		return "Anchor"
	case KindLookahead:
		return "Lookahead"
	case KindGroupStart:
		return "GroupStart"
	case KindGroupEnd:
		return "GroupEnd"
	case KindJoin:
		return "Join"
	case KindAlt:
		return "Alt"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindOpt:
		return "Opt"
	case KindRepRange:
		return "RepRange"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ShorthandKind enumerates the escape-table character classes.
type ShorthandKind uint8

const (
	ShorthandAlnum ShorthandKind = iota
	ShorthandNonAlnum
	ShorthandDigit
	ShorthandNonDigit
	ShorthandSpace
	ShorthandNonSpace
)

// AnchorKind enumerates the zero-width anchor/boundary predicates.
type AnchorKind uint8

const (
	AnchorStart AnchorKind = iota // ^
	AnchorEnd                     // $
	AnchorBOS                     // \A
	AnchorEOS                     // \z
	AnchorWordBoundary             // \b
	AnchorNonWordBoundary          // \B
)

// Unbounded marks an OpRepRange with no upper bound ({n,}).
const Unbounded = -1

// SetRange is an inclusive closed range [Lo, Hi] of codepoints.
type SetRange struct {
	Lo, Hi rune
}

// Atom is the tagged variant produced by the lexer/parser. Only the fields
// relevant to Kind are meaningful; this mirrors the teacher's tagged-struct
// node representation rather than an interface hierarchy.
type Atom struct {
	Kind Kind

	// KindLiteral
	Ch rune

	// KindShorthand
	Shorthand ShorthandKind

	// KindSet: positive distinguishes [...] from [^...]
	Positive   bool
	Singles    []rune
	Ranges     []SetRange
	ShortPreds []ShorthandKind

	// KindAnchor
	AnchorKind AnchorKind

	// KindLookahead: Positive reused (true = (?=), false = (?!)); Inner
	// holds the single literal/shorthand atom to test against lookahead.
	Inner *Atom

	// KindGroupStart / KindGroupEnd
	GroupIndex int // -1 when non-capturing
	GroupName  string
	Capturing  bool
	Repeated   bool // filled in by the group annotator

	// Character/assertion atoms: true once inside >=1 capturing group.
	IsCaptured bool

	// KindRepRange
	Min, Max int

	// KindStar / KindPlus / KindOpt / KindRepRange
	Greedy bool
}

// IsQuantifier reports whether the atom is one of the postfix unary
// quantifier operators (*, +, ?, {m,n}).
func (a Atom) IsQuantifier() bool {
	switch a.Kind {
	case KindStar, KindPlus, KindOpt, KindRepRange:
		return true
	default:
		return false
	}
}

// IsCharOrAssertion reports whether the atom occupies a position in the
// concatenation stream the way a matched character does: literals,
// shorthand classes, ".", sets, anchors and lookaheads.
func (a Atom) IsCharOrAssertion() bool {
	switch a.Kind {
	case KindLiteral, KindShorthand, KindAny, KindSet, KindAnchor, KindLookahead:
		return true
	default:
		return false
	}
}
