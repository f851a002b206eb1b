package nfa

import (
	"unicode"

	"github.com/nitely/regexy/internal/syntax"
)

// MatcherKind discriminates the character-matching predicates a KindChar
// node can hold, per spec.md §4.7.
type MatcherKind uint8

const (
	MatchLiteral MatcherKind = iota
	MatchAny
	MatchShorthand
	MatchSet
)

// Matcher is the character-class predicate carried by a KindChar node.
type Matcher struct {
	Kind       MatcherKind
	Ch         rune // MatchLiteral
	Shorthand  syntax.ShorthandKind
	// MatchSet
	Positive   bool
	Singles    []rune
	Ranges     []syntax.SetRange
	ShortPreds []syntax.ShorthandKind
	DotNL      bool // MatchAny: whether '.' also matches '\n'
}

// Accepts reports whether ch satisfies the matcher's predicate. sentinel
// (-1, meaning "no character here", i.e. end of input) never matches
// anything.
func (m Matcher) Accepts(ch rune) bool {
	if ch < 0 {
		return false
	}
	switch m.Kind {
	case MatchLiteral:
		return ch == m.Ch
	case MatchAny:
		if ch == '\n' && !m.DotNL {
			return false
		}
		return true
	case MatchShorthand:
		return shorthandAccepts(m.Shorthand, ch)
	case MatchSet:
		in := setMembership(ch, m.Singles, m.Ranges, m.ShortPreds)
		if m.Positive {
			return in
		}
		return !in
	default:
		return false
	}
}

func setMembership(ch rune, singles []rune, ranges []syntax.SetRange, preds []syntax.ShorthandKind) bool {
	for _, s := range singles {
		if ch == s {
			return true
		}
	}
	for _, r := range ranges {
		if ch >= r.Lo && ch <= r.Hi {
			return true
		}
	}
	for _, p := range preds {
		if shorthandAccepts(p, ch) {
			return true
		}
	}
	return false
}

// isAlnum implements the alnum shorthand: letter-or-digit.
func isAlnum(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// isSpace implements the whitespace shorthand: the traditional ASCII set
// plus Unicode category Z, per spec.md §4.7.
func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return unicode.Is(unicode.Z, ch)
}

func shorthandAccepts(kind syntax.ShorthandKind, ch rune) bool {
	switch kind {
	case syntax.ShorthandAlnum:
		return isAlnum(ch)
	case syntax.ShorthandNonAlnum:
		return !isAlnum(ch)
	case syntax.ShorthandDigit:
		return unicode.IsDigit(ch)
	case syntax.ShorthandNonDigit:
		return !unicode.IsDigit(ch)
	case syntax.ShorthandSpace:
		return isSpace(ch)
	case syntax.ShorthandNonSpace:
		return !isSpace(ch)
	default:
		return false
	}
}

// AssertionKind discriminates the zero-width predicates an assertion node
// can test.
type AssertionKind uint8

const (
	AssertStart AssertionKind = iota // ^
	AssertEnd                        // $
	AssertBOS                        // \A
	AssertEOS                        // \z
	AssertWordBoundary
	AssertNonWordBoundary
	AssertLookaheadPositive
	AssertLookaheadNegative
)

// Assertion is the zero-width predicate carried by a KindAssertion node.
type Assertion struct {
	Kind      AssertionKind
	Lookahead Matcher // valid for AssertLookaheadPositive/Negative
}

// isWordChar classifies a rune for the \b / \B word-boundary predicate.
// The sentinel (-1, meaning "no character", i.e. before the first or
// after the last rune of the input) is never a word character.
func isWordChar(ch rune) bool {
	if ch < 0 {
		return false
	}
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// Holds reports whether the assertion admits given the surrounding
// context at the current simulator position: prev is the character just
// consumed (sentinel -1 at the start of input), cur is the character
// about to be consumed (sentinel -1 at the end of input) -- this doubles
// as the "next" character a lookahead tests against, since a lookahead
// never advances past it itself.
func (a Assertion) Holds(prev, cur rune) bool {
	switch a.Kind {
	case AssertStart, AssertBOS:
		return prev < 0
	case AssertEnd, AssertEOS:
		return cur < 0
	case AssertWordBoundary:
		return isWordChar(prev) != isWordChar(cur)
	case AssertNonWordBoundary:
		return isWordChar(prev) == isWordChar(cur)
	case AssertLookaheadPositive:
		return a.Lookahead.Accepts(cur)
	case AssertLookaheadNegative:
		return !a.Lookahead.Accepts(cur)
	default:
		return false
	}
}
