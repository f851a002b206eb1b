package nfa

import (
	"testing"

	"github.com/nitely/regexy/internal/syntax"
)

func TestMatcherLiteral(t *testing.T) {
	m := Matcher{Kind: MatchLiteral, Ch: 'a'}
	if !m.Accepts('a') {
		t.Fatal("literal matcher should accept its own char")
	}
	if m.Accepts('b') {
		t.Fatal("literal matcher should reject a different char")
	}
	if m.Accepts(-1) {
		t.Fatal("no matcher should ever accept the sentinel")
	}
}

func TestMatcherAnyRespectsDotNL(t *testing.T) {
	m := Matcher{Kind: MatchAny}
	if m.Accepts('\n') {
		t.Fatal("'.' should not match newline by default")
	}
	m.DotNL = true
	if !m.Accepts('\n') {
		t.Fatal("'.' should match newline once DotNL is set")
	}
}

func TestMatcherSetPositiveAndNegated(t *testing.T) {
	pos := Matcher{Kind: MatchSet, Positive: true, Singles: []rune{'x'}, Ranges: []syntax.SetRange{{Lo: 'a', Hi: 'c'}}}
	if !pos.Accepts('b') || !pos.Accepts('x') || pos.Accepts('z') {
		t.Fatal("positive set matcher behaved incorrectly")
	}

	neg := Matcher{Kind: MatchSet, Positive: false, Ranges: []syntax.SetRange{{Lo: 'a', Hi: 'c'}}}
	if neg.Accepts('b') || !neg.Accepts('z') {
		t.Fatal("negated set matcher behaved incorrectly")
	}
}

func TestAssertionAnchors(t *testing.T) {
	start := Assertion{Kind: AssertStart}
	if !start.Holds(-1, 'a') {
		t.Fatal("^ should hold at start of input")
	}
	if start.Holds('x', 'a') {
		t.Fatal("^ should not hold mid-input")
	}

	end := Assertion{Kind: AssertEnd}
	if !end.Holds('a', -1) {
		t.Fatal("$ should hold at end of input")
	}
	if end.Holds('a', 'b') {
		t.Fatal("$ should not hold mid-input")
	}
}

func TestAssertionWordBoundary(t *testing.T) {
	wb := Assertion{Kind: AssertWordBoundary}
	if !wb.Holds(-1, 'a') {
		t.Fatal("\\b should hold at start of a word")
	}
	if !wb.Holds('a', -1) {
		t.Fatal("\\b should hold at end of a word")
	}
	if wb.Holds('a', 'b') {
		t.Fatal("\\b should not hold between two word chars")
	}
	if wb.Holds(-1, -1) {
		t.Fatal("\\b should not hold on an empty input")
	}

	nwb := Assertion{Kind: AssertNonWordBoundary}
	if !nwb.Holds('a', 'b') {
		t.Fatal("\\B should hold between two word chars")
	}
	if nwb.Holds(-1, 'a') {
		t.Fatal("\\B should not hold at a word boundary")
	}
}

func TestAssertionLookahead(t *testing.T) {
	pos := Assertion{Kind: AssertLookaheadPositive, Lookahead: Matcher{Kind: MatchLiteral, Ch: 'b'}}
	if !pos.Holds('a', 'b') {
		t.Fatal("(?=b) should hold when the next char is b")
	}
	if pos.Holds('a', 'c') {
		t.Fatal("(?=b) should not hold when the next char is c")
	}

	neg := Assertion{Kind: AssertLookaheadNegative, Lookahead: Matcher{Kind: MatchLiteral, Ch: 'b'}}
	if neg.Holds('a', 'b') {
		t.Fatal("(?!b) should not hold when the next char is b")
	}
	if !neg.Holds('a', 'c') {
		t.Fatal("(?!b) should hold when the next char is c")
	}
}
