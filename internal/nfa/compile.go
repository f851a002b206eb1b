package nfa

import (
	"fmt"

	"github.com/nitely/regexy/internal/syntax"
)

// CompileError reports a structural failure turning a postfix token
// stream into a graph -- it should never surface for a stream produced
// by package syntax, since annotateGroups/toPostfix already reject
// malformed input, but the stack-machine invariant is cheap to check
// here too.
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: %s", e.Reason)
}

// Compile turns a parsed pattern into a ready-to-run Program, running the
// postfix stack machine described in spec.md §4.5.
func Compile(res syntax.Result) (*Program, error) {
	b := newBuilder()
	var stack []int
	groupRepeated := make([]bool, res.GroupCount)

	push := func(id int) { stack = append(stack, id) }
	pop := func() (int, error) {
		if len(stack) == 0 {
			return 0, &CompileError{Reason: "operand stack underflow"}
		}
		n := len(stack) - 1
		id := stack[n]
		stack = stack[:n]
		return id, nil
	}

	for _, a := range res.Postfix {
		switch a.Kind {
		case syntax.KindLiteral, syntax.KindShorthand, syntax.KindAny, syntax.KindSet:
			id := b.alloc(Node{
				Kind:       KindChar,
				Matcher:    matcherFromAtom(a),
				IsCaptured: a.IsCaptured,
				Out:        []int{b.eof},
			})
			push(id)

		case syntax.KindAnchor:
			id := b.alloc(Node{
				Kind:      KindAssertion,
				Assertion: Assertion{Kind: assertionKindFromAnchor(a.AnchorKind)},
				Out:       []int{b.eof},
			})
			push(id)

		case syntax.KindLookahead:
			kind := AssertLookaheadPositive
			if !a.Positive {
				kind = AssertLookaheadNegative
			}
			id := b.alloc(Node{
				Kind: KindAssertion,
				Assertion: Assertion{
					Kind:      kind,
					Lookahead: matcherFromAtom(*a.Inner),
				},
				Out: []int{b.eof},
			})
			push(id)

		case syntax.KindJoin:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			b.combine(left, right)
			push(left)

		case syntax.KindAlt:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			push(newSplit(b, left, right))

		case syntax.KindStar:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			first, second := quantifierOrder(a.Greedy, s, b.eof)
			n := newSplit(b, first, second)
			b.combine(s, n)
			push(n)

		case syntax.KindPlus:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			first, second := quantifierOrder(a.Greedy, s, b.eof)
			n := newSplit(b, first, second)
			b.combine(s, n)
			push(s)

		case syntax.KindOpt:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			first, second := quantifierOrder(a.Greedy, s, b.eof)
			push(newSplit(b, first, second))

		case syntax.KindGroupStart:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			id := b.alloc(Node{
				Kind:           KindGroupStart,
				GroupIndex:     a.GroupIndex,
				GroupCapturing: a.Capturing,
				GroupRepeated:  a.Repeated,
				Out:            []int{s},
			})
			push(id)

		case syntax.KindGroupEnd:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			end := b.alloc(Node{
				Kind:           KindGroupEnd,
				GroupIndex:     a.GroupIndex,
				GroupCapturing: a.Capturing,
				GroupRepeated:  a.Repeated,
				Out:            []int{b.eof},
			})
			if a.Capturing {
				groupRepeated[a.GroupIndex] = a.Repeated
			}
			b.combine(s, end)
			push(s)

		case syntax.KindRepRange:
			s, err := pop()
			if err != nil {
				return nil, err
			}
			push(b.buildRepRange(s, a.Min, a.Max, a.Greedy))

		default:
			return nil, &CompileError{Reason: fmt.Sprintf("unexpected postfix token %s", a.Kind)}
		}
	}

	if len(stack) != 1 {
		return nil, &CompileError{Reason: "postfix stream did not reduce to a single graph"}
	}

	nodes := make([]Node, len(b.nodes))
	for i, n := range b.nodes {
		nodes[i] = *n
	}

	return &Program{
		Nodes:         nodes,
		Start:         stack[0],
		EOF:           b.eof,
		GroupCount:    res.GroupCount,
		GroupNames:    res.GroupNames,
		GroupRepeated: groupRepeated,
	}, nil
}

// buildRepRange expands a{min,max} per spec.md §4.5: a chain of min
// mandatory copies, followed either by a STAR over one more copy
// (unbounded) or by max-min nested optional copies built innermost
// first, each wired through a reluctant/greedy split per a.Greedy.
func (b *builder) buildRepRange(s, min, max int, greedy bool) int {
	if min == 0 && max == 0 {
		return b.alloc(Node{Kind: KindSkip, Out: []int{b.eof}})
	}

	var first, tail int
	if min > 0 {
		first = b.dup(s)
		tail = first
		for i := 1; i < min; i++ {
			d := b.dup(s)
			b.combine(tail, d)
			tail = d
		}
	} else {
		skip := b.alloc(Node{Kind: KindSkip, Out: []int{b.eof}})
		first, tail = skip, skip
	}

	if max == min {
		return first
	}

	if max == syntax.Unbounded {
		loopBody := b.dup(s)
		cfirst, csecond := quantifierOrder(greedy, loopBody, b.eof)
		star := newSplit(b, cfirst, csecond)
		b.combine(loopBody, star)
		b.combine(tail, star)
		return first
	}

	next := -1
	for i := 0; i < max-min; i++ {
		d := b.dup(s)
		if next != -1 {
			b.combine(d, next)
		}
		cfirst, csecond := quantifierOrder(greedy, d, b.eof)
		next = newSplit(b, cfirst, csecond)
	}
	b.combine(tail, next)
	return first
}

func matcherFromAtom(a syntax.Atom) Matcher {
	switch a.Kind {
	case syntax.KindLiteral:
		return Matcher{Kind: MatchLiteral, Ch: a.Ch}
	case syntax.KindShorthand:
		return Matcher{Kind: MatchShorthand, Shorthand: a.Shorthand}
	case syntax.KindAny:
		return Matcher{Kind: MatchAny}
	case syntax.KindSet:
		return Matcher{
			Kind:       MatchSet,
			Positive:   a.Positive,
			Singles:    a.Singles,
			Ranges:     a.Ranges,
			ShortPreds: a.ShortPreds,
		}
	default:
		return Matcher{}
	}
}

func assertionKindFromAnchor(k syntax.AnchorKind) AssertionKind {
	switch k {
	case syntax.AnchorStart:
		return AssertStart
	case syntax.AnchorEnd:
		return AssertEnd
	case syntax.AnchorBOS:
		return AssertBOS
	case syntax.AnchorEOS:
		return AssertEOS
	case syntax.AnchorWordBoundary:
		return AssertWordBoundary
	case syntax.AnchorNonWordBoundary:
		return AssertNonWordBoundary
	default:
		return AssertStart
	}
}
