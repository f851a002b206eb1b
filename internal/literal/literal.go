// Package literal extracts required literal substrings from a compiled
// pattern's postfix token stream, the same "this pattern cannot match
// unless string X appears" analysis the teacher performs over a
// regexp/syntax.Regexp AST, adapted here to run as a stack machine over
// our own postfix stream -- the same shape of machine package nfa uses
// to build the graph, just computing a literal summary instead of nodes.
package literal

import "github.com/nitely/regexy/internal/syntax"

type kind uint8

const (
	kindNone kind = iota
	kindExact
	kindAlt
)

// info is the literal-requirement summary for one postfix subexpression.
type info struct {
	kind  kind
	exact string   // kindExact: the exact literal this subexpression matches
	alts  []string // kindAlt: exact literal alternatives (top-level |)
}

// Result is the literal requirement extracted for an entire pattern.
type Result struct {
	Exact string
	Alts  []string
	IsAlt bool
}

// Extract returns the strongest literal requirement provable for postfix,
// or ok=false when no useful literal information could be derived (e.g.
// the pattern is dominated by character classes or ".").
func Extract(postfix []syntax.Atom) (Result, bool) {
	v := analyze(postfix)
	switch v.kind {
	case kindExact:
		if v.exact == "" {
			return Result{}, false
		}
		return Result{Exact: v.exact}, true
	case kindAlt:
		if len(v.alts) == 0 {
			return Result{}, false
		}
		for _, s := range v.alts {
			if s == "" {
				return Result{}, false
			}
		}
		return Result{Alts: v.alts, IsAlt: true}, true
	default:
		return Result{}, false
	}
}

func analyze(postfix []syntax.Atom) info {
	var stack []info
	pop := func() info {
		n := len(stack) - 1
		v := stack[n]
		stack = stack[:n]
		return v
	}
	push := func(v info) { stack = append(stack, v) }

	for _, a := range postfix {
		switch a.Kind {
		case syntax.KindLiteral:
			push(info{kind: kindExact, exact: string(a.Ch)})

		case syntax.KindAnchor, syntax.KindLookahead:
			// Zero-width: contributes nothing, but doesn't break an
			// otherwise-contiguous literal run either.
			push(info{kind: kindExact, exact: ""})

		case syntax.KindShorthand, syntax.KindAny, syntax.KindSet:
			push(info{kind: kindNone})

		case syntax.KindGroupStart, syntax.KindGroupEnd:
			// Pure wrapper: pop-then-push-unchanged is a no-op.

		case syntax.KindJoin:
			right, left := pop(), pop()
			push(joinInfo(left, right))

		case syntax.KindAlt:
			right, left := pop(), pop()
			push(altInfo(left, right))

		case syntax.KindStar, syntax.KindOpt:
			pop()
			push(info{kind: kindNone}) // may match zero times: nothing required

		case syntax.KindPlus:
			// At least one copy is still required: leave the operand as-is.

		case syntax.KindRepRange:
			v := pop()
			if a.Min == 0 {
				push(info{kind: kindNone})
			} else {
				push(v)
			}
		}
	}

	if len(stack) != 1 {
		return info{kind: kindNone}
	}
	return stack[0]
}

func joinInfo(left, right info) info {
	if left.kind == kindExact && right.kind == kindExact {
		return info{kind: kindExact, exact: left.exact + right.exact}
	}
	if left.kind == kindAlt && right.kind == kindExact {
		alts := make([]string, len(left.alts))
		for i, s := range left.alts {
			alts[i] = s + right.exact
		}
		return info{kind: kindAlt, alts: alts}
	}
	if left.kind == kindExact && right.kind == kindAlt {
		alts := make([]string, len(right.alts))
		for i, s := range right.alts {
			alts[i] = left.exact + s
		}
		return info{kind: kindAlt, alts: alts}
	}

	// Neither side combines cleanly (e.g. both are alternations): fall
	// back to whichever side proves the longer single required
	// substring, since both sides of a JOIN always execute in sequence.
	ls, lok := bestExact(left)
	rs, rok := bestExact(right)
	switch {
	case lok && rok:
		if len(ls) >= len(rs) {
			return info{kind: kindExact, exact: ls}
		}
		return info{kind: kindExact, exact: rs}
	case lok:
		return info{kind: kindExact, exact: ls}
	case rok:
		return info{kind: kindExact, exact: rs}
	default:
		return info{kind: kindNone}
	}
}

func bestExact(v info) (string, bool) {
	if v.kind == kindExact && v.exact != "" {
		return v.exact, true
	}
	return "", false
}

func altInfo(left, right info) info {
	la, lok := asAlts(left)
	ra, rok := asAlts(right)
	if !lok || !rok {
		return info{kind: kindNone}
	}
	return info{kind: kindAlt, alts: append(la, ra...)}
}

func asAlts(v info) ([]string, bool) {
	switch v.kind {
	case kindExact:
		return []string{v.exact}, true
	case kindAlt:
		return append([]string(nil), v.alts...), true
	default:
		return nil, false
	}
}
