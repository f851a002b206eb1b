package syntax

// precedence returns the binding power of an operator per spec.md §4.4.
// Character/group atoms are not operators and are not consulted here.
func precedence(k Kind) int {
	switch k {
	case KindStar, KindPlus, KindOpt, KindRepRange:
		return 5
	case KindJoin:
		return 4
	case KindAlt:
		return 3
	default:
		return 0
	}
}

// rightAssoc reports whether an operator is right-associative. Only the
// quantifiers are; JOIN and ALT are left-associative.
func rightAssoc(k Kind) bool {
	switch k {
	case KindStar, KindPlus, KindOpt, KindRepRange:
		return true
	default:
		return false
	}
}

// toPostfix runs the Shunting-yard variant described in spec.md §4.4,
// converting the infix (concat-inserted, group-annotated) atom stream
// into postfix order for the NFA builder's stack machine.
func toPostfix(atoms []Atom) ([]Atom, error) {
	out := make([]Atom, 0, len(atoms))
	var ops []Atom

	popTo := func(op Atom) {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.Kind == KindGroupStart {
				break
			}
			topPrec, opPrec := precedence(top.Kind), precedence(op.Kind)
			shouldPop := topPrec > opPrec || (topPrec == opPrec && !rightAssoc(op.Kind))
			if !shouldPop {
				break
			}
			ops = ops[:len(ops)-1]
			out = append(out, top)
		}
	}

	for _, a := range atoms {
		switch {
		case a.IsCharOrAssertion():
			out = append(out, a)

		case a.Kind == KindGroupStart:
			ops = append(ops, a)

		case a.Kind == KindGroupEnd:
			for {
				if len(ops) == 0 {
					return nil, errAt(0, "unbalanced group: no matching '(' for ')'")
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				out = append(out, top)
				if top.Kind == KindGroupStart {
					break
				}
			}
			out = append(out, a)

		default: // KindJoin, KindAlt, and the quantifiers
			popTo(a)
			ops = append(ops, a)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == KindGroupStart {
			return nil, errAt(0, "unbalanced group: '(' never closed")
		}
		out = append(out, top)
	}

	return out, nil
}
