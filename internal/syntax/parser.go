package syntax

// Result is the output of the full front-end pipeline: a postfix token
// stream ready for the NFA builder, plus the group metadata collected by
// the annotator.
type Result struct {
	Postfix    []Atom
	GroupCount int
	GroupNames map[string]int
}

// Parse runs the full pipeline described in spec.md §2 steps 1-5: lex,
// resolve greediness, insert concatenation, annotate groups, convert to
// postfix.
func Parse(pattern string) (Result, error) {
	lx := newLexer(pattern)

	var atoms []Atom
	for {
		a, ok, err := lx.next()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			break
		}
		atoms = append(atoms, a)
	}

	atoms = resolveGreediness(atoms)
	atoms = insertConcat(atoms)

	atoms, groupCount, names, err := annotateGroups(atoms)
	if err != nil {
		return Result{}, err
	}

	postfix, err := toPostfix(atoms)
	if err != nil {
		return Result{}, err
	}

	return Result{Postfix: postfix, GroupCount: groupCount, GroupNames: names}, nil
}
