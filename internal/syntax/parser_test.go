package syntax

import "testing"

func TestParseGroupCounting(t *testing.T) {
	cases := []struct {
		pattern    string
		groupCount int
		names      map[string]int
	}{
		{`abc`, 0, map[string]int{}},
		{`(a)b`, 1, map[string]int{}},
		{`(a)(b)(c)`, 3, map[string]int{}},
		{`(?:a)(b)`, 1, map[string]int{}},
		{`(?P<foo>a)(?P<bar>b)`, 2, map[string]int{"foo": 0, "bar": 1}},
		{`(?P<foo>(?P<bar>a)*b)`, 2, map[string]int{"foo": 0, "bar": 1}},
	}

	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			res, err := Parse(c.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", c.pattern, err)
			}
			if res.GroupCount != c.groupCount {
				t.Fatalf("GroupCount = %d, want %d", res.GroupCount, c.groupCount)
			}
			if len(res.GroupNames) != len(c.names) {
				t.Fatalf("GroupNames = %v, want %v", res.GroupNames, c.names)
			}
			for name, idx := range c.names {
				if got, ok := res.GroupNames[name]; !ok || got != idx {
					t.Fatalf("GroupNames[%q] = %d, want %d", name, got, idx)
				}
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	// Round-trip postfix: compiling the same pattern twice yields the
	// same postfix token kinds in the same order (spec.md §8, property 1).
	patterns := []string{
		`a(b|c)*d`,
		`(?P<foo>(?P<bar>a)*b)`,
		`a{2,5}?`,
		`[^b]*b`,
	}
	for _, p := range patterns {
		r1, err1 := Parse(p)
		r2, err2 := Parse(p)
		if err1 != nil || err2 != nil {
			t.Fatalf("Parse(%q) errors: %v, %v", p, err1, err2)
		}
		if len(r1.Postfix) != len(r2.Postfix) {
			t.Fatalf("postfix length differs across compiles of %q", p)
		}
		for i := range r1.Postfix {
			if r1.Postfix[i].Kind != r2.Postfix[i].Kind {
				t.Fatalf("postfix[%d].Kind differs across compiles of %q", i, p)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		`(a`,          // unbalanced: never closed
		`a)`,          // unbalanced: stray close
		`[]`,          // empty set
		`[^]`,         // empty negated set
		`a{3,1}`,      // min > max
		`a{`,          // malformed range
		`a\`,          // trailing escape
		`(?Q)`,        // unsupported group tag
		`(?P<foo`,     // unterminated named group
		`(?P<>a)`,     // empty group name
		`(?P<n>a)(?P<n>b)`, // duplicate name
	}
	for _, p := range cases {
		t.Run(p, func(t *testing.T) {
			if _, err := Parse(p); err == nil {
				t.Fatalf("Parse(%q) expected an error, got nil", p)
			}
		})
	}
}

func TestParseGreedyVsReluctant(t *testing.T) {
	res, err := Parse(`a*?`)
	if err != nil {
		t.Fatal(err)
	}
	var star Atom
	found := false
	for _, a := range res.Postfix {
		if a.Kind == KindStar {
			star = a
			found = true
		}
	}
	if !found {
		t.Fatal("expected a KindStar atom in postfix output")
	}
	if star.Greedy {
		t.Fatal("a*? should resolve to a reluctant (non-greedy) star")
	}
}

func TestParseRepeatedGroupFlag(t *testing.T) {
	res, err := Parse(`(a)*(b)?`)
	if err != nil {
		t.Fatal(err)
	}
	var repeatedSeen, optionalSeen bool
	for _, a := range res.Postfix {
		if a.Kind != KindGroupEnd {
			continue
		}
		if a.GroupIndex == 0 {
			repeatedSeen = a.Repeated
		}
		if a.GroupIndex == 1 {
			optionalSeen = a.Repeated
		}
	}
	if !repeatedSeen {
		t.Fatal("(a)* should flag its group as repeated")
	}
	if optionalSeen {
		t.Fatal("(b)? should NOT flag its group as repeated")
	}
}
