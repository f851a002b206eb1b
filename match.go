package regexy

import "github.com/nitely/regexy/internal/vm"

// Group is one capturing group's reconstructed result (spec.md §6). A
// non-repeated group reports a single Value; a repeated group (one whose
// close paren is immediately followed by `*`, `+` or a `{m,n}` range, or
// that is nested inside such a group) reports its iterations in Values instead,
// in left-to-right order.
type Group = vm.Group

// Match is the descriptor returned by a successful FullMatch, Match, or
// Search call.
type Match struct {
	input  []rune
	start  int
	end    int
	groups []Group
	names  map[string]int
}

func newMatch(re *Regexp, input []rune, res vm.Result) *Match {
	if !res.Matched {
		return nil
	}
	return &Match{
		input:  input,
		start:  res.Start,
		end:    res.End,
		groups: vm.Groups(input, re.prog.GroupCount, re.prog.GroupRepeated, res.Caps),
		names:  re.prog.GroupNames,
	}
}

// Start returns the rune offset where the whole match began.
func (m *Match) Start() int { return m.start }

// End returns the rune offset where the whole match ended, exclusive.
func (m *Match) End() int { return m.end }

// String returns the whole matched substring.
func (m *Match) String() string {
	return string(m.input[m.start:m.end])
}

// Group returns the i-th capturing group's result. An out-of-range index
// returns a zero Group (Matched == false).
func (m *Match) Group(i int) Group {
	if i < 0 || i >= len(m.groups) {
		return Group{}
	}
	return m.groups[i]
}

// Groups returns every capturing group's result, in declaration order.
func (m *Match) Groups() []Group {
	return m.groups
}

// GroupName looks up a capturing group by its `(?P<name>...)` name. The
// second return value is false if no group with that name exists.
func (m *Match) GroupName(name string) (Group, bool) {
	idx, ok := m.names[name]
	if !ok {
		return Group{}, false
	}
	return m.groups[idx], true
}

// NamedGroups returns every named capturing group's result, keyed by
// name.
func (m *Match) NamedGroups() map[string]Group {
	out := make(map[string]Group, len(m.names))
	for name, idx := range m.names {
		out[name] = m.groups[idx]
	}
	return out
}
