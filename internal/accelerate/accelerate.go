// Package accelerate provides search acceleration in front of the
// simulator in package vm, grounded on the teacher's meta/strategy.go
// (pick an engine ahead of time) and meta/compile.go (build an
// Aho-Corasick automaton once literal alternatives are known). Every
// decision here is provably skip-only: a Scanner may prove a pattern
// cannot match at all, in which case the caller skips the simulator
// entirely, but it never claims a match the simulator itself would not
// also find -- package vm's ε-closure/capture walk remains the sole
// authority on whether, where, and how a pattern matches.
package accelerate

import (
	"log"

	"github.com/coregx/ahocorasick"

	"github.com/nitely/regexy/internal/cpufeatures"
	"github.com/nitely/regexy/internal/literal"
	"github.com/nitely/regexy/internal/syntax"
)

// Scanner holds whichever required-literal evidence was extracted for a
// pattern: either a single substring, or a small automaton over a set of
// top-level literal alternatives.
type Scanner struct {
	single  string
	multi   *ahocorasick.Automaton
	verbose bool
}

// Build extracts literal requirements from postfix and compiles a
// Scanner, or returns nil when no literal requirement could be proven
// (e.g. the pattern is dominated by "." or character classes). Per
// spec.md's compilation-caching non-goal, this runs fresh on every
// Compile call rather than being cached across patterns.
func Build(postfix []syntax.Atom, verbose bool) *Scanner {
	res, ok := literal.Extract(postfix)
	if !ok {
		return nil
	}

	if res.IsAlt {
		builder := ahocorasick.NewBuilder()
		for _, alt := range res.Alts {
			builder.AddPattern([]byte(alt))
		}
		auto, err := builder.Build()
		if err != nil {
			if verbose {
				log.Printf("regexy/accelerate: aho-corasick build failed (%v), skipping acceleration", err)
			}
			return nil
		}
		if verbose {
			log.Printf("regexy/accelerate: using aho-corasick over %d literal alternatives", len(res.Alts))
		}
		return &Scanner{multi: auto, verbose: verbose}
	}

	if verbose {
		log.Printf("regexy/accelerate: using single required literal %q", res.Exact)
	}
	return &Scanner{single: res.Exact, verbose: verbose}
}

// MayMatch reports whether the literal evidence leaves open the
// possibility of a match starting at or after rune offset from. false is
// a proof that no match can start there, letting the caller skip the
// simulator entirely; true is inconclusive (the literal's position
// doesn't by itself pin the match's start, since arbitrary content may
// precede it) and the simulator must still run.
func (s *Scanner) MayMatch(input []rune, from int) bool {
	if s == nil {
		return true
	}

	hay := []byte(string(input[from:]))

	if s.multi != nil {
		return s.multi.IsMatch(hay)
	}
	return containsASCIIAware(hay, []byte(s.single))
}

// containsASCIIAware is a portable substring search whose scan stride is
// picked from detected CPU features (see internal/cpufeatures), the same
// role the teacher's simd.IsASCII fast-classification plays ahead of its
// own memmem kernels -- without porting the teacher's actual assembly
// (see DESIGN.md).
func containsASCIIAware(hay, needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(hay) {
		return false
	}

	chunk := cpufeatures.ASCIIChunkSize()
	limit := len(hay) - len(needle)
	for i := 0; i <= limit; {
		end := i + chunk
		if end > len(hay) {
			end = len(hay)
		}
		idx := indexByte(hay[i:end], needle[0])
		if idx < 0 {
			// None of needle's first byte in this whole chunk: skip it
			// in one jump instead of testing every position within it.
			i = end
			continue
		}
		pos := i + idx
		if pos > limit {
			return false
		}
		if matchesAt(hay, needle, pos) {
			return true
		}
		i = pos + 1
	}
	return false
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func matchesAt(hay, needle []byte, at int) bool {
	for j := 1; j < len(needle); j++ {
		if hay[at+j] != needle[j] {
			return false
		}
	}
	return true
}
