// Package regexy implements a Thompson-NFA regular expression engine with
// submatch (capture group) support: lex/parse a pattern into a postfix
// token stream, build a cyclic NFA graph from it, and simulate that graph
// with a Pike-style breadth-first walk that reconstructs capture groups
// from an immutable, prepend-only capture chain.
//
// Basic usage:
//
//	re, err := regexy.Compile(`(\d+)-(\d+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := re.Search("order 12-34 shipped")
//	if m != nil {
//	    fmt.Println(m.Group(0).Value) // "12"
//	}
package regexy

import (
	"github.com/nitely/regexy/internal/accelerate"
	"github.com/nitely/regexy/internal/nfa"
	"github.com/nitely/regexy/internal/syntax"
	"github.com/nitely/regexy/internal/vm"
)

// Regexp is a compiled pattern. It is safe to use concurrently from
// multiple goroutines: the underlying *nfa.Program is immutable once
// built, and every call below allocates its own simulation state
// (spec.md §5).
type Regexp struct {
	pattern string
	prog    *nfa.Program
	cfg     Config
	scanner *accelerate.Scanner
}

// Compile compiles pattern with DefaultConfig. Pattern syntax is
// described in spec.md §4.1: meta characters `. * + ? | ( ) [ ] { } \ ^ $`,
// escape table `\w \W \d \D \s \S \b \B \A \z`, any other `\X` is the
// literal `X`.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error, for patterns known to
// be valid at init time.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexy: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied Config.
func CompileWithConfig(pattern string, cfg Config) (*Regexp, error) {
	res, err := syntax.Parse(pattern)
	if err != nil {
		return nil, wrapCompileError(pattern, err)
	}
	if err := checkRepeatBounds(res.Postfix, cfg.MaxRepeat); err != nil {
		return nil, wrapCompileError(pattern, err)
	}

	prog, err := nfa.Compile(res)
	if err != nil {
		return nil, wrapCompileError(pattern, err)
	}
	applyDotNL(prog, cfg.DotNL)

	var scanner *accelerate.Scanner
	if cfg.EnableAccelerator {
		scanner = accelerate.Build(res.Postfix, cfg.Verbose)
	}

	return &Regexp{pattern: pattern, prog: prog, cfg: cfg, scanner: scanner}, nil
}

// String returns the source pattern the Regexp was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// FullMatch reports a match only if the entire input is consumed and an
// accepting state is reached at the end (spec.md §6 full_match).
func (re *Regexp) FullMatch(s string) *Match {
	input := []rune(s)
	res := vm.Run(re.prog, input, true, true)
	return newMatch(re, input, res)
}

// Match reports a match if an accepting state is reachable on some
// prefix beginning at position 0 (spec.md §6 match).
func (re *Regexp) Match(s string) *Match {
	input := []rune(s)
	res := vm.Run(re.prog, input, true, false)
	return newMatch(re, input, res)
}

// Search reports a match if an accepting state is reachable starting at
// some position >= 0 (spec.md §6 search). When the accelerator proves no
// required literal occurs anywhere in s, the simulator is skipped
// entirely; otherwise the simulator is the sole authority on the result.
func (re *Regexp) Search(s string) *Match {
	input := []rune(s)
	if !re.scanner.MayMatch(input, 0) {
		return nil
	}
	res := vm.Run(re.prog, input, false, false)
	return newMatch(re, input, res)
}

func checkRepeatBounds(postfix []syntax.Atom, maxRepeat int) error {
	if maxRepeat <= 0 {
		return nil
	}
	for _, a := range postfix {
		if a.Kind != syntax.KindRepRange {
			continue
		}
		if a.Max != syntax.Unbounded && a.Max > maxRepeat {
			return &syntax.ParseError{Reason: "repetition count exceeds MaxRepeat"}
		}
		if a.Min > maxRepeat {
			return &syntax.ParseError{Reason: "repetition count exceeds MaxRepeat"}
		}
	}
	return nil
}

func applyDotNL(prog *nfa.Program, dotNL bool) {
	if !dotNL {
		return
	}
	for i := range prog.Nodes {
		n := &prog.Nodes[i]
		if n.Kind == nfa.KindChar && n.Matcher.Kind == nfa.MatchAny {
			n.Matcher.DotNL = true
		}
		if n.Kind == nfa.KindAssertion && n.Assertion.Lookahead.Kind == nfa.MatchAny {
			n.Assertion.Lookahead.DotNL = true
		}
	}
}
