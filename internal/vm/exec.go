package vm

import "github.com/nitely/regexy/internal/nfa"

// addThread recursively follows every epsilon edge reachable from pc,
// building a fresh Cap for each group boundary crossed, and appends the
// first KindChar/KindMatch node reached on each branch to tl. The
// markSeen dedup makes this safe on the cyclic graphs quantifiers
// produce: a node already expanded this step is never re-expanded.
func addThread(prog *nfa.Program, tl *threadList, pc, pos, start int, caps *Cap, prev, cur rune) {
	if !tl.markSeen(pc) {
		return
	}

	n := prog.Node(pc)
	switch n.Kind {
	case nfa.KindSplit:
		addThread(prog, tl, n.Out[0], pos, start, caps, prev, cur)
		addThread(prog, tl, n.Out[1], pos, start, caps, prev, cur)

	case nfa.KindSkip:
		addThread(prog, tl, n.Out[0], pos, start, caps, prev, cur)

	case nfa.KindGroupStart:
		next := caps
		if n.GroupCapturing {
			next = &Cap{Prev: caps, GroupIndex: n.GroupIndex, Start: true, Pos: pos}
		}
		addThread(prog, tl, n.Out[0], pos, start, next, prev, cur)

	case nfa.KindGroupEnd:
		next := caps
		if n.GroupCapturing {
			next = &Cap{Prev: caps, GroupIndex: n.GroupIndex, Start: false, Pos: pos}
		}
		addThread(prog, tl, n.Out[0], pos, start, next, prev, cur)

	case nfa.KindAssertion:
		if n.Assertion.Holds(prev, cur) {
			addThread(prog, tl, n.Out[0], pos, start, caps, prev, cur)
		}

	default: // KindChar, KindMatch: a real thread, stop the closure here.
		tl.threads = append(tl.threads, thread{pc: pc, start: start, caps: caps})
	}
}

// Result is the outcome of a single simulation run.
type Result struct {
	Matched bool
	Caps    *Cap
	Start   int // rune offset where the match began
	End     int // rune offset where the match ended, exclusive
}

// Run simulates prog against input, per spec.md §4.6. anchorStart pins
// the match to rune offset 0 (no new start thread is spawned past the
// first step); anchorEnd additionally requires the match to be found
// exactly at len(input). Leftmost-greedy preference falls directly out
// of thread priority order: a higher-priority thread's eventual match
// always overwrites a lower-priority one recorded earlier in wall-clock
// terms, and once any match is recorded no new (necessarily later,
// hence non-leftmost) start thread is spawned.
func Run(prog *nfa.Program, input []rune, anchorStart, anchorEnd bool) Result {
	return RunFrom(prog, input, 0, anchorStart, anchorEnd)
}

// RunFrom behaves like Run but never spawns a start thread before rune
// offset from: the simulation underneath is identical, only the set of
// tried start positions shrinks. Matches that would start before from
// are not found.
func RunFrom(prog *nfa.Program, input []rune, from int, anchorStart, anchorEnd bool) Result {
	clist := newThreadList(len(prog.Nodes))
	nlist := newThreadList(len(prog.Nodes))

	var best Result
	spawning := true

	for i := from; i <= len(input); i++ {
		cur := sentinel
		if i < len(input) {
			cur = input[i]
		}
		prev := sentinel
		if i > 0 {
			prev = input[i-1]
		}

		if spawning {
			addThread(prog, clist, prog.Start, i, i, nil, prev, cur)
			if anchorStart {
				spawning = false
			}
		}

		nlist.reset()
		for _, th := range clist.threads {
			n := prog.Node(th.pc)
			if n.Kind == nfa.KindMatch {
				if !anchorEnd || i == len(input) {
					best = Result{Matched: true, Caps: th.caps, Start: th.start, End: i}
					spawning = false
					break
				}
				// anchorEnd and i != len(input): this thread's match
				// doesn't count yet, but lower-priority threads may still
				// consume more input and reach a valid end-anchored match
				// later, so only this thread is dropped.
				continue
			}
			if n.Matcher.Accepts(cur) {
				next := sentinel
				if i+1 < len(input) {
					next = input[i+1]
				}
				addThread(prog, nlist, n.Out[0], i+1, th.start, th.caps, cur, next)
			}
		}

		clist, nlist = nlist, clist
		if len(clist.threads) == 0 && !spawning {
			break
		}
	}

	return best
}
