package vm

import (
	"github.com/nitely/regexy/internal/conv"
	"github.com/nitely/regexy/internal/sparse"
)

// sentinel stands for "no character here": before the first rune, after
// the last rune, or as the current character once the input is exhausted.
const sentinel rune = -1

type thread struct {
	pc    int
	start int
	caps  *Cap
}

// threadList holds the threads active at one simulation step. seen
// enforces the states-set's first-insertion-wins dedup (spec.md §4.6):
// a node already queued this step is never queued again, so the order
// threads are appended in is exactly the priority order that encodes
// leftmost-greedy preference (grounded on the teacher's sparse-set-backed
// state tracking in its own PikeVM simulator).
type threadList struct {
	seen    *sparse.SparseSet
	threads []thread
}

func newThreadList(capacity int) *threadList {
	return &threadList{seen: sparse.NewSparseSet(conv.IntToUint32(capacity))}
}

func (tl *threadList) reset() {
	tl.seen.Clear()
	tl.threads = tl.threads[:0]
}

// markSeen reports whether pc was not already queued this step, marking
// it queued as a side effect.
func (tl *threadList) markSeen(pc int) bool {
	return tl.seen.Insert(conv.IntToUint32(pc))
}
