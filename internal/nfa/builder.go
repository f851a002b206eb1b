package nfa

// builder is the low-level arena used while constructing an NFA. Nodes
// are stored as pointers so that combine/dup can grow the arena (append)
// while other code still holds stable references by index (spec.md §9,
// "Cyclic node graph").
type builder struct {
	nodes []*Node
	eof   int
}

func newBuilder() *builder {
	b := &builder{}
	b.eof = b.alloc(Node{Kind: KindMatch})
	return b
}

func (b *builder) alloc(n Node) int {
	id := len(b.nodes)
	cp := n
	b.nodes = append(b.nodes, &cp)
	return id
}

func newSplit(b *builder, first, second int) int {
	return b.alloc(Node{Kind: KindSplit, Out: []int{first, second}})
}

// combine is the splice operation from spec.md §4.5: every out-edge
// reachable from fromID that currently dangles at the sentinel EOF is
// redirected to toID instead. The walk is depth-first with a visited set
// so that subgraphs already containing quantifier loops (cycles) are
// handled safely.
func (b *builder) combine(fromID, toID int) {
	visited := make([]bool, len(b.nodes))
	var walk func(id int)
	walk = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true
		n := b.nodes[id]
		for i, o := range n.Out {
			if o == b.eof {
				n.Out[i] = toID
			} else {
				walk(o)
			}
		}
	}
	walk(fromID)
}

// dup performs the shallow subgraph copy from spec.md §4.5: every node
// reachable from root is cloned into a fresh arena slot, edges remapped
// via a visited map, with the EOF sentinel preserved as the shared
// singleton. This is how `a{3}` becomes three distinct instances of `a`
// wired in series.
func (b *builder) dup(root int) int {
	memo := make(map[int]int)
	var walk func(id int) int
	walk = func(id int) int {
		if id == b.eof {
			return b.eof
		}
		if nid, ok := memo[id]; ok {
			return nid
		}
		orig := b.nodes[id]
		clone := *orig
		nid := len(b.nodes)
		placeholder := &Node{}
		b.nodes = append(b.nodes, placeholder)
		memo[id] = nid

		newOut := make([]int, len(orig.Out))
		for i, o := range orig.Out {
			newOut[i] = walk(o)
		}
		clone.Out = newOut
		*placeholder = clone
		return nid
	}
	return walk(root)
}

func quantifierOrder(greedy bool, consume, skip int) (first, second int) {
	if greedy {
		return consume, skip
	}
	return skip, consume
}
