package fsa

import (
	"sort"
	"strconv"
)

// Minimize reduces a DFA to its canonical minimal form: unreachable-state
// removal followed by Hopcroft partition refinement. If f is not already
// deterministic it is first run through Determinize. Minimize is
// idempotent (minimizing an already-minimal DFA returns an isomorphic
// copy with the same canonical naming) and preserves the input's
// language.
//
// Minimized states are named M0, M1, … in BFS-discovery order starting
// from the block containing the original initial state — the spec
// mandates this naming (over "smallest original id"); the resulting names
// carry over no original state id.
//
// Minimize returns ErrNilFSA if f is nil.
func Minimize(f *FSA) (*FSA, error) {
	if f == nil {
		return nil, ErrNilFSA
	}

	if !f.IsDeterministic() {
		det, err := Determinize(f)
		if err != nil {
			return nil, err
		}
		f = det
	}

	reached := Reachable(f)
	var states []string
	for _, s := range f.states {
		if reached[s] {
			states = append(states, s)
		}
	}
	reducedTransitions := make([]Transition, 0, len(f.transitions))
	for _, t := range f.transitions {
		if reached[t.From] && reached[t.To] {
			reducedTransitions = append(reducedTransitions, t)
		}
	}
	var accepting []string
	for _, s := range f.accepting {
		if reached[s] {
			accepting = append(accepting, s)
		}
	}
	reduced := New(states, f.alphabet, reducedTransitions, f.initial, accepting)

	blocks := hopcroftRefine(reduced)
	return canonicalizeBlocks(reduced, blocks), nil
}

// block is a set of original state ids that behave identically.
type block map[string]bool

func cloneBlock(b block) block {
	c := make(block, len(b))
	for k := range b {
		c[k] = true
	}
	return c
}

func smallerOf(a, b block) (smaller, other block) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

// hopcroftRefine implements spec §4.C5 Phase B on an already
// unreachable-pruned DFA, returning the stable partition.
func hopcroftRefine(f *FSA) []block {
	var partition []block

	accBlock := block{}
	for _, s := range f.accepting {
		accBlock[s] = true
	}
	nonAccBlock := block{}
	for _, s := range f.states {
		if !accBlock[s] {
			nonAccBlock[s] = true
		}
	}

	if len(accBlock) > 0 {
		partition = append(partition, accBlock)
	}
	if len(nonAccBlock) > 0 {
		partition = append(partition, nonAccBlock)
	}

	var worklist []block
	switch {
	case len(accBlock) > 0 && len(nonAccBlock) > 0:
		small, _ := smallerOf(accBlock, nonAccBlock)
		worklist = append(worklist, small)
	case len(accBlock) > 0:
		worklist = append(worklist, accBlock)
	case len(nonAccBlock) > 0:
		worklist = append(worklist, nonAccBlock)
	}

	inWorklist := func(b block) bool {
		for _, w := range worklist {
			if sameBlock(w, b) {
				return true
			}
		}
		return false
	}
	removeFromWorklist := func(b block) {
		for i, w := range worklist {
			if sameBlock(w, b) {
				worklist = append(worklist[:i], worklist[i+1:]...)
				return
			}
		}
	}

	for len(worklist) > 0 {
		a := worklist[0]
		worklist = worklist[1:]

		for _, c := range f.alphabet {
			x := block{}
			for _, q := range f.states {
				for _, to := range f.Succ(q, c) {
					if a[to] {
						x[q] = true
						break
					}
				}
			}
			if len(x) == 0 {
				continue
			}

			var next []block
			for _, y := range partition {
				inter, diff := splitBlock(y, x)
				if len(inter) == 0 || len(diff) == 0 {
					next = append(next, y)
					continue
				}
				next = append(next, inter, diff)

				if inWorklist(y) {
					removeFromWorklist(y)
					worklist = append(worklist, inter, diff)
				} else {
					small, _ := smallerOf(inter, diff)
					worklist = append(worklist, small)
				}
			}
			partition = next
		}
	}

	return partition
}

func sameBlock(a, b block) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func splitBlock(y, x block) (inter, diff block) {
	inter = block{}
	diff = block{}
	for s := range y {
		if x[s] {
			inter[s] = true
		} else {
			diff[s] = true
		}
	}
	return inter, diff
}

// canonicalizeBlocks renames each block to M0, M1, … in BFS-discovery
// order starting from the block containing f.Initial(), and rebuilds the
// minimized DFA over those names.
func canonicalizeBlocks(f *FSA, blocks []block) *FSA {
	blockOf := make(map[string]int, len(f.states))
	for i, b := range blocks {
		for s := range b {
			blockOf[s] = i
		}
	}

	order := make([]int, 0, len(blocks))
	name := make(map[int]string, len(blocks))
	visited := make(map[int]bool, len(blocks))

	startIdx := blockOf[f.initial]
	queue := []int{startIdx}
	visited[startIdx] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, s := range sortedCopy(stateList(blocks[cur])) {
			for _, a := range f.alphabet {
				for _, to := range f.Succ(s, a) {
					nb := blockOf[to]
					if !visited[nb] {
						visited[nb] = true
						queue = append(queue, nb)
					}
				}
			}
		}
	}
	// Any block unreachable from the initial block in the per-symbol walk
	// (shouldn't happen post unreachable-removal, but keep the naming
	// total) is appended in original index order.
	for i := range blocks {
		if !visited[i] {
			visited[i] = true
			order = append(order, i)
		}
	}

	for k, idx := range order {
		name[idx] = mName(k)
	}

	var states []string
	var accepting []string
	seenAccepting := map[string]bool{}
	var transitions []Transition
	seenTransition := map[Transition]bool{}

	for idx, b := range blocks {
		bn := name[idx]
		states = append(states, bn)

		for s := range b {
			if f.acceptSet[s] && !seenAccepting[bn] {
				seenAccepting[bn] = true
				accepting = append(accepting, bn)
			}
			for _, a := range f.alphabet {
				tos := f.Succ(s, a)
				if len(tos) == 0 {
					continue
				}
				tn := name[blockOf[tos[0]]]
				tr := Transition{From: bn, Symbol: a, To: tn}
				if !seenTransition[tr] {
					seenTransition[tr] = true
					transitions = append(transitions, tr)
				}
			}
		}
	}

	sort.Strings(states)
	sort.Strings(accepting)

	return New(states, f.alphabet, transitions, name[startIdx], accepting)
}

func mName(k int) string {
	return "M" + strconv.Itoa(k)
}

func stateList(b block) []string {
	out := make([]string, 0, len(b))
	for s := range b {
		out = append(out, s)
	}
	return out
}
