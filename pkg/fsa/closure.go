package fsa

// EpsilonClosure returns the set of states reachable from q by zero or
// more ε-transitions, always including q itself. It is a breadth-first
// traversal of ε-edges with cycle termination by membership test.
func (f *FSA) EpsilonClosure(q string) map[string]bool {
	closure := map[string]bool{q: true}
	queue := []string{q}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range f.EpsilonEdges(cur) {
			if !closure[next] {
				closure[next] = true
				queue = append(queue, next)
			}
		}
	}
	return closure
}

// EpsilonClosureSet returns the ε-closure of a whole set of states: the
// union of EpsilonClosure over every member.
func (f *FSA) EpsilonClosureSet(states map[string]bool) map[string]bool {
	closure := make(map[string]bool, len(states))
	queue := make([]string, 0, len(states))
	for s := range states {
		if !closure[s] {
			closure[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range f.EpsilonEdges(cur) {
			if !closure[next] {
				closure[next] = true
				queue = append(queue, next)
			}
		}
	}
	return closure
}

// EpsilonClosureAll computes EpsilonClosure for every state of f in a
// single pass over the states, returning the closures keyed by state. Each
// state's closure comes from its own traversal; a state id listed more
// than once is computed only once.
func (f *FSA) EpsilonClosureAll() map[string]map[string]bool {
	memo := make(map[string]map[string]bool, len(f.states))
	for _, q := range f.states {
		if _, ok := memo[q]; !ok {
			memo[q] = f.EpsilonClosure(q)
		}
	}
	return memo
}
