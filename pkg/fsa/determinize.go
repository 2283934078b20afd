package fsa

// Determinize performs subset construction on f, returning an equivalent
// DFA whose states are frozen sets of f's states, canonically named as a
// sorted, comma-separated list inside braces (e.g. "{q0,q1}"). The result
// is left partial when a subset has no outgoing transition on some
// symbol — Determinize never adds an implicit trap state, so structural
// counts (state/transition totals) stay comparable to the input.
//
// If f is already deterministic, Determinize still runs the construction
// (each subset is a singleton), which keeps the canonical-name convention
// uniform for callers that compare determinized automata.
//
// Determinize returns ErrNilFSA if f is nil.
func Determinize(f *FSA) (*FSA, error) {
	if f == nil {
		return nil, ErrNilFSA
	}

	startSet := f.EpsilonClosure(f.initial)
	startName := stateSetName(startSet)

	type pending struct {
		name string
		set  map[string]bool
	}

	discovered := map[string]map[string]bool{startName: startSet}
	queue := []pending{{startName, startSet}}

	var states []string
	var accepting []string
	var transitions []Transition
	seen := map[string]bool{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur.name] {
			continue
		}
		seen[cur.name] = true

		states = append(states, cur.name)
		for s := range cur.set {
			if f.acceptSet[s] {
				accepting = append(accepting, cur.name)
				break
			}
		}

		for _, a := range f.alphabet {
			target := map[string]bool{}
			for q := range cur.set {
				for _, to := range f.Succ(q, a) {
					target[to] = true
				}
			}
			if len(target) == 0 {
				continue
			}
			target = f.EpsilonClosureSet(target)
			targetName := stateSetName(target)

			transitions = append(transitions, Transition{From: cur.name, Symbol: a, To: targetName})

			if _, ok := discovered[targetName]; !ok {
				discovered[targetName] = target
				queue = append(queue, pending{targetName, target})
			}
		}
	}

	return New(states, f.alphabet, transitions, startName, accepting), nil
}
