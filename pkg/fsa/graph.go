package fsa

// Reachable performs a BFS from f.Initial() over the forward transition
// graph (ε-edges included as ordinary edges) and returns the set of
// states found.
func Reachable(f *FSA) map[string]bool {
	visited := map[string]bool{f.initial: true}
	queue := []string{f.initial}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, tos := range f.succIndex[cur] {
			for _, to := range tos {
				if !visited[to] {
					visited[to] = true
					queue = append(queue, to)
				}
			}
		}
	}
	return visited
}

// UnreachableStates returns, in state-declaration order, every state not
// reachable from the initial state by any transition (ε included).
func UnreachableStates(f *FSA) []string {
	reached := Reachable(f)
	var out []string
	for _, s := range f.states {
		if !reached[s] {
			out = append(out, s)
		}
	}
	return out
}

// reverseEdges builds the reverse adjacency of f's transition relation,
// ε-edges included as ordinary edges, for co-reachability analysis.
func reverseEdges(f *FSA) map[string][]string {
	rev := make(map[string][]string, len(f.states))
	for _, t := range f.transitions {
		rev[t.To] = append(rev[t.To], t.From)
	}
	return rev
}

// coReachable performs a BFS over the reverse graph starting from every
// state in seeds, returning every state that can reach one of them.
func coReachable(f *FSA, seeds map[string]bool) map[string]bool {
	rev := reverseEdges(f)
	visited := make(map[string]bool, len(seeds))
	queue := make([]string, 0, len(seeds))
	for s := range seeds {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, from := range rev[cur] {
			if !visited[from] {
				visited[from] = true
				queue = append(queue, from)
			}
		}
	}
	return visited
}

// DeadStates returns, in state-declaration order, every state from which
// no accepting state is reachable and which is not itself accepting.
func DeadStates(f *FSA) []string {
	coReached := coReachable(f, f.acceptSet)

	var out []string
	for _, s := range f.states {
		if f.acceptSet[s] {
			continue
		}
		if !coReached[s] {
			out = append(out, s)
		}
	}
	return out
}

// AnalyzeStructure computes the StructuralInfo summary: determinism,
// completeness, sizes, and the unreachable/dead state lists.
func AnalyzeStructure(f *FSA) StructuralInfo {
	return StructuralInfo{
		IsDeterministic:   f.IsDeterministic(),
		IsComplete:        f.IsComplete(),
		NumStates:         len(f.states),
		NumTransitions:    len(f.transitions),
		UnreachableStates: UnreachableStates(f),
		DeadStates:        DeadStates(f),
	}
}

// structuralDiagnostics turns UnreachableStates/DeadStates findings into
// ValidationError warnings with state highlights, for the correction
// pipeline.
func structuralDiagnostics(f *FSA, info StructuralInfo) []ValidationError {
	var out []ValidationError
	for _, s := range info.UnreachableStates {
		out = append(out, ValidationError{
			Code:       CodeUnreachableState,
			Severity:   SeverityWarning,
			Message:    "state " + s + " cannot be reached from the initial state",
			Suggestion: "remove the state or add a transition reaching it",
			Highlight:  &Highlight{Type: HighlightState, State: s},
		})
	}
	for _, s := range info.DeadStates {
		out = append(out, ValidationError{
			Code:       CodeDeadState,
			Severity:   SeverityWarning,
			Message:    "state " + s + " can never reach an accepting state",
			Suggestion: "add a path from this state to an accepting state, or remove it",
			Highlight:  &Highlight{Type: HighlightState, State: s},
		})
	}
	return out
}
