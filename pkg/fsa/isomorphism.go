package fsa

import "fmt"

// CheckIsomorphism decides whether two reduced DFAs over the same
// alphabet are isomorphic — a bijection on states preserving the initial
// state, the accept set, and the transition structure per symbol.
// Callers must run Minimize on both inputs first (spec §4.C8's
// precondition); CheckIsomorphism does not minimize.
//
// An empty diagnostic slice means student and expected are isomorphic,
// hence language-equivalent. A non-empty slice explains every mismatch
// found; CheckIsomorphism never stops at the first one except for the
// three structural pre-checks, which are fatal by construction (without
// matching alphabets or sizes no bijection can exist).
func CheckIsomorphism(student, expected *FSA) []ValidationError {
	if diag := preCheckAlphabets(student, expected); diag != nil {
		return []ValidationError{*diag}
	}
	if diag := preCheckCount("state", len(student.states), len(expected.states)); diag != nil {
		return []ValidationError{*diag}
	}
	if diag := preCheckCount("accepting state", len(student.accepting), len(expected.accepting)); diag != nil {
		return []ValidationError{*diag}
	}

	var diags []ValidationError

	phi := map[string]string{student.initial: expected.initial}
	phiInv := map[string]string{expected.initial: student.initial}

	type pair struct{ p, q string }
	queue := []pair{{student.initial, expected.initial}}
	visited := map[pair]bool{{student.initial, expected.initial}: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range student.alphabet {
			pSucc := student.Succ(cur.p, a)
			qSucc := expected.Succ(cur.q, a)
			var pNext, qNext string
			if len(pSucc) > 0 {
				pNext = pSucc[0]
			}
			if len(qSucc) > 0 {
				qNext = qSucc[0]
			}

			switch {
			case pNext == "" && qNext == "":
				continue
			case pNext == "" && qNext != "":
				diags = append(diags, ValidationError{
					Code:       CodeMissingTransition,
					Severity:   SeverityError,
					Message:    fmt.Sprintf("missing transition from %q on %q", cur.p, a),
					Suggestion: fmt.Sprintf("add a transition from %q on %q", cur.p, a),
					Highlight:  &Highlight{Type: HighlightTransition, From: cur.p, Symbol: a},
				})
				continue
			case pNext != "" && qNext == "":
				diags = append(diags, ValidationError{
					Code:       CodeMissingTransition,
					Severity:   SeverityError,
					Message:    fmt.Sprintf("unexpected transition from %q on %q", cur.p, a),
					Suggestion: fmt.Sprintf("remove the transition from %q on %q, or check the reference", cur.p, a),
					Highlight:  &Highlight{Type: HighlightTransition, From: cur.p, To: pNext, Symbol: a},
				})
				continue
			}

			if bound, ok := phi[pNext]; ok && bound != qNext {
				diags = append(diags, ValidationError{
					Code:     CodeLanguageMismatch,
					Severity: SeverityError,
					Message: fmt.Sprintf(
						"transition from %q on %q leads to the wrong state", cur.p, a),
					Suggestion: fmt.Sprintf("check where %q on %q should lead", cur.p, a),
					Highlight:  &Highlight{Type: HighlightTransition, From: cur.p, To: pNext, Symbol: a},
				})
				continue
			}
			if bound, ok := phiInv[qNext]; ok && bound != pNext {
				diags = append(diags, ValidationError{
					Code:     CodeLanguageMismatch,
					Severity: SeverityError,
					Message: fmt.Sprintf(
						"transition from %q on %q leads to the wrong state", cur.p, a),
					Suggestion: fmt.Sprintf("check where %q on %q should lead", cur.p, a),
					Highlight:  &Highlight{Type: HighlightTransition, From: cur.p, To: pNext, Symbol: a},
				})
				continue
			}

			pAccept := student.acceptSet[pNext]
			qAccept := expected.acceptSet[qNext]
			if pAccept != qAccept {
				code := "should_not_be_accepting"
				if qAccept && !pAccept {
					code = "should_be_accepting"
				}
				diags = append(diags, ValidationError{
					Code:     CodeLanguageMismatch,
					Severity: SeverityError,
					Message:  fmt.Sprintf("state %q %s", pNext, acceptMismatchMessage(code)),
					Suggestion: fmt.Sprintf(
						"toggle whether %q is an accepting state", pNext),
					Highlight: &Highlight{Type: HighlightAcceptState, State: pNext},
				})
			}

			if _, ok := phi[pNext]; !ok {
				phi[pNext] = qNext
				phiInv[qNext] = pNext
				key := pair{pNext, qNext}
				if !visited[key] {
					visited[key] = true
					queue = append(queue, key)
				}
			}
		}
	}

	return diags
}

func acceptMismatchMessage(code string) string {
	switch code {
	case "should_be_accepting":
		return "should be accepting but is not"
	default:
		return "should not be accepting but is"
	}
}

func preCheckAlphabets(a, b *FSA) *ValidationError {
	aSyms := sortedCopy(a.alphabet)
	bSyms := sortedCopy(b.alphabet)
	if len(aSyms) != len(bSyms) {
		return &ValidationError{
			Code:     CodeLanguageMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"alphabet size differs: student has %d symbols, expected has %d", len(aSyms), len(bSyms)),
			Highlight: &Highlight{Type: HighlightGeneral},
		}
	}
	for i := range aSyms {
		if aSyms[i] != bSyms[i] {
			return &ValidationError{
				Code:     CodeLanguageMismatch,
				Severity: SeverityError,
				Message: fmt.Sprintf(
					"alphabet differs: student has %q, expected has %q", aSyms[i], bSyms[i]),
				Highlight: &Highlight{Type: HighlightGeneral},
			}
		}
	}
	return nil
}

func preCheckCount(label string, a, b int) *ValidationError {
	if a != b {
		return &ValidationError{
			Code:     CodeLanguageMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"%s count differs: student has %d, expected has %d", label, a, b),
			Highlight: &Highlight{Type: HighlightGeneral},
		}
	}
	return nil
}
