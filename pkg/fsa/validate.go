package fsa

import "fmt"

// Validate performs every structural well-formedness check on f
// independently — no check short-circuits another — so a caller sees
// every problem in one pass. An empty result means f satisfies all five
// invariants of spec §3.
func Validate(f *FSA) []ValidationError {
	var errs []ValidationError

	if len(f.states) == 0 {
		errs = append(errs, ValidationError{
			Code:       CodeEmptyStates,
			Severity:   SeverityError,
			Message:    "the automaton has no states",
			Suggestion: "add at least one state",
			Highlight:  &Highlight{Type: HighlightGeneral},
		})
	}

	seenState := map[string]bool{}
	for _, s := range f.states {
		if seenState[s] {
			errs = append(errs, ValidationError{
				Code:       CodeInvalidState,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("state %q is listed more than once", s),
				Suggestion: fmt.Sprintf("remove the duplicate entry for %q from the states list", s),
				Highlight:  &Highlight{Type: HighlightState, State: s},
			})
		}
		seenState[s] = true
	}

	if len(f.alphabet) == 0 {
		errs = append(errs, ValidationError{
			Code:       CodeEmptyAlphabet,
			Severity:   SeverityError,
			Message:    "the automaton has no input symbols",
			Suggestion: "add at least one alphabet symbol",
			Highlight:  &Highlight{Type: HighlightGeneral},
		})
	}

	for _, a := range f.alphabet {
		if isEpsilonSpelling(a) {
			errs = append(errs, ValidationError{
				Code:       CodeInvalidSymbol,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("alphabet symbol %q is the reserved ε-marker", a),
				Suggestion: "remove the ε-marker from the alphabet; ε is implicit on transitions",
				Highlight:  &Highlight{Type: HighlightAlphabetSymbol, Symbol: a},
			})
		}
	}

	if f.initial == "" || !f.stateSet[f.initial] {
		errs = append(errs, ValidationError{
			Code:       CodeInvalidInitial,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("initial state %q is not in the states list", f.initial),
			Suggestion: fmt.Sprintf("add %q to the states list or change the initial state", f.initial),
			Highlight:  &Highlight{Type: HighlightInitialState, State: f.initial},
		})
	}

	for _, acc := range f.accepting {
		if !f.stateSet[acc] {
			errs = append(errs, ValidationError{
				Code:       CodeInvalidAccept,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("accept state %q is not in the states list", acc),
				Suggestion: fmt.Sprintf("add %q to the states list or remove it from the accept states", acc),
				Highlight:  &Highlight{Type: HighlightAcceptState, State: acc},
			})
		}
	}

	for _, t := range f.transitions {
		if !f.stateSet[t.From] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionSource,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition source %q is not in the states list", t.From),
				Suggestion: fmt.Sprintf(
					"add %q to the states list or change the transition's source", t.From),
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, To: t.To, Symbol: displaySymbol(t.Symbol)},
			})
		}
		if !f.stateSet[t.To] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionDest,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition destination %q is not in the states list", t.To),
				Suggestion: fmt.Sprintf(
					"add %q to the states list or change the transition's destination", t.To),
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, To: t.To, Symbol: displaySymbol(t.Symbol)},
			})
		}
		if t.Symbol != Epsilon && !f.alphaSet[t.Symbol] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionSymbol,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition symbol %q is not in the alphabet", t.Symbol),
				Suggestion: fmt.Sprintf(
					"add %q to the alphabet or change the transition's symbol", t.Symbol),
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, To: t.To, Symbol: t.Symbol},
			})
		}
	}

	return errs
}

// displaySymbol renders a transition symbol for a diagnostic message,
// showing "ε" instead of the internal sentinel.
func displaySymbol(symbol string) string {
	if symbol == Epsilon {
		return "ε"
	}
	return symbol
}

// HasFatalErrors reports whether errs contains at least one
// SeverityError finding — the signal the correction pipeline uses to
// decide whether simulation on the FSA is well-defined.
func HasFatalErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
