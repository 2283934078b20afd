package fsa

import "testing"

func TestValidateCleanFSA(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1")},
		"q0",
		[]string{"q1"},
	)
	if errs := Validate(f); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateMissingTransitionDest(t *testing.T) {
	// S1: transition references a state outside the states list.
	f := New(
		[]string{"q0"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1")},
		"q0",
		[]string{"q0"},
	)
	errs := Validate(f)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Code != CodeInvalidTransitionDest {
		t.Errorf("expected INVALID_TRANSITION_DEST, got %s", errs[0].Code)
	}
	if errs[0].Severity != SeverityError {
		t.Errorf("expected severity error, got %s", errs[0].Severity)
	}
	if errs[0].Highlight == nil || errs[0].Highlight.From != "q0" || errs[0].Highlight.To != "q1" {
		t.Errorf("expected highlight referencing q0->q1, got %+v", errs[0].Highlight)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	f := New(
		nil,
		nil,
		[]Transition{tr("ghost", "x", "ghost2")},
		"missing",
		[]string{"also-missing"},
	)
	errs := Validate(f)
	codes := map[ErrorCode]bool{}
	for _, e := range errs {
		codes[e.Code] = true
	}
	for _, want := range []ErrorCode{
		CodeEmptyStates, CodeEmptyAlphabet, CodeInvalidInitial, CodeInvalidAccept,
		CodeInvalidTransitionSource, CodeInvalidTransitionDest, CodeInvalidTransitionSymbol,
	} {
		if !codes[want] {
			t.Errorf("expected code %s among %v", want, errs)
		}
	}
}

func TestValidateIsPure(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q2")},
		"q0",
		nil,
	)
	a := Validate(f)
	b := Validate(f)
	if len(a) != len(b) {
		t.Fatalf("expected equal-length results, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code {
			t.Errorf("at %d: codes differ between runs: %s vs %s", i, a[i].Code, b[i].Code)
		}
	}
}

func TestEpsilonMarkerSpellingsNormalize(t *testing.T) {
	f1 := New([]string{"q0", "q1"}, []string{"a"}, []Transition{tr("q0", "ε", "q1")}, "q0", []string{"q1"})
	f2 := New([]string{"q0", "q1"}, []string{"a"}, []Transition{tr("q0", "epsilon", "q1")}, "q0", []string{"q1"})
	f3 := New([]string{"q0", "q1"}, []string{"a"}, []Transition{tr("q0", "", "q1")}, "q0", []string{"q1"})

	for _, f := range []*FSA{f1, f2, f3} {
		if f.Transitions()[0].Symbol != Epsilon {
			t.Errorf("expected normalized epsilon symbol, got %q", f.Transitions()[0].Symbol)
		}
	}
}
