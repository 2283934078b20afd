package fsa

import "testing"

// endsWithAB builds the reference 3-state DFA for "ends with ab" used
// throughout spec.md's scenario S4.
func endsWithAB() *FSA {
	return New(
		[]string{"s0", "s1", "s2"},
		[]string{"a", "b"},
		[]Transition{
			tr("s0", "a", "s1"), tr("s0", "b", "s0"),
			tr("s1", "a", "s1"), tr("s1", "b", "s2"),
			tr("s2", "a", "s1"), tr("s2", "b", "s0"),
		},
		"s0",
		[]string{"s2"},
	)
}

func TestAcceptsEndsWithAB(t *testing.T) {
	f := endsWithAB()
	cases := map[string]bool{
		"ab":   true,
		"aab":  true,
		"ba":   false,
		"":     false,
		"abab": true,
	}
	for in, want := range cases {
		if got := AcceptsString(f, in); got != want {
			t.Errorf("accepts(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAcceptsRejectsSymbolOutsideAlphabet(t *testing.T) {
	f := endsWithAB()
	if AcceptsString(f, "abc") {
		t.Error("expected rejection for a symbol outside the alphabet, not acceptance")
	}
}

func TestTraceRecordsOneStepPerSymbolPlusPrefix(t *testing.T) {
	f := endsWithAB()
	trace := TraceString(f, "ab")
	if len(trace) != 3 {
		t.Fatalf("expected 3 steps (prefix + 2 symbols), got %d", len(trace))
	}
	if trace[0].States[0] != "s0" {
		t.Errorf("expected initial step at s0, got %v", trace[0].States)
	}
	if trace[2].States[0] != "s2" {
		t.Errorf("expected final step at s2, got %v", trace[2].States)
	}
}

func TestTraceContinuesWithEmptyConfigurationAfterDeadEnd(t *testing.T) {
	f := New([]string{"q0", "q1"}, []string{"a", "b"}, []Transition{tr("q0", "a", "q1")}, "q0", []string{"q1"})
	trace := TraceString(f, "ab")
	if len(trace[1].States) != 1 {
		t.Fatalf("expected one state after 'a', got %v", trace[1].States)
	}
	if len(trace[2].States) != 0 {
		t.Errorf("expected empty configuration after the missing 'b' transition, got %v", trace[2].States)
	}
}

func TestRunnerSimulatesNFAConfigurationSet(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1"), tr("q0", "a", "q2")},
		"q0",
		[]string{"q2"},
	)
	r, err := NewRunner(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Step("a"); err != nil {
		t.Fatalf("unexpected error stepping: %v", err)
	}
	states := r.CurrentStates()
	if len(states) != 2 {
		t.Fatalf("expected both q1 and q2 in the configuration, got %v", states)
	}
	if !r.IsAccepting() {
		t.Errorf("expected the configuration to include the accepting state q2")
	}
}

func TestRunnerRejectsSymbolOutsideAlphabet(t *testing.T) {
	f := endsWithAB()
	r, _ := NewRunner(f)
	if err := r.Step("c"); err == nil {
		t.Error("expected an error stepping on a symbol outside the alphabet")
	}
}
