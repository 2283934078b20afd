package fsa

import "testing"

func TestEpsilonClosureIdentityWithoutEpsilons(t *testing.T) {
	f := New([]string{"q0", "q1"}, []string{"a"}, []Transition{tr("q0", "a", "q1")}, "q0", nil)
	c := f.EpsilonClosure("q0")
	if len(c) != 1 || !c["q0"] {
		t.Errorf("expected closure {q0}, got %v", c)
	}
}

func TestEpsilonClosureFollowsChain(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		nil,
		[]Transition{tr("q0", "ε", "q1"), tr("q1", "ε", "q2")},
		"q0",
		nil,
	)
	c := f.EpsilonClosure("q0")
	for _, s := range []string{"q0", "q1", "q2"} {
		if !c[s] {
			t.Errorf("expected %s in closure, got %v", s, c)
		}
	}
}

func TestEpsilonClosureTerminatesOnCycle(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		nil,
		[]Transition{tr("q0", "ε", "q1"), tr("q1", "ε", "q0")},
		"q0",
		nil,
	)
	c := f.EpsilonClosure("q0")
	if len(c) != 2 {
		t.Errorf("expected closure of size 2, got %d: %v", len(c), c)
	}
}

func TestEpsilonClosureAllMemoizesEveryState(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		nil,
		[]Transition{tr("q0", "ε", "q1")},
		"q0",
		nil,
	)
	all := f.EpsilonClosureAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if !all["q0"]["q1"] {
		t.Errorf("expected q0's closure to include q1")
	}
	if len(all["q2"]) != 1 || !all["q2"]["q2"] {
		t.Errorf("expected q2's closure to be {q2}, got %v", all["q2"])
	}
}
