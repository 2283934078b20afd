package fsa

import "testing"

func TestUnreachableStatesMatchesForwardBFS(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "ghost"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1")},
		"q0",
		nil,
	)
	unreachable := UnreachableStates(f)
	if len(unreachable) != 1 || unreachable[0] != "ghost" {
		t.Errorf("expected [ghost], got %v", unreachable)
	}
}

func TestDeadStateWithSelfLoop(t *testing.T) {
	// S3 from spec.md: q1 self-loops and is never accepting.
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1"), tr("q1", "a", "q1")},
		"q0",
		[]string{"q0"},
	)
	dead := DeadStates(f)
	if len(dead) != 1 || dead[0] != "q1" {
		t.Errorf("expected [q1], got %v", dead)
	}
}

func TestDeadStateRequiresNoPathToAccepting(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "accepting", "dead"},
		[]string{"a", "b"},
		[]Transition{
			tr("q0", "a", "q1"),
			tr("q0", "b", "dead"),
			tr("q1", "a", "accepting"),
		},
		"q0",
		[]string{"accepting"},
	)
	dead := DeadStates(f)
	found := false
	for _, d := range dead {
		if d == "dead" {
			found = true
		}
		if d == "accepting" || d == "q0" || d == "q1" {
			t.Errorf("state %q should not be dead", d)
		}
	}
	if !found {
		t.Errorf("expected 'dead' to be reported, got %v", dead)
	}
}

func TestAcceptingStateIsNeverDead(t *testing.T) {
	f := New([]string{"q0"}, nil, nil, "q0", []string{"q0"})
	if dead := DeadStates(f); len(dead) != 0 {
		t.Errorf("expected no dead states, got %v", dead)
	}
}
