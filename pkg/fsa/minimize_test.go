package fsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// aStarBNonMinimal is a deliberately non-minimal 4-state DFA for a(a|b)* — two of
// its states (s1 and s2) are equivalent, used in several tests below and
// mirroring spec.md scenario S5.
func aStarBNonMinimal() *FSA {
	return New(
		[]string{"s0", "s1", "s2", "dead"},
		[]string{"a", "b"},
		[]Transition{
			tr("s0", "a", "s1"),
			tr("s0", "b", "dead"),
			tr("s1", "a", "s2"),
			tr("s1", "b", "s2"),
			tr("s2", "a", "s1"),
			tr("s2", "b", "s1"),
			tr("dead", "a", "dead"),
			tr("dead", "b", "dead"),
		},
		"s0",
		[]string{"s1", "s2"},
	)
}

func TestMinimizeReducesStateCount(t *testing.T) {
	r := require.New(t)
	m, err := Minimize(aStarBNonMinimal())
	r.NoError(err)
	// s1 and s2 are equivalent and merge; s0 and dead remain distinct
	// from the merged block and from each other, leaving 3 states.
	r.Len(m.States(), 3)
}

func TestMinimizeHasNoUnreachableStates(t *testing.T) {
	r := require.New(t)
	m, err := Minimize(aStarBNonMinimal())
	r.NoError(err)
	r.Empty(UnreachableStates(m))
}

func TestMinimizeIsIdempotent(t *testing.T) {
	r := require.New(t)
	once, err := Minimize(aStarBNonMinimal())
	r.NoError(err)
	twice, err := Minimize(once)
	r.NoError(err)
	r.ElementsMatch(once.States(), twice.States())
	r.Equal(once.Initial(), twice.Initial())
	r.ElementsMatch(once.Accepting(), twice.Accepting())
}

func TestMinimizeUsesBFSOrderMNaming(t *testing.T) {
	r := require.New(t)
	m, err := Minimize(aStarBNonMinimal())
	r.NoError(err)
	r.Equal("M0", m.Initial(), "initial block is discovered first in BFS order")
	for _, s := range m.States() {
		r.Regexp(`^M\d+$`, s)
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	r := require.New(t)
	f := aStarBNonMinimal()
	m, err := Minimize(f)
	r.NoError(err)
	for _, in := range []string{"", "a", "b", "aa", "ab", "aba", "abba", "baa"} {
		r.Equal(AcceptsString(f, in), AcceptsString(m, in), "input %q", in)
	}
}

func TestMinimizeDeterminizesNFAFirst(t *testing.T) {
	r := require.New(t)
	nfa := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]Transition{tr("q0", "a", "q1"), tr("q0", "a", "q2")},
		"q0",
		[]string{"q2"},
	)
	m, err := Minimize(nfa)
	r.NoError(err)
	r.True(m.IsDeterministic())
	r.Equal(AcceptsString(nfa, "a"), AcceptsString(m, "a"))
}
