package fsa

import (
	"fmt"
	"strings"
)

// Runner drives an FSA interactively, one symbol at a time, tracking the
// full configuration set the way an NFA recurrence requires. It is for
// interactive, step-by-step callers; the correction pipeline and the CLI's
// simulate subcommand use the pure Accepts/Trace functions instead, since
// a Runner carries state across calls and the core contract (spec §5) is
// that no core state survives a single call.
type Runner struct {
	fsa     *FSA
	current map[string]bool
	history []ConfigurationStep
}

// NewRunner creates a Runner positioned at the ε-closure of f's initial
// state. It returns an error only if f fails structural validation.
func NewRunner(f *FSA) (*Runner, error) {
	if errs := Validate(f); HasFatalErrors(errs) {
		return nil, fmt.Errorf("invalid FSA: %d structural error(s)", len(errs))
	}
	r := &Runner{fsa: f}
	r.Reset()
	return r, nil
}

// Reset returns the runner to the ε-closure of the initial state and
// clears its history.
func (r *Runner) Reset() {
	r.current = r.fsa.EpsilonClosure(r.fsa.initial)
	r.history = nil
}

// CurrentStates returns the current configuration, sorted.
func (r *Runner) CurrentStates() []string {
	return sortedCopy(keysOf(r.current))
}

// CurrentLabel renders the current configuration as a single display
// string: the bare state id for a singleton, or "{a,b}" otherwise.
func (r *Runner) CurrentLabel() string {
	states := r.CurrentStates()
	if len(states) == 1 {
		return states[0]
	}
	return "{" + strings.Join(states, ",") + "}"
}

// IsAccepting reports whether any state in the current configuration is
// accepting.
func (r *Runner) IsAccepting() bool {
	return intersectsAccept(r.fsa, r.current)
}

// Step consumes one input symbol and advances the configuration. It
// returns an error if the symbol is not in the FSA's alphabet or if the
// resulting configuration is empty (no transition applies).
func (r *Runner) Step(symbol string) error {
	if !r.fsa.HasSymbol(symbol) {
		return fmt.Errorf("symbol %q is not in the alphabet", symbol)
	}
	next := advance(r.fsa, r.current, symbol)
	if len(next) == 0 {
		return fmt.Errorf("no transition from %s on %q", r.CurrentLabel(), symbol)
	}
	r.current = next
	r.history = append(r.history, ConfigurationStep{Symbol: symbol, States: r.CurrentStates()})
	return nil
}

// Run consumes a sequence of symbols in order, stopping at the first
// symbol Step rejects.
func (r *Runner) Run(symbols []string) error {
	for _, s := range symbols {
		if err := r.Step(s); err != nil {
			return err
		}
	}
	return nil
}

// History returns the sequence of configuration steps recorded since the
// last Reset.
func (r *Runner) History() []ConfigurationStep {
	return append([]ConfigurationStep(nil), r.history...)
}
