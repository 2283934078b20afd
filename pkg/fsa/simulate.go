package fsa

// ConfigurationStep records the configuration set (the set of "current
// states") after consuming one input symbol, for Trace output. For a DFA
// the configuration degenerates to a single state; for an NFA it may hold
// several.
type ConfigurationStep struct {
	Symbol string   `json:"symbol"`
	States []string `json:"states"`
}

// Accepts implements the standard NFA configuration-set recurrence: the
// initial configuration is the ε-closure of the initial state, and each
// symbol of w advances every state in the configuration in parallel,
// re-closing over ε after each step. A symbol outside f's alphabet yields
// rejection, never an error.
func Accepts(f *FSA, w []string) bool {
	cfg := f.EpsilonClosure(f.initial)
	for _, a := range w {
		if !f.HasSymbol(a) {
			return false
		}
		cfg = advance(f, cfg, a)
		if len(cfg) == 0 {
			return false
		}
	}
	return intersectsAccept(f, cfg)
}

// Trace runs the same recurrence as Accepts but records the configuration
// set after every symbol, including an initial entry for the empty
// prefix. If the configuration becomes empty mid-string, the trace
// continues with empty configurations for the remaining symbols.
func Trace(f *FSA, w []string) []ConfigurationStep {
	steps := make([]ConfigurationStep, 0, len(w)+1)
	cfg := f.EpsilonClosure(f.initial)
	steps = append(steps, ConfigurationStep{Symbol: "", States: sortedCopy(keysOf(cfg))})

	for _, a := range w {
		if !f.HasSymbol(a) {
			cfg = map[string]bool{}
		} else {
			cfg = advance(f, cfg, a)
		}
		steps = append(steps, ConfigurationStep{Symbol: a, States: sortedCopy(keysOf(cfg))})
	}
	return steps
}

func advance(f *FSA, cfg map[string]bool, a string) map[string]bool {
	next := map[string]bool{}
	for q := range cfg {
		for _, to := range f.Succ(q, a) {
			next[to] = true
		}
	}
	return f.EpsilonClosureSet(next)
}

func intersectsAccept(f *FSA, cfg map[string]bool) bool {
	for s := range cfg {
		if f.acceptSet[s] {
			return true
		}
	}
	return false
}

func keysOf(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// AcceptsString is a convenience wrapper over Accepts for callers with a
// string input rather than a pre-tokenized []string; each rune becomes
// one symbol.
func AcceptsString(f *FSA, w string) bool {
	return Accepts(f, runeSymbols(w))
}

// TraceString is the string-input counterpart of Trace.
func TraceString(f *FSA, w string) []ConfigurationStep {
	return Trace(f, runeSymbols(w))
}

func runeSymbols(w string) []string {
	out := make([]string, 0, len(w))
	for _, r := range w {
		out = append(out, string(r))
	}
	return out
}
