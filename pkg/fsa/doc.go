// Package fsa implements the algorithmic core of an automated FSA grader:
// structural validation, language-theoretic transformations, and
// diagnostic-bearing comparison of a student's finite-state automaton
// against a reference specification.
//
// The package is organized around the pipeline a correction run drives:
//
//   - Validate            structural well-formedness (the 5-tuple invariants)
//   - EpsilonClosure(All) ε-closure, single state and memoized bulk
//   - Determinize         subset construction, NFA/ε-NFA -> partial DFA
//   - Minimize            unreachable-state removal + Hopcroft refinement
//   - Reachable / DeadStates forward/co-reachability (BFS both directions)
//   - Accepts / Trace     NFA configuration-set simulation
//   - CheckIsomorphism    canonical BFS-pairing equivalence with diagnostics
//   - SameLanguage        minimize-then-isomorphism, bounded-enumeration fallback
//   - Evaluate            the externally visible correction pipeline (all of the above)
//
// # Call contract
//
// Every exported function takes value inputs (an *FSA is immutable after
// construction via New) and returns value outputs. No function performs
// I/O, blocks, or retains state across calls: derived structures (ε-closure
// caches, subset-state names, partitions) are allocated for one call and
// released on return. This makes every entry point safe to call
// concurrently from separate goroutines, provided no caller mutates the
// *FSA values it passed in. The one exception is Runner, a step-by-step
// simulator that by design keeps its configuration between Step calls;
// nothing else in the package uses it.
//
// # Errors
//
// Apart from NewRunner, which refuses an FSA with structural errors, the
// package never panics or returns a Go error for a malformed student
// FSA — problems are reported as ValidationError values with a code, a
// severity, and (where applicable) a Highlight describing exactly which
// state, transition, or symbol is at fault. The small errors.go sentinel
// set (ErrNilFSA, ErrNegativeBound) is reserved for Go-level API misuse —
// a nil *FSA argument or a negative length bound passed to Determinize,
// Minimize, SameLanguage, or GenerateDifferenceStrings — not for domain
// findings. Evaluate itself never returns a Go error even when one of
// these functions does internally: any such failure is surfaced as a
// single EVALUATION_ERROR ValidationError instead, preserving the
// guarantee in the previous paragraph.
//
// # Integration
//
// pkg/fsafile encodes/decodes the wire shapes (FSA, Answer, Params, Result)
// this package's types project onto; fsa itself never imports encoding/json.
package fsa
