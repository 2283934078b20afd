package fsa

import "errors"

// Sentinel errors for Go-level misuse of the package API. These are
// distinct from ValidationError: a ValidationError describes a problem
// with a student's FSA and is always returned as a value; these errors
// are returned only when a caller violates a precondition the type
// system cannot express (e.g. comparing against a nil reference FSA).
var (
	// ErrNilFSA is returned when a required *FSA argument is nil.
	ErrNilFSA = errors.New("fsa: nil FSA")
	// ErrNegativeBound is returned when a caller-supplied enumeration
	// length bound is negative.
	ErrNegativeBound = errors.New("fsa: negative length bound")
)
