package fsa

import "sort"

// DifferenceString is one enumerated string on which two FSAs disagree,
// along with both sides' traces for display.
type DifferenceString struct {
	Input         string
	StudentTrace  []ConfigurationStep
	ExpectedTrace []ConfigurationStep
	Type          CounterexampleType
}

// SameLanguage decides language equivalence of student and expected:
// normalize both (determinize if needed, then minimize), run
// CheckIsomorphism, and if that reports no diagnostics the languages are
// equivalent. Otherwise fall back to bounded enumeration to surface a
// concrete counterexample; if none turns up within the bound the result
// is still "not equivalent" (the isomorphism diagnostics already explain
// why), with no counterexample attached.
//
// SameLanguage returns ErrNilFSA if either argument is nil, or
// ErrNegativeBound if maxLength is negative.
func SameLanguage(student, expected *FSA, maxLength int) (LanguageComparison, []ValidationError, error) {
	if student == nil || expected == nil {
		return LanguageComparison{}, nil, ErrNilFSA
	}
	if maxLength < 0 {
		return LanguageComparison{}, nil, ErrNegativeBound
	}

	studentMin, err := Minimize(student)
	if err != nil {
		return LanguageComparison{}, nil, err
	}
	expectedMin, err := Minimize(expected)
	if err != nil {
		return LanguageComparison{}, nil, err
	}

	diags := CheckIsomorphism(studentMin, expectedMin)
	if len(diags) == 0 {
		return LanguageComparison{AreEquivalent: true}, nil, nil
	}

	union := unionAlphabet(student, expected)
	for _, w := range enumerateStrings(union, maxLength) {
		sa := Accepts(student, w)
		ea := Accepts(expected, w)
		if sa != ea {
			ctype := ShouldReject
			if !sa && ea {
				ctype = ShouldAccept
			}
			return LanguageComparison{
				AreEquivalent:      false,
				HasCounterexample:  true,
				Counterexample:     joinSymbols(w),
				CounterexampleType: ctype,
			}, diags, nil
		}
	}

	return LanguageComparison{AreEquivalent: false}, diags, nil
}

// GenerateDifferenceStrings runs the same bounded enumeration as
// SameLanguage but continues past the first disagreement, collecting up
// to maxCount DifferenceString records.
//
// GenerateDifferenceStrings returns ErrNilFSA if either argument is nil,
// or ErrNegativeBound if maxLength is negative.
func GenerateDifferenceStrings(student, expected *FSA, maxLength, maxCount int) ([]DifferenceString, error) {
	if student == nil || expected == nil {
		return nil, ErrNilFSA
	}
	if maxLength < 0 {
		return nil, ErrNegativeBound
	}
	if maxCount <= 0 {
		return nil, nil
	}

	union := unionAlphabet(student, expected)
	var out []DifferenceString
	for _, w := range enumerateStrings(union, maxLength) {
		sa := Accepts(student, w)
		ea := Accepts(expected, w)
		if sa == ea {
			continue
		}
		ctype := ShouldReject
		if !sa && ea {
			ctype = ShouldAccept
		}
		out = append(out, DifferenceString{
			Input:         joinSymbols(w),
			StudentTrace:  Trace(student, w),
			ExpectedTrace: Trace(expected, w),
			Type:          ctype,
		})
		if len(out) >= maxCount {
			break
		}
	}
	return out, nil
}

func unionAlphabet(a, b *FSA) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range a.alphabet {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b.alphabet {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// enumerateStrings yields every string over alphabet in length order,
// ties broken lexicographically under alphabet's fixed (sorted) symbol
// order, for lengths 0..maxLength inclusive.
func enumerateStrings(alphabet []string, maxLength int) [][]string {
	var out [][]string
	out = append(out, nil) // length 0: the empty string
	if len(alphabet) == 0 {
		return out
	}

	current := [][]string{{}}
	for length := 1; length <= maxLength; length++ {
		var next [][]string
		for _, prefix := range current {
			for _, a := range alphabet {
				w := append(append([]string(nil), prefix...), a)
				next = append(next, w)
			}
		}
		out = append(out, next...)
		current = next
	}
	return out
}

func joinSymbols(w []string) string {
	out := ""
	for _, s := range w {
		out += s
	}
	return out
}
