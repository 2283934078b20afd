package fsa

import "fmt"

// EvaluationMode selects how Evaluate turns diagnostics into a score.
type EvaluationMode string

const (
	ModeStrict  EvaluationMode = "strict"
	ModeLenient EvaluationMode = "lenient"
	ModePartial EvaluationMode = "partial"
)

// ExpectedType constrains which kind of automaton the student may submit.
type ExpectedType string

const (
	ExpectDFA ExpectedType = "DFA"
	ExpectNFA ExpectedType = "NFA"
	ExpectAny ExpectedType = "any"
)

// FeedbackVerbosity controls how much of FSAFeedback's detail Evaluate
// keeps.
type FeedbackVerbosity string

const (
	VerbosityMinimal  FeedbackVerbosity = "minimal"
	VerbosityStandard FeedbackVerbosity = "standard"
	VerbosityDetailed FeedbackVerbosity = "detailed"
)

// Params configures one Evaluate call (spec §6).
type Params struct {
	EvaluationMode     EvaluationMode
	ExpectedType       ExpectedType
	CheckCompleteness  bool
	CheckMinimality    bool
	FeedbackVerbosity  FeedbackVerbosity
	HighlightErrors    bool
	ShowCounterexample bool
	MaxTestLength      int
}

// DefaultParams returns the default configuration: strict mode, any
// automaton type accepted, standard verbosity, highlights and
// counterexamples shown, enumeration bounded to 5. Evaluate itself only
// substitutes the default for MaxTestLength (when it is zero or
// negative); every other field is used exactly as the caller passes it.
func DefaultParams() Params {
	return Params{
		EvaluationMode:     ModeStrict,
		ExpectedType:       ExpectAny,
		FeedbackVerbosity:  VerbosityStandard,
		HighlightErrors:    true,
		ShowCounterexample: true,
		MaxTestLength:      5,
	}
}

// AnswerType is the tag of the Answer union (spec §6).
type AnswerType string

const (
	AnswerTestCases    AnswerType = "test_cases"
	AnswerReferenceFSA AnswerType = "reference_fsa"
	AnswerRegex        AnswerType = "regex"
	AnswerGrammar      AnswerType = "grammar"
)

// TestCase is one input/expected pair of a test_cases Answer.
type TestCase struct {
	Input    string
	Expected bool
}

// Answer is the expected-language specification a student FSA is graded
// against.
type Answer struct {
	Type         AnswerType
	TestCases    []TestCase
	ReferenceFSA *FSA
}

// Result is the top-level externally visible outcome of one Evaluate
// call (spec §6).
type Result struct {
	IsCorrect   bool
	Feedback    string
	Score       *float64
	FSAFeedback FSAFeedback
}

const maxDifferencesForScoring = 10

// Evaluate is the consolidated top-level correction pipeline (spec
// §4.C10): validate, analyze structure, enforce configured constraints,
// dispatch on the Answer route, and compose a Result. It never panics or
// returns a Go error — every condition the caller must know about is a
// ValidationError inside the returned FSAFeedback.
func Evaluate(student *FSA, answer Answer, params Params) Result {
	if params.MaxTestLength <= 0 {
		params.MaxTestLength = 5
	}

	if student == nil {
		feedback := FSAFeedback{
			Summary: summarize(true, nil, nil, nil),
			Errors:  []ValidationError{evaluationError(ErrNilFSA)},
		}
		return Result{Feedback: feedback.Summary, FSAFeedback: feedback}
	}

	structuralErrs := Validate(student)
	fatal := HasFatalErrors(structuralErrs)

	var structural StructuralInfo
	var warnings []ValidationError
	var errs []ValidationError
	var hints []string
	var testResults []TestResult
	var language *LanguageComparison

	errs = append(errs, structuralErrs...)

	structural.NumStates = len(student.States())
	structural.NumTransitions = len(student.Transitions())

	if !fatal {
		structural = AnalyzeStructure(student)
		warnings = append(warnings, structuralDiagnostics(student, structural)...)

		if len(structural.DeadStates) > 0 {
			hints = append(hints, fmt.Sprintf(
				"states %v can never lead to acceptance — double check the transitions out of them",
				structural.DeadStates))
		}
		if len(structural.UnreachableStates) > 0 {
			hints = append(hints, fmt.Sprintf(
				"states %v are never reached from the initial state", structural.UnreachableStates))
		}

		if params.ExpectedType == ExpectDFA && !structural.IsDeterministic {
			errs = append(errs,
				ValidationError{
					Code:       CodeWrongAutomatonType,
					Severity:   SeverityError,
					Message:    "a DFA was expected but the submitted automaton is not one",
					Suggestion: "submit a deterministic automaton, or relax expected_type to NFA or any",
					Highlight:  &Highlight{Type: HighlightGeneral},
				},
				ValidationError{
					Code:       CodeNotDeterministic,
					Severity:   SeverityError,
					Message:    "a DFA was expected but the submitted automaton is non-deterministic",
					Suggestion: "remove ε-transitions and collapse duplicate (state, symbol) transitions",
					Highlight:  &Highlight{Type: HighlightGeneral},
				},
			)
		}

		if params.CheckCompleteness && !structural.IsComplete {
			errs = append(errs, ValidationError{
				Code:       CodeNotComplete,
				Severity:   SeverityError,
				Message:    "the automaton is not complete: some (state, symbol) pair has no transition",
				Suggestion: "add a transition for every state/symbol pair, or route missing ones to a trap state",
				Highlight:  &Highlight{Type: HighlightGeneral},
			})
		}

		if params.CheckMinimality {
			det := student
			if !det.IsDeterministic() {
				var err error
				det, err = Determinize(student)
				if err != nil {
					errs = append(errs, evaluationError(err))
				}
			}
			if det != nil {
				min, err := Minimize(det)
				if err != nil {
					errs = append(errs, evaluationError(err))
				} else if len(min.States()) < len(det.States()) {
					hints = append(hints, fmt.Sprintf(
						"the automaton is not minimal: it has %d states, a minimal equivalent has %d",
						len(det.States()), len(min.States())))
				}
			}
		}
	}

	var score *float64

	if !fatal {
		switch answer.Type {
		case AnswerTestCases:
			testResults, errs = runTestCases(student, answer.TestCases, errs)
			if params.EvaluationMode == ModePartial {
				score = scorePointer(testScore(testResults))
			}

		case AnswerReferenceFSA:
			cmp, isoDiags, err := SameLanguage(student, answer.ReferenceFSA, params.MaxTestLength)
			if err != nil {
				errs = append(errs, evaluationError(err))
				break
			}
			language = &cmp
			errs = append(errs, isoDiags...)
			if !cmp.AreEquivalent && !cmp.HasCounterexample && len(isoDiags) == 0 {
				hints = append(hints, "the automata disagree but no witness string was found within the enumeration bound")
			} else if cmp.HasCounterexample {
				hints = append(hints, fmt.Sprintf(
					"try tracing the input %q through both automata to see where they diverge", cmp.Counterexample))
			}
			if params.EvaluationMode == ModePartial {
				if cmp.AreEquivalent {
					score = scorePointer(1)
				} else {
					diffs, derr := GenerateDifferenceStrings(student, answer.ReferenceFSA, params.MaxTestLength, maxDifferencesForScoring)
					if derr != nil {
						errs = append(errs, evaluationError(derr))
					} else {
						score = scorePointer(differenceScore(len(diffs), maxDifferencesForScoring))
					}
				}
			}

		case AnswerRegex, AnswerGrammar:
			errs = append(errs, ValidationError{
				Code:      CodeEvaluationError,
				Severity:  SeverityError,
				Message:   fmt.Sprintf("answer type %q is reserved and not yet supported", answer.Type),
				Highlight: &Highlight{Type: HighlightGeneral},
			})
		}
	}

	feedback := FSAFeedback{
		Summary:     summarize(fatal, errs, testResults, language),
		Errors:      filterSeverity(errs, SeverityError),
		Warnings:    append(filterSeverity(errs, SeverityWarning), filterSeverity(errs, SeverityInfo)...),
		Structural:  structural,
		Language:    language,
		TestResults: testResults,
		Hints:       hints,
	}
	feedback.Warnings = append(feedback.Warnings, warnings...)

	if !params.HighlightErrors {
		stripHighlights(feedback.Errors)
		stripHighlights(feedback.Warnings)
	}
	if !params.ShowCounterexample && feedback.Language != nil {
		feedback.Language.Counterexample = ""
		feedback.Language.HasCounterexample = false
	}
	applyVerbosity(&feedback, params.FeedbackVerbosity)

	isCorrect := !fatal && len(feedback.Errors) == 0

	return Result{
		IsCorrect:   isCorrect,
		Feedback:    feedback.Summary,
		Score:       score,
		FSAFeedback: feedback,
	}
}

// GetFeedback is a thin projection over Evaluate that returns only the
// FSAFeedback half of Result.
func GetFeedback(student *FSA, answer Answer, params Params) FSAFeedback {
	return Evaluate(student, answer, params).FSAFeedback
}

// EvaluateDict is a thin projection over Evaluate returning a
// map[string]any shape, for callers that want a dictionary rather than
// the Result struct.
func EvaluateDict(student *FSA, answer Answer, params Params) map[string]any {
	res := Evaluate(student, answer, params)
	out := map[string]any{
		"is_correct": res.IsCorrect,
		"feedback":   res.Feedback,
	}
	if res.Score != nil {
		out["score"] = *res.Score
	}
	out["fsa_feedback"] = res.FSAFeedback
	return out
}

func runTestCases(student *FSA, cases []TestCase, errs []ValidationError) ([]TestResult, []ValidationError) {
	results := make([]TestResult, 0, len(cases))
	for _, tc := range cases {
		w := runeSymbols(tc.Input)
		actual := Accepts(student, w)
		passed := actual == tc.Expected
		results = append(results, TestResult{
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   actual,
			Passed:   passed,
			Trace:    Trace(student, w),
		})
		if !passed {
			errs = append(errs, ValidationError{
				Code:     CodeTestCaseFailed,
				Severity: SeverityError,
				Message: fmt.Sprintf(
					"input %q: expected acceptance=%v, got %v", tc.Input, tc.Expected, actual),
				Highlight: &Highlight{Type: HighlightGeneral},
			})
		}
	}
	return results, errs
}

func testScore(results []TestResult) float64 {
	if len(results) == 0 {
		return 1
	}
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(results))
}

func differenceScore(count, max int) float64 {
	ratio := float64(count) / float64(max)
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio
}

func scorePointer(v float64) *float64 {
	return &v
}

// evaluationError wraps an internal Go-level error (e.g. ErrNilFSA) as the
// single EVALUATION_ERROR diagnostic spec §7 mandates for conditions that
// should be impossible under the pipeline's own invariants — the pipeline
// never propagates a Go error across its public surface.
func evaluationError(err error) ValidationError {
	return ValidationError{
		Code:      CodeEvaluationError,
		Severity:  SeverityError,
		Message:   fmt.Sprintf("internal evaluation error: %v", err),
		Highlight: &Highlight{Type: HighlightGeneral},
	}
}

func filterSeverity(errs []ValidationError, sev Severity) []ValidationError {
	var out []ValidationError
	for _, e := range errs {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

func stripHighlights(errs []ValidationError) {
	for i := range errs {
		errs[i].Highlight = nil
	}
}

func summarize(fatal bool, errs []ValidationError, results []TestResult, language *LanguageComparison) string {
	errCount := len(filterSeverity(errs, SeverityError))
	switch {
	case fatal:
		return "the submitted automaton is structurally invalid and could not be evaluated further"
	case errCount == 0 && language != nil && language.AreEquivalent:
		return "the submitted automaton accepts the same language as the reference"
	case errCount == 0 && len(results) > 0:
		return fmt.Sprintf("all %d test case(s) passed", len(results))
	case errCount == 0:
		return "no errors found"
	default:
		return fmt.Sprintf("%d error(s) found", errCount)
	}
}

func applyVerbosity(feedback *FSAFeedback, verbosity FeedbackVerbosity) {
	switch verbosity {
	case VerbosityMinimal:
		feedback.Hints = nil
		feedback.TestResults = nil
		if feedback.Language != nil {
			cmp := *feedback.Language
			cmp.Counterexample = ""
			cmp.HasCounterexample = false
			feedback.Language = &cmp
		}
	case VerbosityDetailed:
		// full detail, nothing to trim
	default: // standard
		for i := range feedback.TestResults {
			if feedback.TestResults[i].Passed {
				feedback.TestResults[i].Trace = nil
			}
		}
	}
}
