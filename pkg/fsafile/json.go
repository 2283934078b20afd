// Package fsafile implements the JSON wire contracts at the correction
// pipeline's boundary (spec §6): FSA, Answer, Params, and Result. The core
// package pkg/fsa never imports encoding/json — every (de)serialization
// concern lives here. Input ε-spellings are normalized by fsa.New; this
// package writes the ε-marker back out as "ε".
package fsafile

import (
	"encoding/json"
	"fmt"

	"github.com/lambda-feedback/fsa-eval/pkg/fsa"
)

// jsonFSA is the wire representation of an FSA.
type jsonFSA struct {
	States       []string         `json:"states"`
	Alphabet     []string         `json:"alphabet"`
	Transitions  []jsonTransition `json:"transitions"`
	InitialState string           `json:"initial_state"`
	AcceptStates []string         `json:"accept_states"`
}

type jsonTransition struct {
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	Symbol    string `json:"symbol"`
}

// ParseFSA decodes an FSA from its wire JSON form. The three legal
// ε-marker spellings ("ε", "epsilon", "") pass straight through to
// fsa.New, which normalizes them internally.
func ParseFSA(data []byte) (*fsa.FSA, error) {
	var j jsonFSA
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("fsafile: decoding FSA: %w", err)
	}

	transitions := make([]fsa.Transition, 0, len(j.Transitions))
	for _, jt := range j.Transitions {
		transitions = append(transitions, fsa.Transition{
			From:   jt.FromState,
			Symbol: jt.Symbol,
			To:     jt.ToState,
		})
	}

	return fsa.New(j.States, j.Alphabet, transitions, j.InitialState, j.AcceptStates), nil
}

// ToJSON encodes an FSA to its wire JSON form. The ε-marker is always
// written as the literal "ε"; the core never hands this layer anything
// but its own normalized sentinel, which is translated back here.
func ToJSON(f *fsa.FSA, pretty bool) ([]byte, error) {
	j := jsonFSA{
		States:       f.States(),
		Alphabet:     f.Alphabet(),
		InitialState: f.Initial(),
		AcceptStates: f.Accepting(),
	}
	for _, t := range f.Transitions() {
		symbol := t.Symbol
		if symbol == fsa.Epsilon {
			symbol = "ε"
		}
		j.Transitions = append(j.Transitions, jsonTransition{
			FromState: t.From,
			ToState:   t.To,
			Symbol:    symbol,
		})
	}

	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}

// jsonTestCase mirrors one element of a "test_cases" Answer's value array.
type jsonTestCase struct {
	Input    string `json:"input"`
	Expected bool   `json:"expected"`
}

// jsonAnswer is the wire representation of the Answer tagged union.
// Value holds whichever shape Type selects: an array of jsonTestCase for
// "test_cases", or a jsonFSA for "reference_fsa". For "regex" and
// "grammar" Value is not decoded and is dropped, since the core rejects
// both routes outright.
type jsonAnswer struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// ParseAnswer decodes an Answer from its wire JSON form.
func ParseAnswer(data []byte) (fsa.Answer, error) {
	var j jsonAnswer
	if err := json.Unmarshal(data, &j); err != nil {
		return fsa.Answer{}, fmt.Errorf("fsafile: decoding Answer: %w", err)
	}

	answer := fsa.Answer{Type: fsa.AnswerType(j.Type)}

	switch answer.Type {
	case fsa.AnswerTestCases:
		var cases []jsonTestCase
		if len(j.Value) > 0 {
			if err := json.Unmarshal(j.Value, &cases); err != nil {
				return fsa.Answer{}, fmt.Errorf("fsafile: decoding test_cases value: %w", err)
			}
		}
		for _, c := range cases {
			answer.TestCases = append(answer.TestCases, fsa.TestCase{Input: c.Input, Expected: c.Expected})
		}

	case fsa.AnswerReferenceFSA:
		if len(j.Value) > 0 {
			ref, err := ParseFSA(j.Value)
			if err != nil {
				return fsa.Answer{}, fmt.Errorf("fsafile: decoding reference_fsa value: %w", err)
			}
			answer.ReferenceFSA = ref
		}

	case fsa.AnswerRegex, fsa.AnswerGrammar:
		// reserved routes, nothing further to decode; the core emits the
		// EVALUATION_ERROR diagnostic.

	default:
		return fsa.Answer{}, fmt.Errorf("fsafile: unrecognized answer type %q", j.Type)
	}

	return answer, nil
}

// jsonParams is the wire representation of Params (spec §6 table).
type jsonParams struct {
	EvaluationMode     string `json:"evaluation_mode,omitempty"`
	ExpectedType       string `json:"expected_type,omitempty"`
	CheckCompleteness  bool   `json:"check_completeness,omitempty"`
	CheckMinimality    bool   `json:"check_minimality,omitempty"`
	FeedbackVerbosity  string `json:"feedback_verbosity,omitempty"`
	HighlightErrors    *bool  `json:"highlight_errors,omitempty"`
	ShowCounterexample *bool  `json:"show_counterexample,omitempty"`
	MaxTestLength      *int   `json:"max_test_length,omitempty"`
}

// ParseParams decodes a Params configuration object, starting from
// fsa.DefaultParams() and overriding only the keys present in data.
func ParseParams(data []byte) (fsa.Params, error) {
	params := fsa.DefaultParams()
	if len(data) == 0 {
		return params, nil
	}

	var j jsonParams
	if err := json.Unmarshal(data, &j); err != nil {
		return fsa.Params{}, fmt.Errorf("fsafile: decoding Params: %w", err)
	}

	if j.EvaluationMode != "" {
		params.EvaluationMode = fsa.EvaluationMode(j.EvaluationMode)
	}
	if j.ExpectedType != "" {
		params.ExpectedType = fsa.ExpectedType(j.ExpectedType)
	}
	if j.FeedbackVerbosity != "" {
		params.FeedbackVerbosity = fsa.FeedbackVerbosity(j.FeedbackVerbosity)
	}
	params.CheckCompleteness = j.CheckCompleteness
	params.CheckMinimality = j.CheckMinimality
	if j.HighlightErrors != nil {
		params.HighlightErrors = *j.HighlightErrors
	}
	if j.ShowCounterexample != nil {
		params.ShowCounterexample = *j.ShowCounterexample
	}
	if j.MaxTestLength != nil {
		params.MaxTestLength = *j.MaxTestLength
	}

	return params, nil
}

// jsonResult is the wire representation of Result (spec §6).
type jsonResult struct {
	IsCorrect   bool            `json:"is_correct"`
	Feedback    string          `json:"feedback"`
	Score       *float64        `json:"score,omitempty"`
	FSAFeedback fsa.FSAFeedback `json:"fsa_feedback"`
}

// ResultToJSON encodes a Result to its wire JSON form.
func ResultToJSON(res fsa.Result, pretty bool) ([]byte, error) {
	j := jsonResult{
		IsCorrect:   res.IsCorrect,
		Feedback:    res.Feedback,
		Score:       res.Score,
		FSAFeedback: res.FSAFeedback,
	}
	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}
