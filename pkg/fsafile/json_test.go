package fsafile

import (
	"strings"
	"testing"

	"github.com/lambda-feedback/fsa-eval/pkg/fsa"
)

func TestParseFSANormalizesEpsilonSpellings(t *testing.T) {
	for _, spelling := range []string{"ε", "epsilon", ""} {
		data := []byte(`{
			"states": ["q0", "q1"],
			"alphabet": ["a"],
			"transitions": [{"from_state": "q0", "to_state": "q1", "symbol": "` + spelling + `"}],
			"initial_state": "q0",
			"accept_states": ["q1"]
		}`)
		f, err := ParseFSA(data)
		if err != nil {
			t.Fatalf("spelling %q: unexpected error: %v", spelling, err)
		}
		if !f.IsAccepting("q1") {
			t.Fatalf("spelling %q: expected q1 to be accepting", spelling)
		}
		edges := f.EpsilonEdges("q0")
		if len(edges) != 1 || edges[0] != "q1" {
			t.Fatalf("spelling %q: expected a normalized epsilon edge to q1, got %v", spelling, edges)
		}
	}
}

func TestToJSONWritesCanonicalEpsilonMarker(t *testing.T) {
	f := fsa.New([]string{"q0", "q1"}, []string{"a"}, []fsa.Transition{{From: "q0", Symbol: "", To: "q1"}}, "q0", []string{"q1"})
	data, err := ToJSON(f, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"symbol":"ε"`) {
		t.Fatalf("expected canonical ε marker in output, got %s", data)
	}
}

func TestParseAnswerTestCases(t *testing.T) {
	data := []byte(`{"type": "test_cases", "value": [{"input": "ab", "expected": true}, {"input": "ba", "expected": false}]}`)
	answer, err := ParseAnswer(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Type != fsa.AnswerTestCases {
		t.Fatalf("expected test_cases type, got %s", answer.Type)
	}
	if len(answer.TestCases) != 2 {
		t.Fatalf("expected 2 test cases, got %d", len(answer.TestCases))
	}
}

func TestParseAnswerReferenceFSA(t *testing.T) {
	data := []byte(`{
		"type": "reference_fsa",
		"value": {
			"states": ["r0"], "alphabet": ["a"], "transitions": [],
			"initial_state": "r0", "accept_states": ["r0"]
		}
	}`)
	answer, err := ParseAnswer(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.ReferenceFSA == nil {
		t.Fatal("expected a non-nil reference FSA")
	}
	if !answer.ReferenceFSA.IsAccepting("r0") {
		t.Fatal("expected r0 to be accepting")
	}
}

func TestParseAnswerReservedRouteDecodesWithoutError(t *testing.T) {
	data := []byte(`{"type": "regex", "value": "a(a|b)*"}`)
	answer, err := ParseAnswer(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Type != fsa.AnswerRegex {
		t.Fatalf("expected regex type, got %s", answer.Type)
	}
}

func TestParseParamsOverridesDefaultsOnlyForPresentKeys(t *testing.T) {
	data := []byte(`{"evaluation_mode": "partial", "check_completeness": true}`)
	params, err := ParseParams(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.EvaluationMode != fsa.ModePartial {
		t.Fatalf("expected partial mode, got %s", params.EvaluationMode)
	}
	if !params.CheckCompleteness {
		t.Fatal("expected check_completeness to be true")
	}
	if params.ExpectedType != fsa.ExpectAny {
		t.Fatalf("expected untouched fields to keep their default, got expected_type=%s", params.ExpectedType)
	}
	if params.MaxTestLength != 5 {
		t.Fatalf("expected default max_test_length=5, got %d", params.MaxTestLength)
	}
}

func TestResultToJSONOmitsScoreWhenNil(t *testing.T) {
	res := fsa.Result{IsCorrect: true, Feedback: "ok"}
	data, err := ResultToJSON(res, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), `"score"`) {
		t.Fatalf("expected no score field when Score is nil, got %s", data)
	}
}
