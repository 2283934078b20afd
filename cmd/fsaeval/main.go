// Command fsaeval is a CLI front end over the FSA correction pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lambda-feedback/fsa-eval/pkg/fsa"
	"github.com/lambda-feedback/fsa-eval/pkg/fsafile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fsaeval: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fsaeval",
		Short:         "Validate, transform, and grade finite-state automata",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newValidateCmd(),
		newSimulateCmd(),
		newDeterminizeCmd(),
		newMinimizeCmd(),
		newEquivalenceCmd(),
		newEvaluateCmd(),
	)
	return root
}

func loadFSA(path string) (*fsa.FSA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := fsafile.ParseFSA(data)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <fsa.json>",
		Short: "Report structural well-formedness errors for an FSA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFSA(args[0])
			if err != nil {
				return err
			}
			errs := fsa.Validate(f)
			if len(errs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no structural errors")
				return nil
			}
			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", e.Severity, e.Code, e.Message)
			}
			return nil
		},
	}
}

func newSimulateCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "simulate <fsa.json> <input>",
		Short: "Run a single input string through an FSA",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFSA(args[0])
			if err != nil {
				return err
			}
			input := args[1]
			if trace {
				for _, step := range fsa.TraceString(f, input) {
					fmt.Fprintf(cmd.OutOrStdout(), "%q -> %v\n", step.Symbol, step.States)
				}
			}
			accepted := fsa.AcceptsString(f, input)
			fmt.Fprintf(cmd.OutOrStdout(), "accepts(%q) = %v\n", input, accepted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the configuration-set trace before the verdict")
	return cmd
}

func newDeterminizeCmd() *cobra.Command {
	var output string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "determinize <fsa.json>",
		Short: "Run subset construction, producing an equivalent DFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFSA(args[0])
			if err != nil {
				return err
			}
			det, err := fsa.Determinize(f)
			if err != nil {
				return err
			}
			return writeFSA(cmd, det, output, pretty)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "pretty-print the JSON output")
	return cmd
}

func newMinimizeCmd() *cobra.Command {
	var output string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "minimize <fsa.json>",
		Short: "Determinize if needed, then minimize via Hopcroft partition refinement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFSA(args[0])
			if err != nil {
				return err
			}
			min, err := fsa.Minimize(f)
			if err != nil {
				return err
			}
			return writeFSA(cmd, min, output, pretty)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "pretty-print the JSON output")
	return cmd
}

func writeFSA(cmd *cobra.Command, f *fsa.FSA, output string, pretty bool) error {
	data, err := fsafile.ToJSON(f, pretty)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return os.WriteFile(output, data, 0644)
}

func newEquivalenceCmd() *cobra.Command {
	var maxLength int
	cmd := &cobra.Command{
		Use:   "equivalence <fsa-a.json> <fsa-b.json>",
		Short: "Decide whether two FSAs accept the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadFSA(args[0])
			if err != nil {
				return err
			}
			b, err := loadFSA(args[1])
			if err != nil {
				return err
			}
			cmp, diags, err := fsa.SameLanguage(a, b, maxLength)
			if err != nil {
				return err
			}
			if cmp.AreEquivalent {
				fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
			if cmp.HasCounterexample {
				fmt.Fprintf(cmd.OutOrStdout(), "counterexample: %q (%s)\n", cmp.Counterexample, cmp.CounterexampleType)
			}
			for _, d := range diags {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", d.Severity, d.Code, d.Message)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLength, "max-length", 5, "maximum string length for bounded enumeration")
	return cmd
}

func newEvaluateCmd() *cobra.Command {
	var paramsPath string
	cmd := &cobra.Command{
		Use:   "evaluate <student.json> <answer.json>",
		Short: "Run the full correction pipeline against a student FSA",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := loadFSA(args[0])
			if err != nil {
				return err
			}

			answerData, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}
			answer, err := fsafile.ParseAnswer(answerData)
			if err != nil {
				return err
			}

			params := fsa.DefaultParams()
			if paramsPath != "" {
				paramsData, err := os.ReadFile(paramsPath)
				if err != nil {
					return fmt.Errorf("reading %s: %w", paramsPath, err)
				}
				params, err = fsafile.ParseParams(paramsData)
				if err != nil {
					return err
				}
			}

			result := fsa.Evaluate(student, answer, params)
			out, err := fsafile.ResultToJSON(result, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&paramsPath, "params", "", "path to a Params JSON file (defaults to fsa.DefaultParams())")
	return cmd
}
