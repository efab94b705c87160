package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
	"github.com/mind-engage/selfcheck/internal/render"
)

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a set of answers",
		Example: `  selfcheck grade -a q1=QUIC -a q2=B -a q3=C -a q4=B -a q5=A,D,B
  selfcheck grade --answers answers.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runGrade,
	}
	cmd.Flags().StringArrayP("answer", "a", nil, "Answer as QUESTION=VALUE; multi-select values are comma-separated")
	cmd.Flags().String("answers", "", "YAML file mapping question ids to a value or a list of values")
	cmd.Flags().Bool("json", false, "Print the outcome as JSON")
	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	qz, err := resolveQuiz(cmd)
	if err != nil {
		return err
	}
	form := grading.FormValues{}
	if path, _ := cmd.Flags().GetString("answers"); path != "" {
		if err := readAnswersFile(qz, path, form); err != nil {
			return err
		}
	}
	flags, _ := cmd.Flags().GetStringArray("answer")
	if err := parseAnswerFlags(qz, flags, form); err != nil {
		return err
	}

	out := grading.Grade(qz, form)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return render.Report(cmd.OutOrStdout(), qz.Title, out)
}

// parseAnswerFlags reads QUESTION=VALUE pairs.
func parseAnswerFlags(qz quiz.Quiz, flags []string, form grading.FormValues) error {
	for _, f := range flags {
		id, value, ok := strings.Cut(f, "=")
		if !ok || id == "" {
			return fmt.Errorf("--answer %q: want QUESTION=VALUE", f)
		}
		if err := setAnswer(qz, form, id, []string{value}); err != nil {
			return fmt.Errorf("--answer %q: %w", f, err)
		}
	}
	return nil
}

// setAnswer stores the values for one question. Values of multi-select
// questions are split on commas; other values are taken verbatim.
func setAnswer(qz quiz.Quiz, form grading.FormValues, id string, values []string) error {
	q, ok := qz.Question(id)
	if !ok {
		return fmt.Errorf("unknown question %q", id)
	}
	if q.Kind != quiz.KindMulti {
		form[id] = values
		return nil
	}
	var picked []string
	for _, value := range values {
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				picked = append(picked, v)
			}
		}
	}
	form[id] = picked
	return nil
}

// answerList decodes a scalar or a sequence of scalars.
type answerList []string

func (a *answerList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*a = nil
			return nil
		}
		*a = answerList{n.Value}
		return nil
	case yaml.SequenceNode:
		var vals []string
		if err := n.Decode(&vals); err != nil {
			return err
		}
		*a = vals
		return nil
	default:
		return fmt.Errorf("line %d: answers must be a value or a list of values", n.Line)
	}
}

func readAnswersFile(qz quiz.Quiz, path string, form grading.FormValues) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	var answers map[string]answerList
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("parse answers: %w", err)
	}
	if len(answers) == 0 {
		return errors.New("parse answers: no answers in file")
	}
	for _, id := range slices.Sorted(maps.Keys(answers)) {
		if err := setAnswer(qz, form, id, answers[id]); err != nil {
			return fmt.Errorf("answers file %s: %w", path, err)
		}
	}
	return nil
}
