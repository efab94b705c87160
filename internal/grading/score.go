package grading

import (
	"fmt"
	"math"
)

// Outcome aggregates the results of one submission.
type Outcome struct {
	QuizID   string           `json:"quiz_id,omitempty"`
	Score    int              `json:"score"`
	Total    int              `json:"total"`
	Fraction float64          `json:"fraction"` // unrounded score/total
	Percent  int              `json:"percent"`  // rounded half up, display only
	PassMark float64          `json:"pass_mark"`
	Passed   bool             `json:"passed"`
	Results  []QuestionResult `json:"results"`
}

// Aggregate counts correct results and compares the unrounded fraction with
// passMark. A non-positive total never passes.
func Aggregate(results []QuestionResult, total int, passMark float64) Outcome {
	out := Outcome{
		Total:    total,
		PassMark: passMark,
		Results:  append([]QuestionResult(nil), results...),
	}
	for _, r := range results {
		if r.Correct {
			out.Score++
		}
	}
	if total <= 0 {
		return out
	}
	out.Fraction = float64(out.Score) / float64(total)
	// integer half-up rounding of score*100/total
	out.Percent = (out.Score*200 + total) / (2 * total)
	out.Passed = out.Fraction >= passMark
	return out
}

// ScoreLabel renders "4 / 5".
func (o Outcome) ScoreLabel() string { return fmt.Sprintf("%d / %d", o.Score, o.Total) }

// PercentLabel renders "80%".
func (o Outcome) PercentLabel() string { return fmt.Sprintf("%d%%", o.Percent) }

// PassMarkLabel renders the pass mark as a whole percentage.
func (o Outcome) PassMarkLabel() string { return FormatPassMark(o.PassMark) }

// FormatPassMark renders a pass mark fraction as a whole percentage, half away from zero.
func FormatPassMark(passMark float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(passMark*100)))
}
