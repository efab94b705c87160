package grading

import (
	"strings"

	"github.com/mind-engage/selfcheck/internal/quiz"
)

// Placeholders rendered instead of an empty user answer.
const (
	NoAnswerEntered   = "(no answer entered)"
	NoOptionSelected  = "(no option selected)"
	NoOptionsSelected = "(no options selected)"
)

// LabelSeparator joins the labels of a multi-choice answer.
const LabelSeparator = "; "

// QuestionResult is the verdict for one question.
type QuestionResult struct {
	Number        int       `json:"number"` // 1-based position in the quiz
	QuestionID    string    `json:"question_id"`
	Kind          quiz.Kind `json:"kind"`
	Correct       bool      `json:"correct"`
	Answered      bool      `json:"answered"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
}

// Verdict is what a Strategy decides about one response.
type Verdict struct {
	Correct       bool
	Answered      bool
	UserAnswer    string
	CorrectAnswer string
}

// Strategy grades one question shape. Implementations must be total: every
// response, including an absent one, yields a Verdict.
type Strategy interface {
	Grade(q quiz.Question, raw RawResponse, want quiz.Answer, labels LabelResolver) Verdict
}

// Grader routes each question to the Strategy for its kind and checks it
// against a fixed answer key.
type Grader struct {
	key        quiz.AnswerKey
	labels     LabelResolver
	strategies map[quiz.Kind]Strategy
}

type Option func(*Grader)

// WithLabels sets the resolver used to render option ids. Without one, ids
// are rendered verbatim.
func WithLabels(l LabelResolver) Option { return func(g *Grader) { g.labels = l } }

// WithStrategy replaces or adds the strategy for a kind.
func WithStrategy(k quiz.Kind, s Strategy) Option {
	return func(g *Grader) { g.strategies[k] = s }
}

// New installs the built-in strategies.
func New(key quiz.AnswerKey, opts ...Option) *Grader {
	g := &Grader{
		key:    key,
		labels: noLabels{},
		strategies: map[quiz.Kind]Strategy{
			quiz.KindText:   textStrategy{},
			quiz.KindSingle: singleStrategy{},
			quiz.KindMulti:  multiStrategy{},
		},
	}
	for _, o := range opts {
		o(g)
	}
	if g.labels == nil {
		g.labels = noLabels{}
	}
	return g
}

// ForQuiz grades against the quiz's own key and option labels.
func ForQuiz(q quiz.Quiz) *Grader {
	return New(q.Key, WithLabels(q))
}

// Evaluate grades a single response. number is the 1-based position shown
// to the learner.
func (g *Grader) Evaluate(number int, q quiz.Question, raw RawResponse) QuestionResult {
	want, _ := g.key.Lookup(q.ID)
	s, ok := g.strategies[q.Kind]
	if !ok {
		s = fallbackStrategy{}
	}
	v := s.Grade(q, raw, want, g.labels)
	return QuestionResult{
		Number:        number,
		QuestionID:    q.ID,
		Kind:          q.Kind,
		Correct:       v.Correct,
		Answered:      v.Answered,
		UserAnswer:    v.UserAnswer,
		CorrectAnswer: v.CorrectAnswer,
		Explanation:   q.Explanation,
	}
}

// EvaluateAll grades questions in order, reading each response from src.
// A nil src behaves as an empty form.
func (g *Grader) EvaluateAll(questions []quiz.Question, src ResponseSource) []QuestionResult {
	if src == nil {
		src = FormValues(nil)
	}
	out := make([]QuestionResult, 0, len(questions))
	for i, q := range questions {
		out = append(out, g.Evaluate(i+1, q, src.Response(q.ID)))
	}
	return out
}

// Grade evaluates a whole submission of qz and aggregates the outcome.
func Grade(qz quiz.Quiz, src ResponseSource) Outcome {
	results := ForQuiz(qz).EvaluateAll(qz.Questions, src)
	out := Aggregate(results, len(qz.Questions), qz.PassMark)
	out.QuizID = qz.ID
	return out
}

// --- Strategies ---

type singleStrategy struct{}

func (singleStrategy) Grade(q quiz.Question, raw RawResponse, want quiz.Answer, labels LabelResolver) Verdict {
	key := first(want.Values)
	v := Verdict{CorrectAnswer: want.Display}
	if v.CorrectAnswer == "" {
		v.CorrectAnswer = resolve(labels, q.ID, key)
	}
	picked := raw.Choice()
	if picked == "" {
		v.UserAnswer = NoOptionSelected
		return v
	}
	v.Answered = true
	v.UserAnswer = resolve(labels, q.ID, picked)
	v.Correct = picked == key
	return v
}

type multiStrategy struct{}

func (multiStrategy) Grade(q quiz.Question, raw RawResponse, want quiz.Answer, labels LabelResolver) Verdict {
	picked := raw.Choices()
	v := Verdict{
		Correct:       sameMembers(picked, want.Values),
		Answered:      len(picked) > 0,
		UserAnswer:    resolveAll(labels, q.ID, picked),
		CorrectAnswer: want.Display,
	}
	if !v.Answered {
		v.UserAnswer = NoOptionsSelected
	}
	if v.CorrectAnswer == "" {
		v.CorrectAnswer = resolveAll(labels, q.ID, want.Values)
	}
	return v
}

// fallbackStrategy handles kinds without a strategy: never correct.
type fallbackStrategy struct{}

func (fallbackStrategy) Grade(_ quiz.Question, raw RawResponse, want quiz.Answer, _ LabelResolver) Verdict {
	v := Verdict{
		UserAnswer:    strings.Join(raw.Choices(), LabelSeparator),
		CorrectAnswer: want.Display,
	}
	v.Answered = v.UserAnswer != ""
	if !v.Answered {
		v.UserAnswer = NoAnswerEntered
	}
	if v.CorrectAnswer == "" {
		v.CorrectAnswer = strings.Join(want.Values, LabelSeparator)
	}
	return v
}

// helpers

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func resolve(labels LabelResolver, questionID, optionID string) string {
	if l, ok := labels.Label(questionID, optionID); ok && l != "" {
		return l
	}
	return optionID
}

// resolveAll keeps the given order.
func resolveAll(labels LabelResolver, questionID string, ids []string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, resolve(labels, questionID, id))
	}
	return strings.Join(out, LabelSeparator)
}

// sameMembers compares as multisets: same cardinality, same members, any order.
func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
