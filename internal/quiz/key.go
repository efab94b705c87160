package quiz

import "strings"

// Answer is the correct value for one question.
// Text keys hold one normalized value, single-choice keys one option id and
// multi-choice keys the option ids in declared order.
type Answer struct {
	Values  []string `json:"values" yaml:"values"`
	Display string   `json:"display,omitempty" yaml:"display,omitempty"` // overrides the rendered correct answer
}

// AnswerKey maps question ids to their answers. The zero value is an empty key.
// It is immutable: constructors and accessors copy.
type AnswerKey struct {
	answers map[string]Answer
}

func NewAnswerKey(answers map[string]Answer) AnswerKey {
	m := make(map[string]Answer, len(answers))
	for id, a := range answers {
		m[id] = a.clone()
	}
	return AnswerKey{answers: m}
}

func (k AnswerKey) Lookup(questionID string) (Answer, bool) {
	a, ok := k.answers[questionID]
	if !ok {
		return Answer{}, false
	}
	return a.clone(), true
}

func (k AnswerKey) Len() int { return len(k.answers) }

func (a Answer) clone() Answer {
	a.Values = append([]string(nil), a.Values...)
	return a
}

// NormalizeText trims surrounding whitespace and lowercases.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
