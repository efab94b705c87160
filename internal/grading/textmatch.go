package grading

import "github.com/mind-engage/selfcheck/internal/quiz"

// textStrategy compares free text after trimming and lowercasing. The user
// answer is rendered in its normalized form.
type textStrategy struct{}

func (textStrategy) Grade(_ quiz.Question, raw RawResponse, want quiz.Answer, _ LabelResolver) Verdict {
	got := quiz.NormalizeText(raw.Text())
	v := Verdict{CorrectAnswer: want.Display}
	if v.CorrectAnswer == "" {
		v.CorrectAnswer = first(want.Values)
	}
	if got == "" {
		v.UserAnswer = NoAnswerEntered
		return v
	}
	v.Answered = true
	v.UserAnswer = got
	v.Correct = got == quiz.NormalizeText(first(want.Values))
	return v
}
