package quiz

// Kind is the answer shape of a question. It is fixed for the lifetime of a quiz.
type Kind string

const (
	KindText   Kind = "text"   // free text, case-insensitive
	KindSingle Kind = "single" // one option id, exact match
	KindMulti  Kind = "multi"  // set of option ids, order irrelevant
)

type Option struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required"`
}

type Question struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"kind"`
	Prompt      string   `json:"prompt"`
	Placeholder string   `json:"placeholder,omitempty"` // hint shown in empty text inputs
	Options     []Option `json:"options,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Label resolves an option id to its human-readable label.
func (q Question) Label(optionID string) (string, bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o.Label, true
		}
	}
	return "", false
}

type Quiz struct {
	ID        string
	Title     string
	Intro     string
	PassMark  float64 // minimum score fraction, applied to the unrounded ratio
	Questions []Question
	Key       AnswerKey
}

// Question returns the question with the given id.
func (q Quiz) Question(id string) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// Label resolves an option of one of the quiz's questions.
func (q Quiz) Label(questionID, optionID string) (string, bool) {
	qq, ok := q.Question(questionID)
	if !ok {
		return "", false
	}
	return qq.Label(optionID)
}

// View is the learner-facing shape of a quiz: no answer key, no explanations.
type View struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Intro     string     `json:"intro,omitempty"`
	PassMark  float64    `json:"pass_mark"`
	Questions []Question `json:"questions"`
}

// Public hides answers from learners.
func (q Quiz) Public() View {
	qs := make([]Question, len(q.Questions))
	for i, qq := range q.Questions {
		qq.Explanation = ""
		qq.Options = append([]Option(nil), qq.Options...)
		qs[i] = qq
	}
	return View{ID: q.ID, Title: q.Title, Intro: q.Intro, PassMark: q.PassMark, Questions: qs}
}

type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
}
