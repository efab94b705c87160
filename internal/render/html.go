package render

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"slices"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
)

// Overall verdict messages.
const (
	PassMessage = "You passed the quiz!"
	FailMessage = "You did not reach the pass mark yet."
)

//go:embed templates/*.html static/quiz.css
var assets embed.FS

var templates = template.Must(template.New("quiz").Funcs(template.FuncMap{
	"passMessage":  func() string { return PassMessage },
	"failMessage":  func() string { return FailMessage },
	"verdictClass": verdictClass,
	"verdictText":  verdictText,
}).ParseFS(assets, "templates/*.html"))

// Static serves the stylesheet under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type pageData struct {
	Title     string
	Intro     string
	Questions []questionView
	Outcome   *grading.Outcome
}

type questionView struct {
	Number      int
	ID          string
	Kind        quiz.Kind
	Prompt      string
	Placeholder string
	Value       string // text questions: the submitted text
	Options     []optionView
}

type optionView struct {
	ID      string
	Label   string
	Checked bool
}

// Page renders the quiz form. form refills the learner's inputs; a nil
// outcome renders the blank state with the results container hidden.
func Page(w io.Writer, v quiz.View, form grading.FormValues, out *grading.Outcome) error {
	data := pageData{Title: v.Title, Intro: v.Intro, Outcome: out}
	for i, q := range v.Questions {
		raw := form.Response(q.ID)
		qv := questionView{
			Number:      i + 1,
			ID:          q.ID,
			Kind:        q.Kind,
			Prompt:      q.Prompt,
			Placeholder: q.Placeholder,
		}
		if q.Kind == quiz.KindText {
			qv.Value = raw.Text()
		}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, optionView{
				ID:      o.ID,
				Label:   o.Label,
				Checked: slices.Contains(raw, o.ID),
			})
		}
		data.Questions = append(data.Questions, qv)
	}
	return templates.ExecuteTemplate(w, "page", data)
}

// writeResults renders only the results container contents.
func writeResults(w io.Writer, out grading.Outcome) error {
	return templates.ExecuteTemplate(w, "results", out)
}

// Verdict is the overall message without decoration.
func Verdict(out grading.Outcome) string {
	if out.Passed {
		return PassMessage
	}
	return FailMessage
}

func verdictClass(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

func verdictText(correct bool) string {
	if correct {
		return "Correct"
	}
	return "Incorrect"
}
