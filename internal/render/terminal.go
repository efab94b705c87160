package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
)

var (
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")
	colorPrimary = lipgloss.Color("#8B5CF6")
)

// termStyles are bound to a renderer so color is only emitted on terminals.
type termStyles struct {
	title, pass, fail, dim, heading, indent lipgloss.Style
}

func newTermStyles(w io.Writer) termStyles {
	r := lipgloss.NewRenderer(w)
	return termStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		pass:    r.NewStyle().Bold(true).Foreground(colorSuccess),
		fail:    r.NewStyle().Bold(true).Foreground(colorError),
		dim:     r.NewStyle().Foreground(colorDim),
		heading: r.NewStyle().Bold(true),
		indent:  r.NewStyle().PaddingLeft(2),
	}
}

// Report writes a terminal rendering of an outcome.
func Report(w io.Writer, title string, out grading.Outcome) error {
	st := newTermStyles(w)

	verdict := st.fail.Render("✗ " + FailMessage)
	if out.Passed {
		verdict = st.pass.Render("✓ " + PassMessage)
	}
	blocks := []string{
		st.title.Render(title),
		verdict,
		fmt.Sprintf("Score: %s (%s) | Pass mark: %s", out.ScoreLabel(), out.PercentLabel(), out.PassMarkLabel()),
	}
	for _, r := range out.Results {
		badge := st.fail.Render("Incorrect")
		if r.Correct {
			badge = st.pass.Render("Correct")
		}
		lines := []string{
			"Your answer: " + r.UserAnswer,
			"Correct answer: " + r.CorrectAnswer,
		}
		if r.Explanation != "" {
			lines = append(lines, st.dim.Render(r.Explanation))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			"",
			st.heading.Render(fmt.Sprintf("Question %d", r.Number))+"  "+badge,
			st.indent.Render(strings.Join(lines, "\n")),
		))
	}
	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n")
	return err
}

// Questions writes the quiz as a learner would see it, without answers.
func Questions(w io.Writer, v quiz.View) error {
	st := newTermStyles(w)

	blocks := []string{st.title.Render(v.Title)}
	if v.Intro != "" {
		blocks = append(blocks, st.dim.Render(v.Intro))
	}
	for i, q := range v.Questions {
		var lines []string
		switch q.Kind {
		case quiz.KindText:
			lines = append(lines, st.dim.Render("(free text) --answer "+q.ID+"=..."))
		case quiz.KindMulti:
			lines = append(lines, st.dim.Render("(select all that apply) --answer "+q.ID+"=A,B"))
		default:
			lines = append(lines, st.dim.Render("(select one) --answer "+q.ID+"=A"))
		}
		for _, o := range q.Options {
			lines = append(lines, "["+o.ID+"] "+o.Label)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			"",
			st.heading.Render(fmt.Sprintf("Question %d (%s)", i+1, q.ID))+" "+q.Prompt,
			st.indent.Render(strings.Join(lines, "\n")),
		))
	}
	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n")
	return err
}
