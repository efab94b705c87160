package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
	"github.com/mind-engage/selfcheck/internal/render"
)

// GET /
// Blank form; also where a reset lands.
func QuizPageHandler(cat *quiz.Catalog, quizID string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qz, err := cat.Get(quizID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writePage(w, r, log, qz, nil, nil)
	}
}

// POST /quiz
// Grades the submitted form and renders it again with results below.
func SubmitQuizHandler(cat *quiz.Catalog, quizID string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qz, err := cat.Get(quizID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			log.WarnContext(r.Context(), "bad quiz form", "quiz_id", quizID, "err", err)
			http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
			return
		}
		form := grading.FormValues(r.PostForm)
		out := grading.Grade(qz, form)
		logOutcome(r, log, out)
		writePage(w, r, log, qz, form, &out)
	}
}

// POST /quiz/reset
// Nothing is kept between submissions, so a reset only returns to the blank form.
func ResetQuizHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func writePage(w http.ResponseWriter, r *http.Request, log *slog.Logger, qz quiz.Quiz, form grading.FormValues, out *grading.Outcome) {
	var buf bytes.Buffer
	if err := render.Page(&buf, qz.Public(), form, out); err != nil {
		log.ErrorContext(r.Context(), "render quiz page", "quiz_id", qz.ID, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
