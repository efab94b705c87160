package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mind-engage/selfcheck/internal/grading"
	"github.com/mind-engage/selfcheck/internal/quiz"
	"github.com/mind-engage/selfcheck/internal/render"
)

const maxBodyBytes = 64 << 10

// answerValue accepts a string, an array of strings or null.
type answerValue []string

func (a *answerValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*a = answerValue{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("answers must be a string or an array of strings")
	}
	*a = many
	return nil
}

type gradeReq struct {
	Responses map[string]answerValue `json:"responses"` // question_id -> submitted values
}

type gradeResp struct {
	grading.Outcome
	Verdict     string `json:"verdict"`
	ScoreLabel  string `json:"score_label"`
	PercentText string `json:"percent_label"`
}

// GET /api/quizzes
func ListQuizzesHandler(cat *quiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cat.List())
	}
}

// GET /api/quizzes/{quizID}
func GetQuizHandler(cat *quiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "quizID"))
		v, err := cat.Public(id)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /api/quizzes/{quizID}/grade
func GradeQuizHandler(cat *quiz.Catalog, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "quizID"))
		qz, err := cat.Get(id)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		var req gradeReq
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			log.WarnContext(r.Context(), "bad grade request", "quiz_id", id, "err", err, "request_id", middleware.GetReqID(r.Context()))
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		form := make(grading.FormValues, len(req.Responses))
		for qid, v := range req.Responses {
			form[qid] = v
		}
		out := grading.Grade(qz, form)
		logOutcome(r, log, out)
		writeJSON(w, http.StatusOK, gradeResp{
			Outcome:     out,
			Verdict:     render.Verdict(out),
			ScoreLabel:  out.ScoreLabel(),
			PercentText: out.PercentLabel(),
		})
	}
}

func logOutcome(r *http.Request, log *slog.Logger, out grading.Outcome) {
	log.InfoContext(r.Context(), "quiz graded",
		"quiz_id", out.QuizID,
		"score", out.Score,
		"total", out.Total,
		"passed", out.Passed,
		"request_id", middleware.GetReqID(r.Context()),
	)
}

func statusFor(err error) int {
	if errors.Is(err, quiz.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
