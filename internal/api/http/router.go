package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mind-engage/selfcheck/internal/quiz"
	"github.com/mind-engage/selfcheck/internal/render"
)

type RouterConfig struct {
	Catalog     *quiz.Catalog
	PageQuizID  string // quiz rendered at /
	CORSOrigins []string
	Log         *slog.Logger
}

func NewRouter(c RouterConfig) http.Handler {
	log := c.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", QuizPageHandler(c.Catalog, c.PageQuizID, log))
	r.Post("/quiz", SubmitQuizHandler(c.Catalog, c.PageQuizID, log))
	r.Post("/quiz/reset", ResetQuizHandler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(render.Static()))))

	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins: c.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
		ar.Get("/quizzes", ListQuizzesHandler(c.Catalog))
		ar.Get("/quizzes/{quizID}", GetQuizHandler(c.Catalog))
		ar.Post("/quizzes/{quizID}/grade", GradeQuizHandler(c.Catalog, log))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
