package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	QuizFile string // optional YAML definition replacing the built-in quiz

	LogLevel  string // debug|info|warn|error
	LogFormat string // text|json

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	ShutdownTimeout time.Duration
}

// Load reads a .env file when one exists, then the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	defFormat := "text"
	if mode == ModeOnline {
		defFormat = "json"
	}
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		QuizFile:           os.Getenv("QUIZ_FILE"),
		LogLevel:           strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(envOr("LOG_FORMAT", defFormat)),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://selfcheck.mindengage.ai"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:8080"),
		ShutdownTimeout:    durationOr("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// CORSOrigins returns the allow-list for the current mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func durationOr(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
