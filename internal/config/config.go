// Package config reads quizdeck settings from QUIZDECK_* environment
// variables. Command-line flags are applied on top by the cmd package.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

const envPrefix = "QUIZDECK_"

type Config struct {
	// Source is where question sets come from: an http(s) base URL, a
	// directory, or empty for the embedded sample sets.
	Source string

	LogLevel string
	LogFile  string

	// HTTPAddr and CORSOrigins configure `quizdeck serve`.
	HTTPAddr    string
	CORSOrigins []string

	Quiz quiz.Config
}

func FromEnv() Config {
	q := quiz.DefaultConfig()
	q.TotalBudget = envInt("TOTAL_SECONDS", q.TotalBudget)
	q.QuestionBudget = envInt("QUESTION_SECONDS", q.QuestionBudget)

	return Config{
		Source:      envOr("SOURCE", ""),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFile:     envOr("LOG_FILE", ""),
		HTTPAddr:    envOr("ADDR", ":8080"),
		CORSOrigins: csvOr("CORS_ORIGINS", "*"),
		Quiz:        q,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(envPrefix + k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(envOr(k, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
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
