// config.go
//
// Environment-driven configuration. A .env file in the working directory is
// loaded first (best effort), then each key falls back to its default.
//
//   WORDS_FILE       dictionary path                      (words.txt)
//   OPENING_WORD     first suggestion                      (rales)
//   LOG_LEVEL        zerolog level                         (info)
//   PORT             serve mode listen port                (5175)
//   SOLVER_WORKERS   goroutines scoring guesses            (NumCPU)
//   REQUEST_TIMEOUT  serve mode per-request bound          (60s)
//   EVAL_LIMIT       evaluate mode target count, 0 = all   (0)
//   CLIENT_ORIGIN    serve mode CORS origin                (http://localhost:5173)

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

type config struct {
	WordsFile      string
	Opening        string
	LogLevel       string
	Port           string
	Workers        int
	RequestTimeout time.Duration
	EvalLimit      int
	ClientOrigin   string
}

func loadConfig() (config, error) {
	cfg := config{
		WordsFile:    getEnv("WORDS_FILE", "words.txt"),
		Opening:      getEnv("OPENING_WORD", session.DefaultOpening),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	var err error
	if cfg.Workers, err = strconv.Atoi(getEnv("SOLVER_WORKERS", strconv.Itoa(runtime.NumCPU()))); err != nil {
		return cfg, fmt.Errorf("SOLVER_WORKERS: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "60s")); err != nil {
		return cfg, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if cfg.EvalLimit, err = strconv.Atoi(getEnv("EVAL_LIMIT", "0")); err != nil {
		return cfg, fmt.Errorf("EVAL_LIMIT: %w", err)
	}
	if !validWord(cfg.Opening) {
		return cfg, fmt.Errorf("OPENING_WORD %q: want %d lowercase letters", cfg.Opening, game.WordLen)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func validWord(w string) bool {
	if len(w) != game.WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
