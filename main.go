package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// usage: go-solver [play|serve|evaluate]
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes one mode and returns the process exit code.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	_ = godotenv.Load()

	mode := "play"
	if len(args) > 0 {
		mode = args[0]
	}

	cfg, err := loadConfig()
	setupLogging(cfg.LogLevel, mode)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.WordsFile).Msg("failed to load dictionary")
		return 1
	}
	log.Info().Int("words", len(dict)).Str("file", cfg.WordsFile).Msg("dictionary loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch mode {
	case "play":
		if err := runPlay(ctx, stdin, stdout, dict, cfg, solver.NewBar(os.Stderr, "scoring")); err != nil {
			log.Error().Err(err).Msg("session aborted")
			return 1
		}

	case "serve":
		srv := httpserver.New(store.NewMemoryStore(), httpserver.Config{
			Dict:    dict,
			Opening: cfg.Opening,
			Workers: cfg.Workers,
			Timeout: cfg.RequestTimeout,
			Origin:  cfg.ClientOrigin,
		})
		log.Info().Str("port", cfg.Port).Str("origin", cfg.ClientOrigin).Msg("starting go-solver")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("server exited")
			return 1
		}

	case "evaluate":
		res, err := runEvaluate(ctx, dict, cfg, solver.NewBar(os.Stderr, "evaluating"))
		if err != nil {
			log.Error().Err(err).Msg("evaluation aborted")
			return 1
		}
		log.Info().
			Int("games", res.Games).
			Float64("avgTurns", res.AvgTurns()).
			Int("withinSix", res.WithinSix).
			Int("unsolved", res.Unsolved).
			Msg("evaluation complete")

	default:
		log.Error().Str("mode", mode).Msg("unknown mode, want play, serve or evaluate")
		return 1
	}
	return 0
}

// setupLogging applies the level and, outside serve mode, switches to the
// human-readable console writer on stderr so stdout stays the dialogue.
func setupLogging(level, mode string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if mode != "serve" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
