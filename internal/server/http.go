package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
// redis may be nil when the snapshot cache is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redis *redis.Client, questions *question.HTTPHandlers) *http.Server {
	mux := NewMux(cfg, logger, func(ctx context.Context) error {
		return pingDependencies(ctx, pool, redis)
	}, questions)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

// NewMux builds the routed and middleware-wrapped handler.
func NewMux(cfg *config.App, logger zerolog.Logger, ready func(context.Context) error, questions *question.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				logger.Error().Err(err).Msg("dependency ping failed")
				httperrors.RespondErrorMessage(w, http.StatusServiceUnavailable, "Service Unavailable")
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", questions.Categories)
	mux.HandleFunc("/categories/{id}/questions", questions.CategoryQuestions)
	mux.HandleFunc("/questions", questions.Questions)
	mux.HandleFunc("/questions/{id}", questions.Question)
	mux.HandleFunc("/quizzes", questions.Quizzes)
	mux.HandleFunc("/", questions.NotFound)

	return Chain(mux,
		Recover(logger),
		RequestLogger(logger),
		Metrics(mux),
		CORS(cfg.CORS),
	)
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redis *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if redis != nil {
		if err := redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
