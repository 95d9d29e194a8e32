package cli

import (
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

var (
	importAmount     int
	importDifficulty string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import questions from the Open Trivia DB",
	Long: `Fetches multiple-choice questions from the Open Trivia DB and stores the
ones whose category matches a local category label.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch importDifficulty {
		case "", "easy", "medium", "hard":
		default:
			return fmt.Errorf("difficulty must be easy, medium or hard")
		}

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		pool, err := pgxpool.New(ctx, cfg.Postgres.PoolDSN())
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		var cache question.SnapshotCache = question.NopCache{}
		if cfg.Redis.Enabled() {
			client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
			defer client.Close()
			cache = question.NewCache(client, cfg.Redis.CacheTTL)
		}

		queries := sqlcgen.New(pool)
		svc := question.NewService(
			repository.NewQuestionRepository(queries),
			repository.NewCategoryRepository(queries),
			cache,
			logger,
			question.ServiceOptions{},
		)
		client := external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})

		result, err := question.NewImporter(svc, client, logger).Import(ctx, importAmount, importDifficulty)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "fetched %d, inserted %d, skipped %d\n", result.Fetched, result.Inserted, result.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().IntVarP(&importAmount, "amount", "n", 10, fmt.Sprintf("number of questions to fetch (max %d)", external.MaxAmount))
	importCmd.Flags().StringVar(&importDifficulty, "difficulty", "", "restrict to easy, medium or hard")
}
