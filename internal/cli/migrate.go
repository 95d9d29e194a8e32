package cli

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pg, err := config.LoadPostgres(cmd.Context())
		if err != nil {
			return err
		}

		dir, err := filepath.Abs(migrationsDir)
		if err != nil {
			return fmt.Errorf("resolve migration directory: %w", err)
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("migration directory %s does not exist", dir)
		}

		db, err := sql.Open("pgx", pg.DSN())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		logger.Info().
			Str("host", pg.Host).
			Int("port", pg.Port).
			Str("database", pg.Database).
			Str("migration_dir", dir).
			Msg("connected to database")

		return runMigration(db, dir, args[0])
	},
}

func runMigration(db *sql.DB, dir, command string) error {
	goose.SetBaseFS(nil)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		logger.Info().Msg("migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info().Msg("migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVarP(&migrationsDir, "dir", "d", "db/migrations", "directory containing migration files")
}
