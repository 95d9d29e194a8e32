package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

type questionSource interface {
	Fetch(ctx context.Context, amount int, difficulty string) ([]external.OpenTDBQuestion, error)
}

// ImportResult summarises one import run.
type ImportResult struct {
	Fetched  int
	Inserted int
	Skipped  int
}

// Importer copies questions from an external source into the store, filing
// each under the local category whose label matches.
type Importer struct {
	svc    *Service
	source questionSource
	logger zerolog.Logger
}

func NewImporter(svc *Service, source questionSource, logger zerolog.Logger) *Importer {
	return &Importer{
		svc:    svc,
		source: source,
		logger: logger.With().Str("component", "question_importer").Logger(),
	}
}

func (im *Importer) Import(ctx context.Context, amount int, difficulty string) (ImportResult, error) {
	categories, err := im.svc.Categories(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	byLabel := make(map[string]int, len(categories))
	for _, c := range categories {
		byLabel[strings.ToLower(c.Type)] = c.ID
	}

	fetched, err := im.source.Fetch(ctx, amount, difficulty)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch questions: %w", err)
	}

	result := ImportResult{Fetched: len(fetched)}
	for _, q := range fetched {
		label := external.CategoryLabel(q.Category)
		categoryID, ok := byLabel[strings.ToLower(label)]
		if !ok || strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
			im.logger.Debug().Str("category", q.Category).Msg("skipping question without local category")
			result.Skipped++
			continue
		}

		_, err := im.svc.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
			Question:   strings.TrimSpace(q.Question),
			Answer:     strings.TrimSpace(q.CorrectAnswer),
			Category:   int32(categoryID),
			Difficulty: int32(external.DifficultyScore(q.Difficulty)),
		})
		if err != nil {
			im.svc.invalidate(ctx)
			return result, fmt.Errorf("insert imported question: %w", err)
		}
		result.Inserted++
	}

	if result.Inserted > 0 {
		metrics.QuestionMutations.WithLabelValues(metrics.OpImport).Add(float64(result.Inserted))
		im.svc.invalidate(ctx)
	}

	im.logger.Info().
		Int("fetched", result.Fetched).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Msg("import finished")
	return result, nil
}
