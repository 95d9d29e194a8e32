package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// Service answers the trivia endpoints from store snapshots.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	cache      SnapshotCache
	selector   *Selector
	logger     zerolog.Logger
}

type ServiceOptions struct {
	// Selector defaults to a clock-seeded selector.
	Selector *Selector
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, cache SnapshotCache, logger zerolog.Logger, opts ServiceOptions) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		selector:   selector,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	cached, err := s.cache.GetCategories(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("category cache read failed")
	}
	if cached != nil {
		metrics.CacheLookups.WithLabelValues("categories", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("categories", "miss").Inc()

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, Category{ID: int(row.ID), Type: row.Type})
	}

	if err := s.cache.SetCategories(ctx, categories); err != nil {
		s.logger.Warn().Err(err).Msg("category cache write failed")
	}
	return categories, nil
}

// ListPage returns one page of all questions. An empty page is ErrNotFound.
func (s *Service) ListPage(ctx context.Context, page int) (Listing, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return Listing{}, err
	}
	current := Paginate(all, page)
	if len(current) == 0 {
		return Listing{}, ErrNotFound
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Questions: current, Total: len(all), Categories: categories}, nil
}

// Search returns every question whose text contains term. No match is not an error.
func (s *Service) Search(ctx context.Context, term string) (Listing, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return Listing{}, err
	}
	found := Search(all, term)
	return Listing{Questions: found, Total: len(found)}, nil
}

// ListByCategory returns the questions filed under categoryID.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) (Listing, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return Listing{}, err
	}
	if !ValidCategory(categoryID, len(categories)) {
		return Listing{}, ErrNotFound
	}
	all, err := s.snapshot(ctx)
	if err != nil {
		return Listing{}, err
	}
	filtered := ByCategory(all, categoryID)
	return Listing{Questions: filtered, Total: len(filtered), Categories: categories}, nil
}

// Create stores a question and returns the requested page of the updated collection.
func (s *Service) Create(ctx context.Context, req CreateRequest, page int) (Mutation, error) {
	text := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if text == "" || answer == "" {
		return Mutation{}, ErrInvalidPayload
	}
	if !fitsInt32(req.Category) || !fitsInt32(req.Difficulty) {
		return Mutation{}, fmt.Errorf("%w: category or difficulty out of range", ErrUnprocessable)
	}

	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   text,
		Answer:     answer,
		Category:   int32(req.Category),
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		s.logger.Warn().Err(err).Int("category", req.Category).Msg("insert question failed")
		return Mutation{}, fmt.Errorf("%w: insert question: %v", ErrUnprocessable, err)
	}
	metrics.QuestionMutations.WithLabelValues(metrics.OpCreate).Inc()
	s.invalidate(ctx)

	return s.mutationResult(ctx, int(row.ID), page)
}

// Delete removes a question and returns the requested page of the updated collection.
func (s *Service) Delete(ctx context.Context, id int, page int) (Mutation, error) {
	if id < 1 || !fitsInt32(id) {
		return Mutation{}, ErrNotFound
	}
	if err := s.questions.Delete(ctx, int32(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Mutation{}, ErrNotFound
		}
		s.logger.Warn().Err(err).Int("question_id", id).Msg("delete question failed")
		return Mutation{}, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	metrics.QuestionMutations.WithLabelValues(metrics.OpDelete).Inc()
	s.invalidate(ctx)

	return s.mutationResult(ctx, id, page)
}

// NextQuizQuestion picks an unasked question, or returns nil when none is left.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	q := s.selector.Next(req.Category, req.PreviousQuestions, all)
	if q == nil {
		metrics.QuizExhausted.Inc()
		return nil, nil
	}
	metrics.QuizQuestionsServed.Inc()
	return q, nil
}

func (s *Service) mutationResult(ctx context.Context, id int, page int) (Mutation, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return Mutation{}, err
	}
	return Mutation{ID: id, Questions: Paginate(all, page), Total: len(all)}, nil
}

// snapshot returns all questions ordered by id.
func (s *Service) snapshot(ctx context.Context) ([]Question, error) {
	cached, err := s.cache.GetQuestions(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question cache read failed")
	}
	if cached != nil {
		metrics.CacheLookups.WithLabelValues("questions", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("questions", "miss").Inc()

	rows, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	all := make([]Question, 0, len(rows))
	for _, row := range rows {
		all = append(all, toDomain(row))
	}

	if err := s.cache.SetQuestions(ctx, all); err != nil {
		s.logger.Warn().Err(err).Msg("question cache write failed")
	}
	return all, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateQuestions(ctx); err != nil {
		s.logger.Error().Err(err).Msg("question cache invalidation failed")
	}
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
