package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestQuestionRepository_List(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	expect := []sqlcgen.Question{questionRow(1, 3), questionRow(2, 1)}
	store.On("ListQuestions", mock.Anything).Return(expect, nil)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Insert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := sqlcgen.InsertQuestionParams{
		Question:   "What is the largest lake in Africa?",
		Answer:     "Lake Victoria",
		Category:   3,
		Difficulty: 2,
	}
	expect := sqlcgen.Question{ID: 24, Question: params.Question, Answer: params.Answer, Category: 3, Difficulty: 2}
	store.On("InsertQuestion", mock.Anything, params).Return(expect, nil)

	got, err := repo.Insert(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Delete(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, int32(5)).Return(int64(1), nil)
	store.On("DeleteQuestion", mock.Anything, int32(6)).Return(int64(0), nil)

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6), ErrNotFound)
	store.AssertExpectations(t)
}

func TestQuestionRepository_DeleteWrapsStoreError(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	boom := errors.New("connection reset")
	store.On("DeleteQuestion", mock.Anything, int32(7)).Return(int64(0), boom)

	err := repo.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
