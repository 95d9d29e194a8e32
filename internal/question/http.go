package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the trivia HTTP handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Categories handles GET /categories
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if len(categories) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       CategoryMap(categories),
		"total_categories": len(categories),
	})
}

// Questions handles GET /questions?page=N and POST /questions (create or search).
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.postQuestions(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// Question handles DELETE /questions/{id}
func (h *HTTPHandlers) Question(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.Delete(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"deleted_question": result.ID,
		"questions":        result.Questions,
		"total_questions":  result.Total,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	listing, err := h.svc.ListByCategory(r.Context(), categoryID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"current_category": categoryID,
	})
}

// Quizzes handles POST /quizzes
func (h *HTTPHandlers) Quizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var payload quizPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	q, err := h.svc.NextQuizQuestion(r.Context(), payload.toRequest())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// NotFound answers unknown routes with the JSON envelope.
func (h *HTTPHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondNotFound(w)
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListPage(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"categories":       CategoryMap(listing.Categories),
		"current_category": nil,
	})
}

func (h *HTTPHandlers) postQuestions(w http.ResponseWriter, r *http.Request) {
	var payload questionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if payload.SearchTerm != nil {
		listing, err := h.svc.Search(r.Context(), *payload.SearchTerm)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":          true,
			"questions":        listing.Questions,
			"total_questions":  listing.Total,
			"current_category": nil,
		})
		return
	}

	result, err := h.svc.Create(r.Context(), CreateRequest{
		Question:   payload.Question,
		Answer:     payload.Answer,
		Category:   int(payload.Category),
		Difficulty: int(payload.Difficulty),
	}, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"created_question": result.ID,
		"questions":        result.Questions,
		"total_questions":  result.Total,
	})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrInvalidPayload):
		httperrors.RespondMethodNotAllowed(w)
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w)
	default:
		logger := logging.FromContextOr(r.Context(), h.logger)
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

// questionPayload is the body of POST /questions. The presence of searchTerm
// selects the search path.
type questionPayload struct {
	SearchTerm *string  `json:"searchTerm"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   looseInt `json:"category"`
	Difficulty looseInt `json:"difficulty"`
}

type quizPayload struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID   looseInt `json:"id"`
		Type string   `json:"type"`
	} `json:"quiz_category"`
}

// toRequest treats a missing category, id 0 or an "all"/"click" label as no filter.
func (p quizPayload) toRequest() QuizRequest {
	req := QuizRequest{PreviousQuestions: p.PreviousQuestions}
	c := p.QuizCategory
	if c == nil || c.ID <= 0 || strings.EqualFold(c.Type, "all") || strings.EqualFold(c.Type, "click") {
		return req
	}
	req.Category = &Category{ID: int(c.ID), Type: c.Type}
	return req
}

// looseInt accepts 3 as well as "3"; form-driven clients send select values as strings.
type looseInt int

func (v *looseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*v = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*v = looseInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = looseInt(n)
	return nil
}

// pageParam reads ?page, defaulting to 1 when absent or not an integer.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
