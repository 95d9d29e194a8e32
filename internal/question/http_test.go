package question

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

func newTestHandlers(rows ...sqlcgen.Question) (*HTTPHandlers, *stubQuestionStore) {
	store := newStubQuestionStore(rows...)
	svc := newTestService(store, threeCategories(), nil)
	return NewHTTPHandlers(svc, zerolog.Nop()), store
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleCategories(t *testing.T) {
	h, _ := newTestHandlers()
	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["total_categories"])
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art", "3": "Geography"}, body["categories"])
}

func TestHandleCategoriesEmptyIsNotFound(t *testing.T) {
	store := newStubQuestionStore()
	svc := newTestService(store, &stubCategoryStore{}, nil)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Resource Not Found", body["message"])
}

func TestHandleListQuestions(t *testing.T) {
	h, _ := newTestHandlers(sqlRows(15)...)

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["questions"], 5)
	assert.Equal(t, float64(15), body["total_questions"])
	assert.Nil(t, body["current_category"])
	assert.Contains(t, body, "current_category")
	assert.Len(t, body["categories"], 3)
}

func TestHandleListQuestionsInvalidPage(t *testing.T) {
	h, _ := newTestHandlers(sqlRows(15)...)

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=100", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=9223372036854775807", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSearch(t *testing.T) {
	rows := []sqlcgen.Question{
		{ID: 1, Question: "What movie earned Tom Hanks his third straight Oscar nomination?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{ID: 2, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
	}
	h, _ := newTestHandlers(rows...)

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(`{"searchTerm":"ORGAN"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	questions := body["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.Equal(t, float64(2), questions[0].(map[string]interface{})["id"])

	rec = httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(`{"searchTerm":"nothing matches this"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Empty(t, body["questions"])
	assert.Equal(t, float64(0), body["total_questions"])
}

func TestHandleCreateQuestion(t *testing.T) {
	h, store := newTestHandlers(sqlRows(2)...)

	rec := httptest.NewRecorder()
	payload := `{"question":"What is the largest lake in Africa?","answer":"Lake Victoria","category":"3","difficulty":2}`
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["created_question"])
	assert.Equal(t, float64(3), body["total_questions"])
	assert.Len(t, body["questions"], 3)
	assert.Equal(t, int32(3), store.rows[2].Category)
}

func TestHandleCreateIncompleteIsMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandlers()

	rec := httptest.NewRecorder()
	payload := `{"question":"What is the speed of light?","answer":"","category":1,"difficulty":2}`
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(405), body["error"])
	assert.Equal(t, "Method Not Allowed", body["message"])
}

func TestHandleMalformedJSON(t *testing.T) {
	h, _ := newTestHandlers()

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(`{"question":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteQuestion(t *testing.T) {
	h, store := newTestHandlers(sqlRows(4)...)

	req := httptest.NewRequest(http.MethodDelete, "/questions/4", nil)
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Question(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(4), body["deleted_question"])
	assert.Equal(t, float64(3), body["total_questions"])
	assert.Len(t, store.rows, 3)

	rec = httptest.NewRecorder()
	h.Question(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleQuestionWrongMethod(t *testing.T) {
	h, _ := newTestHandlers(sqlRows(1)...)

	req := httptest.NewRequest(http.MethodPost, "/questions/100", strings.NewReader(`{}`))
	req.SetPathValue("id", "100")
	rec := httptest.NewRecorder()
	h.Question(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, float64(405), decodeBody(t, rec)["error"])
}

func TestHandleCategoryQuestions(t *testing.T) {
	h, _ := newTestHandlers(sqlRows(6)...)

	req := httptest.NewRequest(http.MethodGet, "/categories/1/questions", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.CategoryQuestions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["current_category"])
	assert.Equal(t, float64(2), body["total_questions"])

	req = httptest.NewRequest(http.MethodGet, "/categories/5/questions", nil)
	req.SetPathValue("id", "5")
	rec = httptest.NewRecorder()
	h.CategoryQuestions(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleQuizzes(t *testing.T) {
	rows := []sqlcgen.Question{
		{ID: 1, Question: "a", Answer: "a", Category: 3},
		{ID: 2, Question: "b", Answer: "b", Category: 3},
		{ID: 3, Question: "c", Answer: "c", Category: 1},
	}
	h, _ := newTestHandlers(rows...)

	rec := httptest.NewRecorder()
	payload := `{"previous_questions":[1],"quiz_category":{"id":"3","type":"Geography"}}`
	h.Quizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["question"].(map[string]interface{})["id"])

	rec = httptest.NewRecorder()
	payload = `{"previous_questions":[1,2],"quiz_category":{"id":3,"type":"Geography"}}`
	h.Quizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["question"])
}

func TestQuizPayloadAllCategories(t *testing.T) {
	for _, raw := range []string{
		`{"previous_questions":[]}`,
		`{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`,
		`{"previous_questions":[],"quiz_category":{"id":2,"type":"all"}}`,
		`{"previous_questions":[],"quiz_category":{"id":3,"type":"click"}}`,
		`{"previous_questions":[],"quiz_category":{"id":"1","type":"Click"}}`,
		`{"previous_questions":[],"quiz_category":null}`,
	} {
		var p quizPayload
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		assert.Nil(t, p.toRequest().Category, raw)
	}
}

func TestLooseInt(t *testing.T) {
	var v struct {
		A looseInt `json:"a"`
		B looseInt `json:"b"`
		C looseInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":4,"b":"5","c":""}`), &v))
	assert.Equal(t, looseInt(4), v.A)
	assert.Equal(t, looseInt(5), v.B)
	assert.Equal(t, looseInt(0), v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"four"}`), &v))
}
