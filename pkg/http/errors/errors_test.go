package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorEnvelope(t *testing.T) {
	cases := []struct {
		name    string
		write   func(http.ResponseWriter)
		status  int
		message string
	}{
		{"not found", RespondNotFound, http.StatusNotFound, "Resource Not Found"},
		{"method", RespondMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unprocessable", RespondUnprocessable, http.StatusUnprocessableEntity, "Unprocessable"},
		{"internal", RespondInternalError, http.StatusInternalServerError, "Internal Server Error"},
		{"bad request", RespondBadRequest, http.StatusBadRequest, "Bad Request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestMessageForUnknownStatus(t *testing.T) {
	assert.Equal(t, "Conflict", MessageFor(http.StatusConflict))
}
