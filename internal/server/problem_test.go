package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProblem(t *testing.T) {
	w := httptest.NewRecorder()

	WriteProblem(w, Problem{
		Type:     ProblemTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "weapon xyz not found",
		Instance: "/api/v1/weapons/xyz",
	})

	resp := w.Result()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var p Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, Problem{
		Type:     ProblemTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "weapon xyz not found",
		Instance: "/api/v1/weapons/xyz",
	}, p)
}

func TestProblemHelpers(t *testing.T) {
	tests := []struct {
		name   string
		write  func(http.ResponseWriter, string, string)
		status int
		typ    string
	}{
		{"not found", NotFound, http.StatusNotFound, ProblemTypeNotFound},
		{"bad request", BadRequest, http.StatusBadRequest, ProblemTypeBadRequest},
		{"internal", InternalError, http.StatusInternalServerError, ProblemTypeInternal},
		{"rate limited", RateLimited, http.StatusTooManyRequests, ProblemTypeRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w, "detail", "/x")

			var p Problem
			require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, "detail", p.Detail)
			assert.Equal(t, "/x", p.Instance)
		})
	}
}
