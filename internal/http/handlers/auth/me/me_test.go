package me

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/models"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMeHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()
	handler := New(logger)

	tests := []struct {
		name           string
		session        *models.SessionData
		wantStatusCode int
		wantData       map[string]any
		wantError      string
	}{
		{
			name: "returns cached snapshot",
			session: &models.SessionData{
				UserID:   "64f000000000000000000001",
				Username: "user1",
				Email:    "user1@example.com",
				Bio:      "hello",
			},
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"user_id":  "64f000000000000000000001",
				"username": "user1",
				"email":    "user1@example.com",
				"bio":      "hello",
			},
		},
		{
			name: "empty optional fields stay empty strings",
			session: &models.SessionData{
				UserID:   "64f000000000000000000002",
				Username: "user2",
			},
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"user_id":  "64f000000000000000000002",
				"username": "user2",
				"email":    "",
				"bio":      "",
			},
		},
		{
			name:           "no session in context",
			session:        nil,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "not authenticated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.session != nil {
				ctx = context.WithValue(ctx, middlewarectx.Session, tt.session)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.wantData, data)
			}
		})
	}
}
