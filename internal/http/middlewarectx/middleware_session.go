// Package middlewarectx содержит HTTP middleware для работы с серверными сессиями.
//
// SessionMiddleware извлекает токен сессии из куки, загружает снимок
// идентичности из хранилища сессий и кладёт его в контекст запроса.
// Пароль повторно не проверяется: наличие сессии означает ранее
// успешный вход.
//
// В случае отсутствия или истечения сессии возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/sessions"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// Session — ключ для снимка сессии (*models.SessionData) в контексте
	Session Key = "session"
	// SessionToken — ключ для токена сессии в контексте
	SessionToken Key = "session_token"
)

// SessionProvider описывает интерфейс хранилища сессий для middleware.
type SessionProvider interface {
	TokenFromRequest(r *http.Request) (string, bool)
	Get(ctx context.Context, token string) (*models.SessionData, error)
}

// SessionMiddleware возвращает HTTP middleware, который требует активную сессию.
//
// Если сессия найдена, добавляет её снимок и токен в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(store SessionProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, ok := store.TokenFromRequest(r)
			if !ok {
				log.Error("missing session cookie")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not authenticated"))
				return
			}

			data, err := store.Get(r.Context(), token)
			if err != nil {
				if errors.Is(err, sessions.ErrSessionNotFound) {
					log.Error("session not found or expired")
					w.WriteHeader(http.StatusUnauthorized)
					render.JSON(w, r, response.Error("not authenticated"))
					return
				}
				log.Error("failed to load session", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			ctx := context.WithValue(r.Context(), Session, data)
			ctx = context.WithValue(ctx, SessionToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
