// Package logout реализует HTTP-обработчик завершения сессии.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
)

// SessionStore описывает интерфейс уничтожения сессии.
type SessionStore interface {
	TokenFromRequest(r *http.Request) (string, bool)
	Destroy(ctx context.Context, token string) error
	ExpiredCookie() *http.Cookie
}

// Handler обрабатывает запросы на выход из системы.
type Handler struct {
	log      *slog.Logger
	sessions SessionStore
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, sessions SessionStore) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

// ServeHTTP уничтожает текущую сессию и стирает куку.
//
// Повторный выход без сессии не является ошибкой: уничтожать нечего,
// возвращается обычный успешный ответ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if token, ok := h.sessions.TokenFromRequest(r); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			log.Error("failed to destroy session", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not logout"))
			return
		}
	}
	http.SetCookie(w, h.sessions.ExpiredCookie())

	log.Info("logout success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logout successful",
	}))
}
