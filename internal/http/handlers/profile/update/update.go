// Package update реализует HTTP-обработчик изменения профиля пользователя.
//
// Поля email и bio независимы и необязательны: отсутствующее в теле поле
// остаётся без изменений, явно переданное (в том числе пустое) записывается
// в хранилище и зеркалируется в снимок сессии, чтобы последующие запросы
// текущей идентичности видели изменение без чтения из базы.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Request — входные данные для изменения профиля.
type Request struct {
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
}

// Service описывает интерфейс бизнес-логики изменения профиля.
type Service interface {
	Update(ctx context.Context, userID string, upd models.ProfileUpdate) (int64, error)
}

// SessionStore описывает интерфейс перезаписи снимка сессии.
type SessionStore interface {
	Save(ctx context.Context, token string, data models.SessionData) error
}

// Handler обрабатывает запросы на изменение профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions SessionStore
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions SessionStore) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
	}
}

// ServeHTTP godoc
// @Summary Изменение профиля
// @Description Обновляет email и bio пользователя и зеркалирует их в сессию.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body Request true "Изменяемые поля профиля"
// @Success 200 {object} map[string]any "Профиль обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	data, ok := r.Context().Value(middlewarectx.Session).(*models.SessionData)
	if !ok || data.UserID == "" {
		log.Error("session missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not authenticated"))
		return
	}
	token, _ := r.Context().Value(middlewarectx.SessionToken).(string)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	matched, err := h.service.Update(r.Context(), data.UserID, models.ProfileUpdate{
		Email: req.Email,
		Bio:   req.Bio,
	})
	if err != nil {
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update profile"))
		return
	}
	if matched == 0 {
		// Запись могла быть удалена другим путём; клиенту это не ошибка.
		log.Warn("profile update matched no user", slog.String("user_id", data.UserID))
	}

	if req.Email != nil {
		data.Email = *req.Email
	}
	if req.Bio != nil {
		data.Bio = *req.Bio
	}
	if req.Email != nil || req.Bio != nil {
		if err := h.sessions.Save(r.Context(), token, *data); err != nil {
			log.Error("failed to refresh session snapshot", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update profile"))
			return
		}
	}

	log.Info("profile updated", slog.String("user_id", data.UserID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "profile updated successfully",
	}))
}
