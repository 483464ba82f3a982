// Package me реализует HTTP-обработчик получения текущей идентичности.
//
// Обработчик отдаёт снимок сессии, положенный в контекст middleware,
// и не обращается к хранилищу пользователей.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Handler обрабатывает запросы на чтение текущей идентичности.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Description Возвращает кэшированный в сессии снимок идентичности.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Данные сессии"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

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

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user_id":  data.UserID,
		"username": data.Username,
		"email":    data.Email,
		"bio":      data.Bio,
	}))
}
