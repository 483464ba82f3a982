// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также проверка учётных данных через сервис аутентификации.
// При успешном входе серверная сессия перезаписывается снимком пользователя;
// в случае ошибок формируются соответствующие HTTP-ответы. Ответ для неизвестного
// имени и неверного пароля одинаков.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/metrics"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/auth"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// SessionStore описывает интерфейс создания сессии и выдачи куки.
type SessionStore interface {
	Create(ctx context.Context, data models.SessionData) (string, error)
	Cookie(token string) *http.Cookie
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions SessionStore
	validate *validator.Validate
}

// New создает новый экземпляр Handler с указанными логгером, сервисом и хранилищем сессий.
func New(log *slog.Logger, service Service, sessions SessionStore) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по имени и паролю. Открывает серверную сессию.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} map[string]any "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или не все поля заполнены"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("invalid credentials", slog.String("username", req.Username))
			metrics.LoginAttempts.WithLabelValues("unauthorized").Inc()
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	token, err := h.sessions.Create(r.Context(), models.SessionData{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
	})
	if err != nil {
		log.Error("failed to create session", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create session"))
		return
	}
	http.SetCookie(w, h.sessions.Cookie(token))

	log.Info("login success", slog.String("username", user.Username))
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "login successful",
		"user": map[string]any{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
			"bio":      user.Bio,
		},
	}))
}
