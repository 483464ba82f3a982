// Package sessions реализует серверное хранилище сессий на основе Redis.
//
// Сессия — это JSON-снимок идентичности пользователя под ключом
// session:<token>, где token — непрозрачный идентификатор, который
// клиент носит в HttpOnly-куке. Наличие записи в Redis означает ранее
// успешный вход; срок жизни ограничен TTL из конфигурации.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/models"
)

const keyPrefix = "session:"

// ErrSessionNotFound возвращается, если сессия отсутствует или истекла.
var ErrSessionNotFound = errors.New("session not found")

// Store хранит сессии в Redis и управляет сессионной кукой.
type Store struct {
	Db         *redis.Client
	cookieName string
	ttl        time.Duration
}

// InitServer создаёт подключение к Redis и проверяет его.
func InitServer(ctx context.Context, cfg config.RedisConnection, session config.Session) (*Store, error) {
	const op = "sessions.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{
		Db:         db,
		cookieName: session.CookieName,
		ttl:        session.TTL,
	}, nil
}

// Create сохраняет снимок под новым токеном и возвращает токен.
func (s *Store) Create(ctx context.Context, data models.SessionData) (string, error) {
	const op = "sessions.Create"
	token := uuid.NewString()
	if err := s.Save(ctx, token, data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Get возвращает снимок сессии по токену.
func (s *Store) Get(ctx context.Context, token string) (*models.SessionData, error) {
	const op = "sessions.Get"
	val, err := s.Db.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var data models.SessionData
	if err = json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &data, nil
}

// Save перезаписывает снимок сессии, продлевая её срок жизни.
func (s *Store) Save(ctx context.Context, token string, data models.SessionData) error {
	const op = "sessions.Save"
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.Db.Set(ctx, keyPrefix+token, jsonData, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Destroy удаляет сессию. Ошибка хранилища возвращается вызывающему,
// а не проглатывается.
func (s *Store) Destroy(ctx context.Context, token string) error {
	const op = "sessions.Destroy"
	if err := s.Db.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TokenFromRequest извлекает токен сессии из куки запроса.
func (s *Store) TokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Cookie возвращает сессионную куку для выдачи клиенту.
func (s *Store) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie возвращает куку, стирающую сессию на клиенте.
func (s *Store) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
