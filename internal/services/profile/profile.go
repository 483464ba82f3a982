// Package profile содержит логику бизнес-уровня для изменения профиля пользователя.
package profile

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/account-service/internal/models"
)

// UserRepository описывает контракт частичного обновления профиля.
type UserRepository interface {
	// UpdateProfile записывает переданные поля и возвращает число найденных документов.
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (int64, error)
}

// ProfileService отвечает за обновление полей профиля пользователя.
type ProfileService struct {
	users UserRepository
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(users UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Update записывает явно переданные поля профиля. Поля, отсутствующие
// в запросе, остаются без изменений. Если ни одно поле не передано,
// запись в хранилище не выполняется.
func (s *ProfileService) Update(ctx context.Context, userID string, upd models.ProfileUpdate) (int64, error) {
	const op = "services.profile.Update"
	if upd.Email == nil && upd.Bio == nil {
		return 1, nil
	}
	matched, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return matched, nil
}
