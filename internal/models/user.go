// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и даты создания и обновления.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"` // Уникальный идентификатор, назначается хранилищем
	Username     string             `bson:"username"`      // Имя пользователя (уникальное)
	Email        string             `bson:"email"`         // Электронная почта
	PasswordHash string             `bson:"password_hash"` // Хэш пароля, никогда не отдаётся клиенту
	Bio          string             `bson:"bio"`           // Краткая информация о себе
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty"`
}

// ProfileUpdate описывает частичное обновление профиля.
//
// nil означает, что поле в запросе отсутствовало и в хранилище не пишется;
// указатель на пустую строку — явно переданное значение, которое записывается.
type ProfileUpdate struct {
	Email *string
	Bio   *string
}
