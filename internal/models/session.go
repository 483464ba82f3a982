package models

// SessionData — денормализованный снимок идентичности пользователя,
// который хранится в серверной сессии. Снимок обновляется при входе
// и при изменении профиля; авторитетным источником остаётся хранилище.
type SessionData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}
