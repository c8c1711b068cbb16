// Package models содержит плоские модели, общие для сервера и CLI-клиента.
package models

import "time"

// User — пользователь системы, каким он виден наружу.
//
// Хэш пароля никогда не попадает в эту структуру: repository отдаёт его
// отдельным значением только сервису аутентификации.
//
// Поля:
//   - ID: числовой идентификатор (автоинкремент в sqlite)
//   - Email: уникален в пределах всей базы
//   - CreatedAt: серверное время регистрации
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Cat — запись о коте.
//
// Каждый кот принадлежит ровно одному существующему пользователю (OwnerID).
// LastFed — дата последнего кормления в свободном строковом формате;
// поле опционально (nil, если кота ещё не кормили).
type Cat struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	OwnerID int64   `json:"ownerId"`
	LastFed *string `json:"lastFed,omitempty"`
}

// RegisterRequest — запрос регистрации пользователя.
//
// Используется в:
//
//	POST /auth/register
//	POST /users
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse — успешный ответ регистрации.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest — запрос входа пользователя.
//
// Используется в:
//
//	POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse — успешный ответ входа.
//
// Токен stateless: сервер его нигде не хранит,
// валидность определяется подписью и сроком жизни.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// VerifyJWTRequest — запрос проверки токена.
//
// Используется в:
//
//	POST /auth/verify-jwt
type VerifyJWTRequest struct {
	JWT string `json:"jwt"`
}

// VerifyJWTResponse — ответ проверки токена.
//
// Exp — unix-время истечения токена.
type VerifyJWTResponse struct {
	Exp int64 `json:"exp"`
}

// ProfileResponse — ответ защищённого эндпоинта профиля.
//
// Используется в:
//
//	GET /auth/profile
type ProfileResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CreateCatRequest — запрос на создание кота.
//
// Используется в:
//
//	POST /cats
//
// OwnerID обязателен и должен указывать на существующего пользователя,
// иначе сервер отвечает 404.
type CreateCatRequest struct {
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	OwnerID int64   `json:"ownerId"`
	LastFed *string `json:"lastFed,omitempty"`
}

// UpdateCatRequest — частичное обновление кота по ID.
//
// Используется в:
//
//	PATCH /cats/{id}
//
// Все поля — указатели: передаются только изменяемые поля
// (omitempty работает корректно). Отсутствующее поле не трогается.
type UpdateCatRequest struct {
	Name    *string `json:"name,omitempty"`
	Breed   *string `json:"breed,omitempty"`
	LastFed *string `json:"lastFed,omitempty"`
}
