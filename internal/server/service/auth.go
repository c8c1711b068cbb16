package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"catkeeper/internal/server/config"
	"catkeeper/internal/server/crypto"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (c хэшированием пароля)
//   - проверка учётных данных (логин)
//   - выпуск access токенов
//   - проверка access токенов (эндпоинт verify-jwt)
//
// Refresh-токенов и revocation-списка нет: access токен stateless
// и живёт ровно до exp.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register регистрирует нового пользователя.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 8 символов
//
// Возвращает:
//   - id пользователя
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !emailRe.MatchString(email) || len(password) < 8 {
		return 0, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return 0, serr.ErrInternal
	}
	return s.users.Create(ctx, email, hash)
}

// ValidateCredentials проверяет пару email/пароль.
//
// Поведение:
//   - не раскрывает факт существования email (not-found и неверный пароль
//     дают одинаковую ошибку)
//   - возвращаемый User не содержит никакого парольного материала
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return models.User{}, serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, serr.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	if !ok {
		return models.User{}, serr.ErrInvalidCredentials
	}

	return models.User{ID: userID, Email: email}, nil
}

// Login выдаёт access токен для уже проверенной личности.
//
// Клеймы: sub = user.ID, email = user.Email.
//
// Ошибки:
//   - ErrInternal при ошибке подписи
func (s *AuthService) Login(ctx context.Context, user models.User) (string, error) {
	access, err := crypto.NewAccessToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return access, nil
}

// VerifyToken проверяет access токен и возвращает время его истечения.
//
// Любая причина невалидности (подпись, формат, просрочка, issuer/audience)
// сворачивается в ErrUnauthorized: наружу детали не отдаём.
func (s *AuthService) VerifyToken(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, serr.ErrUnauthorized
	}

	claims, err := crypto.ParseAccessToken(token, s.jwt)
	if err != nil {
		return time.Time{}, serr.ErrUnauthorized
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, serr.ErrUnauthorized
	}
	return claims.ExpiresAt.Time, nil
}
