package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"catkeeper/internal/server/config"
	crypt "catkeeper/internal/server/crypto"
	"catkeeper/internal/server/service"
	"catkeeper/internal/server/service/mocks"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// создаём сервис
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsersRepo(ctrl)

	svc := service.NewAuthService(users, testConfig())
	return svc, users
}

func argonParams() crypt.Argon2Params {
	cfg := testConfig()
	return crypt.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
}

// Успех
func TestAuthService_Register_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "test@gmail.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, hash string) (int64, error) {
			// в базу уходит argon2id-хэш, а не пароль
			require.NotEqual(t, "StrongPass123", hash)
			require.Contains(t, hash, "argon2id$")
			return int64(1), nil
		})

	id, err := svc.Register(ctx, "Test@Gmail.com ", "StrongPass123")

	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

// Невалидный email
func TestAuthService_Register_BadEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "not-an-email", "StrongPass123")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Короткий пароль
func TestAuthService_Register_ShortPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "test@gmail.com", "short")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Email уже занят
func TestAuthService_Register_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "test@gmail.com", gomock.Any()).
		Return(int64(0), serr.ErrAlreadyExists)

	_, err := svc.Register(ctx, "test@gmail.com", "StrongPass123")

	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Успех
func TestAuthService_ValidateCredentials_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	password := "strongpassword"
	hash, err := crypt.HashPassword(password, argonParams())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@gmail.com").
		Return(int64(7), hash, nil)

	user, err := svc.ValidateCredentials(ctx, "test@gmail.com", password)

	require.NoError(t, err)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "test@gmail.com", user.Email)
}

// Неверный пароль
func TestAuthService_ValidateCredentials_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	// хешируем ПРАВИЛЬНЫЙ пароль
	hash, err := crypt.HashPassword("correct-password", argonParams())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@gmail.com").
		Return(int64(7), hash, nil)

	_, err = svc.ValidateCredentials(ctx, "test@gmail.com", "wrong-password")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Несуществующий email не палится отдельной ошибкой
func TestAuthService_ValidateCredentials_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "nobody@gmail.com").
		Return(int64(0), "", serr.ErrNotFound)

	_, err := svc.ValidateCredentials(ctx, "nobody@gmail.com", "whatever-pass")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Login выдаёт валидный токен, VerifyToken его принимает
func TestAuthService_Login_And_VerifyToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	token, err := svc.Login(ctx, models.User{ID: 7, Email: "test@gmail.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	exp, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))
}

// Мусорный токен
func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.VerifyToken("definitely.not.jwt")

	require.ErrorIs(t, err, serr.ErrUnauthorized)
}

// Пустой токен
func TestAuthService_VerifyToken_Empty(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.VerifyToken("   ")

	require.ErrorIs(t, err, serr.ErrUnauthorized)
}

// Тестовый конфиг
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "test",
			Audience:  "test",
			AccessTTL: time.Minute,
			JWT: config.JWTConfig{
				SigningKey: "secret",
			},
		},
		Password: config.PasswordConfig{
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
	}
}
