// Package crypto содержит криптографические примитивы сервера CatKeeper:
//
//   - хэширование и проверку паролей (argon2id);
//   - выпуск и проверку JWT access-токенов (HS256).
//
// Токены stateless: сервер не ведёт ни сессий, ни revocation-списка,
// валидность определяется подписью и сроком жизни.
package crypto

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// AccessClaims — клеймы access-токена.
//
// Subject стандартного RegisteredClaims хранит числовой id пользователя
// в десятичной записи; Email добавлен отдельным кастомным клеймом,
// чтобы защищённые хендлеры не ходили в базу за профилем.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID возвращает id пользователя из Subject.
//
// Ошибка означает повреждённый или чужой токен.
func (c *AccessClaims) UserID() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Subject), 10, 64)
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит:
//   - iss (Issuer), aud (Audience)
//   - sub (id пользователя), email
//   - iat (IssuedAt), exp (ExpiresAt), jti (uuid)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID int64, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
			ID:        uuid.NewString(),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и срок жизни токена и возвращает клеймы.
//
// Ошибка возвращается при:
//   - неверной подписи или алгоритме, отличном от HS256;
//   - повреждённом payload;
//   - истёкшем токене (jwt.ErrTokenExpired в цепочке ошибок);
//   - несовпадении issuer/audience, если они заданы в конфиге.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (*AccessClaims, error) {
	claims := &AccessClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return nil, err
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return nil, jwt.ErrTokenInvalidAudience
		}
	}

	return claims, nil
}
