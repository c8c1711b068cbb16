// Хэширование паролей.
//
// Пароли никогда не хранятся открытым текстом: в базе лежит только
// argon2id-хэш, проверка идёт через constant-time сравнение.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params — параметры argon2id, приходят из конфига сервера.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// HashPassword возвращает строку формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
//
// Соль генерируется заново на каждый вызов, поэтому два одинаковых пароля
// дают разные строки.
func HashPassword(password string, p Argon2Params) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	encoded := fmt.Sprintf(
		"argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

// VerifyPassword сверяет пароль с хранимой argon2id-строкой.
//
// Параметры берутся из самой строки (а не из текущего конфига),
// поэтому старые хэши остаются проверяемыми после смены настроек.
// Сравнение — subtle.ConstantTimeCompare.
func VerifyPassword(password, encoded string) (bool, error) {
	salt, wantHash, p, err := parseEncoded(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}

// parseEncoded разбирает строку вида argon2id$v=19$m=...,t=...,p=...$salt$hash.
func parseEncoded(encoded string) ([]byte, []byte, Argon2Params, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return nil, nil, Argon2Params{}, errors.New("invalid hash format")
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return nil, nil, Argon2Params{}, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, nil, Argon2Params{}, errors.New("invalid salt")
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, Argon2Params{}, errors.New("invalid hash")
	}

	return salt, hash, p, nil
}
