package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

const refreshTokenBytes = 32

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// RefreshToken непрозрачный токен: Plain отдаётся клиенту, в хранилище кладётся только Hash
type RefreshToken struct {
	Plain string
	Hash  string
}

func NewRefreshToken() (RefreshToken, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return RefreshToken{}, fmt.Errorf("read random: %w", err)
	}

	plain := base64.RawURLEncoding.EncodeToString(b)
	return RefreshToken{Plain: plain, Hash: hashRefreshToken(plain)}, nil
}

// VerifyRefreshToken сравнивает токен клиента с сохранённым хэшем за постоянное время
func VerifyRefreshToken(plain, hash string) error {
	if plain == "" {
		return ErrInvalidRefreshToken
	}
	if subtle.ConstantTimeCompare([]byte(hashRefreshToken(plain)), []byte(hash)) != 1 {
		return ErrInvalidRefreshToken
	}
	return nil
}

func hashRefreshToken(plain string) string {
	h := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(h[:])
}
