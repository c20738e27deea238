package auth

import (
	"context"
	"fmt"

	"lion_slot/internal/model"
	"lion_slot/pkg/token"
)

// openSession создаёт сессию с refresh токеном и выдаёт access токен
func (s *serv) openSession(ctx context.Context, login string) (*model.AuthData, error) {
	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, err := token.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	// Создать сессию, храним только хэш refresh токена
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			Login:        login,
			RefreshToken: refreshToken.Hash,
			ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		login,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Plain,
		SessionID:    sessionID,
	}, nil
}
