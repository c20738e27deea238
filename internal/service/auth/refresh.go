package auth

import (
	"context"

	"lion_slot/internal/model"
	"lion_slot/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Получение сессии с хэшем refresh токена
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	if s.now().After(session.ExpiresAt) {
		return "", model.ErrSessionExpired
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if err := token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken); err != nil {
		return "", err
	}

	// Генерация нового access токена
	return token.GenerateAccessToken(
		session.Login,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
