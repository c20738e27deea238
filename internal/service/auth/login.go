package auth

import (
	"context"
	"errors"

	"lion_slot/internal/model"
	"lion_slot/pkg/pass"

	"go.uber.org/zap"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		s.log.Info("login rejected", zap.String("login", login))
		return nil, model.ErrInvalidCredentials
	}

	return s.openSession(ctx, user.Login)
}
