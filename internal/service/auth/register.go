package auth

import (
	"context"
	"fmt"
	"unicode/utf8"

	"lion_slot/internal/model"
	"lion_slot/pkg/pass"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Register создаёт пользователя, начисляет бонус за регистрацию и открывает сессию
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if utf8.RuneCountInString(user.Login) < minLoginLen {
		return nil, fmt.Errorf("%w: login must have at least %d characters", model.ErrInvalidUserData, minLoginLen)
	}
	if utf8.RuneCountInString(user.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must have at least %d characters", model.ErrInvalidUserData, minPasswordLen)
	}
	if len(user.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must not exceed %d bytes", model.ErrInvalidUserData, maxPasswordBytes)
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	newUser := *user
	newUser.Password = passwordHash
	newUser.Balance = decimal.Zero

	var data *model.AuthData

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Создать пользователя с нулевым балансом
		if err := s.userRepo.CreateUser(txCtx, &newUser); err != nil {
			return err
		}

		// 2. Бонус за регистрацию проходит через журнал как обычная операция
		if s.signupBonus.IsPositive() {
			balance, err := s.accountRepo.ApplyDelta(txCtx, newUser.Login, s.signupBonus)
			if err != nil {
				return fmt.Errorf("credit signup bonus: %w", err)
			}
			err = s.accountRepo.AppendTransaction(txCtx, newUser.Login, &model.Transaction{
				Type:      model.TransactionBonus,
				Amount:    s.signupBonus,
				Balance:   balance,
				CreatedAt: s.now(),
			})
			if err != nil {
				return fmt.Errorf("append bonus transaction: %w", err)
			}
		}

		// 3. Сессия и токены
		data, err = s.openSession(txCtx, newUser.Login)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("login", newUser.Login), zap.String("bonus", s.signupBonus.String()))

	return data, nil
}
