package wallet

import (
	"context"

	"lion_slot/internal/model"
)

// History последние операции и игры игрока
func (s *serv) History(ctx context.Context, limit int) (*model.History, error) {
	login, err := playerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	transactions, err := s.accountRepo.Transactions(ctx, login, limit)
	if err != nil {
		return nil, err
	}

	spins, err := s.accountRepo.Spins(ctx, login, limit)
	if err != nil {
		return nil, err
	}

	return &model.History{
		Transactions: transactions,
		Spins:        spins,
	}, nil
}
