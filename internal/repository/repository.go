package repository

import (
	"context"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// AccountRepository хранилище баланса и истории игрока, ключ - логин.
// Баланс меняется только через ApplyDelta
type AccountRepository interface {
	GetBalance(ctx context.Context, login string) (decimal.Decimal, error)
	// ApplyDelta прибавляет delta к балансу и возвращает новый баланс.
	// Если баланс станет отрицательным - model.ErrInsufficientFunds
	ApplyDelta(ctx context.Context, login string, delta decimal.Decimal) (decimal.Decimal, error)

	AppendTransaction(ctx context.Context, login string, tx *model.Transaction) error
	AppendSpin(ctx context.Context, login string, spin *model.SpinRecord) error

	// Transactions и Spins возвращают последние limit записей, новые первыми
	Transactions(ctx context.Context, login string, limit int) ([]model.Transaction, error)
	Spins(ctx context.Context, login string, limit int) ([]model.SpinRecord, error)
}

type SlotStatsRepository interface {
	CasinoState() model.SlotStats
	UpdateState(bet, payout float64)
}
