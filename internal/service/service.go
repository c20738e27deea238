package service

import (
	"context"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

type SlotService interface {
	Spin(ctx context.Context, spinReq model.SlotSpin) (*model.SpinRound, error)
	PayTable() []model.PayLine
	Stats() model.SlotStats
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type WalletService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	History(ctx context.Context, limit int) (*model.History, error)
}
