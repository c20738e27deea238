package wallet

import (
	"context"
	"fmt"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Deposit пополнение баланса
func (s *serv) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.move(ctx, model.TransactionDeposit, amount, amount)
}

// Withdraw вывод средств, не больше текущего баланса
func (s *serv) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.move(ctx, model.TransactionWithdrawal, amount, amount.Neg())
}

func (s *serv) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	login, err := playerFromContext(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return s.accountRepo.GetBalance(ctx, login)
}

// move меняет баланс на delta и пишет операцию в журнал
func (s *serv) move(ctx context.Context, typ model.TransactionType, amount, delta decimal.Decimal) (decimal.Decimal, error) {
	login, err := playerFromContext(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, model.ErrInvalidAmount
	}

	var balance decimal.Decimal
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err = s.accountRepo.ApplyDelta(txCtx, login, delta)
		if err != nil {
			return err
		}

		err = s.accountRepo.AppendTransaction(txCtx, login, &model.Transaction{
			Type:      typ,
			Amount:    delta,
			Balance:   balance,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("append %s transaction: %w", typ, err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.log.Info("balance changed",
		zap.String("login", login),
		zap.String("type", string(typ)),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)

	return balance, nil
}
