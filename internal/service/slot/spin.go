package slot

import (
	"context"
	"errors"
	"fmt"

	"lion_slot/internal/metrics"
	"lion_slot/internal/middleware"
	"lion_slot/internal/model"

	"go.uber.org/zap"
)

// Spin играет один раунд:
// проверка ставки -> списание -> розыгрыш -> расчёт -> начисление -> история.
// Отклонённый раунд ничего не меняет
func (s *serv) Spin(ctx context.Context, spinReq model.SlotSpin) (*model.SpinRound, error) {
	// Получаем логин игрока
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		metrics.ObserveRejected()
		return nil, model.ErrNoPlayerBound
	}

	// Валидация ставки
	wager := spinReq.Bet
	if !wager.IsPositive() {
		metrics.ObserveRejected()
		return nil, model.ErrInvalidWager
	}

	var round *model.SpinRound

	// Весь раунд в одной транзакции: баланс аккаунта блокируется до конца расчёта
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.accountRepo.GetBalance(txCtx, login)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				return model.ErrNoPlayerBound
			}
			return fmt.Errorf("get balance: %w", err)
		}
		if wager.GreaterThan(balance) {
			return model.ErrInsufficientFunds
		}

		// Списание ставки до розыгрыша
		balance, err = s.accountRepo.ApplyDelta(txCtx, login, wager.Neg())
		if err != nil {
			return fmt.Errorf("debit wager: %w", err)
		}
		err = s.accountRepo.AppendTransaction(txCtx, login, &model.Transaction{
			Type:      model.TransactionWager,
			Amount:    wager.Neg(),
			Balance:   balance,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("append wager transaction: %w", err)
		}

		// Розыгрыш и расчёт
		result := ResolveReels(DrawReels(s.draw, s.population), wager)

		// Начисление выигрыша
		if result.Won {
			balance, err = s.accountRepo.ApplyDelta(txCtx, login, result.Prize)
			if err != nil {
				return fmt.Errorf("credit prize: %w", err)
			}
			err = s.accountRepo.AppendTransaction(txCtx, login, &model.Transaction{
				Type:      model.TransactionPrize,
				Amount:    result.Prize,
				Balance:   balance,
				CreatedAt: s.now(),
			})
			if err != nil {
				return fmt.Errorf("append prize transaction: %w", err)
			}
		}

		err = s.accountRepo.AppendSpin(txCtx, login, &model.SpinRecord{
			Wager:     wager,
			Prize:     result.Prize,
			Profit:    result.Prize.Sub(wager),
			Symbols:   symbolNames(result.Symbols),
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("append spin: %w", err)
		}

		round = &model.SpinRound{
			Result:  result,
			Wager:   wager,
			Balance: balance,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) || errors.Is(err, model.ErrNoPlayerBound) {
			metrics.ObserveRejected()
		}
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(wager.InexactFloat64(), round.Result.Prize.InexactFloat64())
	metrics.ObserveRound(round.Result.Won, wager, round.Result.Prize)
	metrics.SetRTP(s.statsRepo.CasinoState().CurrentRTP)

	names := symbolNames(round.Result.Symbols)
	s.log.Debug("round settled",
		zap.String("login", login),
		zap.Strings("symbols", names[:]),
		zap.Bool("won", round.Result.Won),
		zap.String("prize", round.Result.Prize.String()),
		zap.String("balance", round.Balance.String()),
	)

	return round, nil
}

func symbolNames(symbols [model.Reels]model.Symbol) [model.Reels]string {
	var names [model.Reels]string
	for i, s := range symbols {
		names[i] = s.Name
	}
	return names
}
