package file_repo

import (
	"context"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

func (s *Store) GetBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	defer s.lockTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}
	return r.Saldo, nil
}

// ApplyDelta единственное место, где меняется saldo
func (s *Store) ApplyDelta(ctx context.Context, login string, delta decimal.Decimal) (decimal.Decimal, error) {
	defer s.lockTx(ctx)()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}

	next := r.Saldo.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, model.ErrInsufficientFunds
	}
	r.Saldo = next
	s.users[login] = r
	s.changedLocked(ctx)

	return next, nil
}

func (s *Store) AppendTransaction(ctx context.Context, login string, tx *model.Transaction) error {
	defer s.lockTx(ctx)()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[login]
	if !ok {
		return model.ErrUserNotFound
	}
	r.HistoricoTransacoes = append(r.HistoricoTransacoes, fromTransaction(tx))
	s.users[login] = r
	s.changedLocked(ctx)

	return nil
}

func (s *Store) AppendSpin(ctx context.Context, login string, spin *model.SpinRecord) error {
	defer s.lockTx(ctx)()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[login]
	if !ok {
		return model.ErrUserNotFound
	}
	r.HistoricoJogadas = append(r.HistoricoJogadas, fromSpin(spin))
	s.users[login] = r
	s.changedLocked(ctx)

	return nil
}

func (s *Store) Transactions(ctx context.Context, login string, limit int) ([]model.Transaction, error) {
	defer s.lockTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	if limit <= 0 {
		return []model.Transaction{}, nil
	}
	items := r.HistoricoTransacoes
	out := make([]model.Transaction, 0, min(limit, len(items)))
	for i := len(items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, items[i].toModel())
	}
	return out, nil
}

func (s *Store) Spins(ctx context.Context, login string, limit int) ([]model.SpinRecord, error) {
	defer s.lockTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	if limit <= 0 {
		return []model.SpinRecord{}, nil
	}
	items := r.HistoricoJogadas
	out := make([]model.SpinRecord, 0, min(limit, len(items)))
	for i := len(items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, items[i].toModel())
	}
	return out, nil
}
