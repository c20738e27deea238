package slot

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"lion_slot/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("store down")

// fakeAccounts аккаунты в памяти с откатом через fakeTx
type fakeAccounts struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	txs      map[string][]model.Transaction
	spins    map[string][]model.SpinRecord

	failAppendSpin bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		balances: make(map[string]decimal.Decimal),
		txs:      make(map[string][]model.Transaction),
		spins:    make(map[string][]model.SpinRecord),
	}
}

func (f *fakeAccounts) GetBalance(_ context.Context, login string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.balances[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}
	return b, nil
}

func (f *fakeAccounts) ApplyDelta(_ context.Context, login string, delta decimal.Decimal) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.balances[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}
	next := b.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, model.ErrInsufficientFunds
	}
	f.balances[login] = next
	return next, nil
}

func (f *fakeAccounts) AppendTransaction(_ context.Context, login string, tx *model.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.txs[login] = append(f.txs[login], *tx)
	return nil
}

func (f *fakeAccounts) AppendSpin(_ context.Context, login string, spin *model.SpinRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAppendSpin {
		return errStoreDown
	}
	f.spins[login] = append(f.spins[login], *spin)
	return nil
}

func (f *fakeAccounts) Transactions(_ context.Context, login string, _ int) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.txs[login]), nil
}

func (f *fakeAccounts) Spins(_ context.Context, login string, _ int) ([]model.SpinRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.spins[login]), nil
}

type fakeState struct {
	balances map[string]decimal.Decimal
	txs      map[string][]model.Transaction
	spins    map[string][]model.SpinRecord
}

func (f *fakeAccounts) snapshot() fakeState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeState{
		balances: maps.Clone(f.balances),
		txs:      maps.Clone(f.txs),
		spins:    maps.Clone(f.spins),
	}
}

func (f *fakeAccounts) restore(s fakeState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances, f.txs, f.spins = s.balances, s.txs, s.spins
}

// fakeTx выполняет fn последовательно и откатывает fakeAccounts при ошибке
type fakeTx struct {
	mu       sync.Mutex
	accounts *fakeAccounts
	calls    int
}

var _ trm.Manager = (*fakeTx)(nil)

func (m *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	snap := m.accounts.snapshot()
	if err := fn(ctx); err != nil {
		m.accounts.restore(snap)
		return err
	}
	return nil
}

func (m *fakeTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// scriptedDraw возвращает символы по очереди, по кругу
func scriptedDraw(c *Catalog, names ...string) DrawFunc {
	var (
		mu sync.Mutex
		i  int
	)
	return func(_ []model.Symbol) model.Symbol {
		mu.Lock()
		defer mu.Unlock()

		s, _ := c.Symbol(names[i%len(names)])
		i++
		return s
	}
}
