package account_repo

import (
	"context"
	"errors"
	"fmt"

	"lion_slot/internal/model"
	"lion_slot/internal/repository"
	"lion_slot/internal/repository/pg"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	usersTable = "users"
	colLogin   = "login"
	colBalance = "balance"

	transactionsTable = "transactions"
	colType           = "type"
	colAmount         = "amount"
	colCreatedAt      = "created_at"

	spinsTable = "spins"
	colWager   = "wager"
	colPrize   = "prize"
	colProfit  = "profit"
	colSymbol1 = "symbol1"
	colSymbol2 = "symbol2"
	colSymbol3 = "symbol3"
)

type repo struct {
	pg.Conn
}

func NewAccountRepository(dbc *pgxpool.Pool) repository.AccountRepository {
	return &repo{
		Conn: pg.NewConn(dbc),
	}
}

// GetBalance - баланс игрока. Строка блокируется до конца транзакции
func (r *repo) GetBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	// Формируем запрос
	query := pg.Builder.Select(colBalance).
		From(usersTable).
		Where(sq.Eq{colLogin: login}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("select balance: %w", err)
	}

	return balance, nil
}

// ApplyDelta - атомарно прибавляет delta к балансу.
// Баланс не может уйти в минус. Суммы передаются строкой и приводятся к numeric на стороне БД
func (r *repo) ApplyDelta(ctx context.Context, login string, delta decimal.Decimal) (decimal.Decimal, error) {
	// Формируем запрос
	query := pg.Builder.Update(usersTable).
		Set(colBalance, sq.Expr(colBalance+" + ?::numeric", delta.String())).
		Where(sq.Eq{colLogin: login}).
		Where(sq.Expr(colBalance+" + ?::numeric >= 0", delta.String())).
		Suffix("RETURNING " + colBalance)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("update balance: %w", err)
	}

	// Строка не обновилась: либо нет игрока, либо не хватает средств
	if _, err := r.GetBalance(ctx, login); err != nil {
		return decimal.Zero, err
	}
	return decimal.Zero, model.ErrInsufficientFunds
}

// AppendTransaction - добавляет запись в журнал операций
func (r *repo) AppendTransaction(ctx context.Context, login string, tx *model.Transaction) error {
	// Формируем запрос
	query := pg.Builder.Insert(transactionsTable).
		Columns(colLogin, colType, colAmount, colBalance, colCreatedAt).
		Values(login, string(tx.Type), tx.Amount.String(), tx.Balance.String(), tx.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// AppendSpin - добавляет запись в журнал игр
func (r *repo) AppendSpin(ctx context.Context, login string, spin *model.SpinRecord) error {
	// Формируем запрос
	query := pg.Builder.Insert(spinsTable).
		Columns(colLogin, colWager, colPrize, colProfit, colSymbol1, colSymbol2, colSymbol3, colCreatedAt).
		Values(login, spin.Wager.String(), spin.Prize.String(), spin.Profit.String(), spin.Symbols[0], spin.Symbols[1], spin.Symbols[2], spin.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert spin: %w", err)
	}

	return nil
}

// Transactions - последние limit операций игрока, новые первыми
func (r *repo) Transactions(ctx context.Context, login string, limit int) ([]model.Transaction, error) {
	// Формируем запрос
	query := pg.Builder.Select(colType, colAmount, colBalance, colCreatedAt).
		From(transactionsTable).
		Where(sq.Eq{colLogin: login}).
		OrderBy("id DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	result := make([]model.Transaction, 0, limit)
	for rows.Next() {
		var (
			t   model.Transaction
			typ string
		)
		if err := rows.Scan(&typ, &t.Amount, &t.Balance, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = model.TransactionType(typ)
		result = append(result, t)
	}

	return result, rows.Err()
}

// Spins - последние limit игр игрока, новые первыми
func (r *repo) Spins(ctx context.Context, login string, limit int) ([]model.SpinRecord, error) {
	// Формируем запрос
	query := pg.Builder.Select(colWager, colPrize, colProfit, colSymbol1, colSymbol2, colSymbol3, colCreatedAt).
		From(spinsTable).
		Where(sq.Eq{colLogin: login}).
		OrderBy("id DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select spins: %w", err)
	}
	defer rows.Close()

	result := make([]model.SpinRecord, 0, limit)
	for rows.Next() {
		var s model.SpinRecord
		err := rows.Scan(&s.Wager, &s.Prize, &s.Profit, &s.Symbols[0], &s.Symbols[1], &s.Symbols[2], &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan spin: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}
