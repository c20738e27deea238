package pg

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Builder squirrel с плейсхолдерами $1, $2 для pgx
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Conn общий доступ к пулу: внутри txManager.Do запросы идут в транзакцию из контекста
type Conn struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewConn(dbc *pgxpool.Pool) Conn {
	return Conn{dbc: dbc, getter: trmpgx.DefaultCtxGetter}
}

func (c Conn) DB(ctx context.Context) trmpgx.Tr {
	return c.getter.DefaultTrOrDB(ctx, c.dbc)
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
