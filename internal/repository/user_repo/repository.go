package user_repo

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
)

const (
	table           = "users"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colName         = "name"
	colCPF          = "cpf"
	colEmail        = "email"
	colPhone        = "phone"
	colBalance      = "balance"
)

type repo struct {
	pg.Conn
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		Conn: pg.NewConn(dbc),
	}
}

// CreateUser - создает нового пользователя в БД с начальным балансом user.Balance
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := pg.Builder.Insert(table).
		Columns(colLogin, colPasswordHash, colName, colCPF, colEmail, colPhone, colBalance).
		Values(user.Login, user.Password, user.Name, user.CPF, user.Email, user.Phone, user.Balance.String())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return model.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	// Формируем запрос
	query := pg.Builder.Select(colLogin, colPasswordHash, colName, colCPF, colEmail, colPhone, colBalance).
		From(table).
		Where(sq.Eq{colLogin: login})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.DB(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.Login, &user.Password, &user.Name, &user.CPF, &user.Email, &user.Phone, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	return &user, nil
}
