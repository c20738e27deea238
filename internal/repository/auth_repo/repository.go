package auth_repo

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
	table          = "sessions"
	colSessionID   = "session_id"
	colLogin       = "login"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type repo struct {
	pg.Conn
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		Conn: pg.NewConn(dbc),
	}
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, Login, RefreshToken, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := pg.Builder.Insert(table).
		Columns(colSessionID, colLogin, colRefreshHash, colExpiredTime).
		Values(session.ID, session.Login, session.RefreshToken, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// GetSession - получить сессию по session ID, RefreshToken содержит хэш
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	// Формируем запрос
	query := pg.Builder.Select(colSessionID, colLogin, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.Session
	err = r.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(&s.ID, &s.Login, &s.RefreshToken, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	return &s, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает sessionID которую надо удалить
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := pg.Builder.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}

	return nil
}

// GetUserBySessionID - возвращает пользователя по session ID
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	// Формируем запрос
	query := pg.Builder.Select("u.login", "u.password_hash", "u.name", "u.cpf", "u.email", "u.phone", "u.balance").
		From(table + " s").
		Join("users u ON s." + colLogin + " = u.login").
		Where(sq.Eq{"s." + colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.DB(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.Login, &user.Password, &user.Name, &user.CPF, &user.Email, &user.Phone, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("select session user: %w", err)
	}

	return &user, nil
}
