package file_repo

import (
	"context"

	"lion_slot/internal/model"
)

// CreateUser - создает запись пользователя с балансом user.Balance
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	defer s.lockTx(ctx)()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Login]; ok {
		return model.ErrUserExists
	}
	s.users[user.Login] = toRecord(user)
	s.changedLocked(ctx)

	return nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	defer s.lockTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return r.toUser(login), nil
}
