package file_repo

import (
	"context"

	"lion_slot/internal/model"
)

func (s *Store) CreateSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return model.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	defer s.lockTx(ctx)()

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	r, ok := s.users[session.Login]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return r.toUser(session.Login), nil
}
