package file_repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"lion_slot/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type txKey struct{}

// Store хранит всех пользователей в одном JSON файле.
// Реализует репозитории пользователей, сессий и аккаунтов, а также trm.Manager:
// транзакции выполняются по одной, при ошибке состояние откатывается.
// Операции с пользователями вне транзакции ждут её завершения
// и не видят незафиксированных изменений.
// Сессии живут только в памяти
type Store struct {
	path string
	log  *zap.Logger

	txMu sync.Mutex // Одна транзакция за раз, её видят только изнутри

	mu       sync.RWMutex
	users    map[string]record
	sessions map[string]model.Session
	dirty    bool // Есть изменения, не записанные на диск
}

var _ trm.Manager = (*Store)(nil)

// NewStore открывает файл. Отсутствующий файл - пустое хранилище
func NewStore(path string, log *zap.Logger) (*Store, error) {
	s := &Store{
		path:     path,
		log:      log.With(zap.String("component", "repository/file"), zap.String("path", path)),
		users:    make(map[string]record),
		sessions: make(map[string]model.Session),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	for login, r := range s.users {
		if r.HistoricoTransacoes == nil {
			r.HistoricoTransacoes = []transactionJSON{}
		}
		if r.HistoricoJogadas == nil {
			r.HistoricoJogadas = []spinJSON{}
		}
		s.users[login] = r
	}

	return s, nil
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snapshot)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()

	return nil
}

func (s *Store) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// lockTx занимает txMu для операции вне транзакции.
// Внутри транзакции блокировка уже у Do
func (s *Store) lockTx(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// snapshot копирует записи по значению. Истории только дописываются,
// поэтому при откате достаточно вернуть старые длины слайсов
func (s *Store) snapshot() map[string]record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]record, len(s.users))
	for k, v := range s.users {
		out[k] = v
	}
	return out
}

func (s *Store) restore(snapshot map[string]record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snapshot
}

// changedLocked отмечает изменение. Вне транзакции пишем на диск сразу
func (s *Store) changedLocked(ctx context.Context) {
	s.dirty = true
	if !inTx(ctx) {
		s.flushLocked()
	}
}

// flushLocked пишет файл целиком через временный файл.
// Ошибка записи не откатывает состояние в памяти: пишем предупреждение
// и повторяем при следующем изменении
func (s *Store) flushLocked() {
	if !s.dirty {
		return
	}
	if err := s.writeFile(); err != nil {
		s.log.Warn("failed to persist store, will retry on next change", zap.Error(err))
		return
	}
	s.dirty = false
}

func (s *Store) writeFile() error {
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}

	return nil
}

// Dirty есть ли изменения, не записанные на диск
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}
