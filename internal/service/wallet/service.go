package wallet

import (
	"context"
	"time"

	"lion_slot/internal/middleware"
	"lion_slot/internal/model"
	"lion_slot/internal/repository"
	"lion_slot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

type serv struct {
	accountRepo repository.AccountRepository
	txManager   trm.Manager

	log *zap.Logger
	now func() time.Time
}

func NewWalletService(accountRepo repository.AccountRepository, txManager trm.Manager, log *zap.Logger) service.WalletService {
	return &serv{
		accountRepo: accountRepo,
		txManager:   txManager,
		log:         log.With(zap.String("component", "service/wallet")),
		now:         time.Now,
	}
}

func playerFromContext(ctx context.Context) (string, error) {
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		return "", model.ErrNoPlayerBound
	}
	return login, nil
}
