package auth

import (
	"time"

	"lion_slot/internal/config"
	"lion_slot/internal/repository"
	"lion_slot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minLoginLen    = 3
	minPasswordLen = 4

	// bcrypt принимает не больше 72 байт
	maxPasswordBytes = 72
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	authRepo    repository.AuthRepository
	accountRepo repository.AccountRepository
	jwtConfig   config.JWTConfig
	signupBonus decimal.Decimal

	log *zap.Logger
	now func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	accountRepo repository.AccountRepository,
	jwtConfig config.JWTConfig,
	signupBonus decimal.Decimal,
	log *zap.Logger,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		authRepo:    authRepo,
		accountRepo: accountRepo,
		jwtConfig:   jwtConfig,
		signupBonus: signupBonus,
		log:         log.With(zap.String("component", "service/auth")),
		now:         time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
