package app

import (
	"context"
	"net/http"

	authAPI "lion_slot/internal/api/auth"
	slotAPI "lion_slot/internal/api/slot"
	walletAPI "lion_slot/internal/api/wallet"
	"lion_slot/internal/config"
	"lion_slot/internal/config/env"
	"lion_slot/internal/logger"
	"lion_slot/internal/middleware"
	"lion_slot/internal/repository"
	"lion_slot/internal/repository/account_repo"
	"lion_slot/internal/repository/auth_repo"
	"lion_slot/internal/repository/file_repo"
	"lion_slot/internal/repository/stats_repo"
	"lion_slot/internal/repository/user_repo"
	"lion_slot/internal/service"
	"lion_slot/internal/service/auth"
	"lion_slot/internal/service/slot"
	"lion_slot/internal/service/wallet"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const slotConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Storage
	storeCfg  config.StoreConfig
	fileStore *file_repo.Store

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository

	// Wallet bits
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Slot bits
	slotCfg       config.SlotConfig
	catalog       *slot.Catalog
	slotStatsRepo repository.SlotStatsRepository
	slotServ      service.SlotService
	slotHand      *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(sp.LogCfg())
	}
	return sp.log
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) usesFileStore() bool {
	return sp.StoreCfg().Kind() == config.StorageFile
}

// FileStore JSON файл вместо PostgreSQL, STORAGE=file
func (sp *ServiceProvider) FileStore() *file_repo.Store {
	if sp.fileStore == nil {
		s, err := file_repo.NewStore(sp.StoreCfg().FilePath(), sp.Logger())
		if err != nil {
			panic("failed to open file store: " + err.Error())
		}
		sp.fileStore = s
	}
	return sp.fileStore
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		if n := sp.PgConfig().MaxConns(); n > 0 {
			poolCfg.MaxConns = n
		}

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.usesFileStore() {
			sp.txManager = sp.FileStore()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if sp.usesFileStore() {
			sp.authRepo = sp.FileStore()
		} else {
			sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		if sp.usesFileStore() {
			sp.userRepo = sp.FileStore()
		} else {
			sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
		}
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AccountRepo(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.usesFileStore() {
			sp.accountRepo = sp.FileStore()
		} else {
			sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx))
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.AccountRepo(ctx),
			sp.JWTCfg(),
			sp.StoreCfg().SignupBonus(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.AccountRepo(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv: sp.WalletService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML(slotConfigPath)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Catalog() *slot.Catalog {
	if sp.catalog == nil {
		c, err := slot.NewCatalog(sp.SlotCfg().SymbolWeights())
		if err != nil {
			panic("failed to build symbol catalog: " + err.Error())
		}
		sp.catalog = c
	}
	return sp.catalog
}

func (sp *ServiceProvider) SlotStatsRepository() repository.SlotStatsRepository {
	if sp.slotStatsRepo == nil {
		sp.slotStatsRepo = stats_repo.NewSlotStatsRepository(sp.Catalog().TheoreticalRTP(), 0, sp.Logger())
	}
	return sp.slotStatsRepo
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.Catalog(),
			slot.UniformDraw,
			sp.AccountRepo(ctx),
			sp.SlotStatsRepository(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Method(http.MethodGet, "/metrics", promhttp.Handler())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Дальше только с access токеном
		slotHandler := sp.SlotHandler(ctx)
		walletHandler := sp.WalletHandler(ctx)
		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			pr.Route("/slot", func(rr chi.Router) {
				rr.Post("/spin", slotHandler.Spin)
				rr.Get("/paytable", slotHandler.PayTable)
				rr.Get("/stats", slotHandler.Stats)
			})

			pr.Route("/wallet", func(rr chi.Router) {
				rr.Post("/deposit", walletHandler.Deposit)
				rr.Post("/withdraw", walletHandler.Withdraw)
				rr.Get("/balance", walletHandler.Balance)
				rr.Get("/history", walletHandler.History)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений и сбрасывает буфер логгера
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
