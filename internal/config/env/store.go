package env

import (
	"fmt"
	"os"

	"lion_slot/internal/config"

	"github.com/shopspring/decimal"
)

const (
	storageEnvName     = "STORAGE"
	storeFileEnvName   = "STORE_FILE"
	signupBonusEnvName = "SIGNUP_BONUS"

	defaultStoreFile = "data/users.json"
)

// Бонус при регистрации по умолчанию
var defaultSignupBonus = decimal.NewFromInt(100)

type storeConfig struct {
	kind        config.StorageKind
	filePath    string
	signupBonus decimal.Decimal
}

func NewStoreConfig() (config.StoreConfig, error) {
	kind := config.StorageKind(os.Getenv(storageEnvName))
	switch kind {
	case "":
		kind = config.StoragePG
	case config.StoragePG, config.StorageFile:
	default:
		return nil, fmt.Errorf("unknown storage %q", kind)
	}

	filePath := os.Getenv(storeFileEnvName)
	if len(filePath) == 0 {
		filePath = defaultStoreFile
	}

	bonus := defaultSignupBonus
	if raw := os.Getenv(signupBonusEnvName); len(raw) != 0 {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid signup bonus: %w", err)
		}
		if parsed.IsNegative() {
			return nil, fmt.Errorf("signup bonus must not be negative")
		}
		bonus = parsed
	}

	return &storeConfig{
		kind:        kind,
		filePath:    filePath,
		signupBonus: bonus,
	}, nil
}

func (cfg *storeConfig) Kind() config.StorageKind {
	return cfg.kind
}

func (cfg *storeConfig) FilePath() string {
	return cfg.filePath
}

func (cfg *storeConfig) SignupBonus() decimal.Decimal {
	return cfg.signupBonus
}
