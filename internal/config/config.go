package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SlotConfig interface {
	// SymbolWeights сколько раз символ повторяется в популяции барабана.
	// nil означает веса по умолчанию
	SymbolWeights() map[string]int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type StorageKind string

const (
	StoragePG   StorageKind = "pg"
	StorageFile StorageKind = "file"
)

type StoreConfig interface {
	Kind() StorageKind
	FilePath() string
	SignupBonus() decimal.Decimal
}

type LogConfig interface {
	App() string
	Mode() string
	Level() string
	Dir() string
	File() bool
}
