package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"lion_slot/internal/config"
)

const (
	pgDSNEnvName      = "PG_DSN"
	pgMaxConnsEnvName = "PG_MAX_CONNS"
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	cfg := &pgConfig{dsn: dsn}
	if raw := os.Getenv(pgMaxConnsEnvName); len(raw) != 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgMaxConnsEnvName, raw)
		}
		cfg.maxConns = int32(n)
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// MaxConns 0 - значение pgxpool по умолчанию
func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
