package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lion_slot/internal/config"

	"github.com/shopspring/decimal"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSlotConfigFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    map[string]int
		wantErr bool
	}{
		{
			name:    "weights",
			content: "slot:\n  weights:\n    Cereja: 3\n    Leão: 1\n",
			want:    map[string]int{"Cereja": 3, "Leão": 1},
		},
		{name: "no slot section", content: "other: 1\n", want: nil},
		{name: "zero weight", content: "slot:\n  weights:\n    Cereja: 0\n", wantErr: true},
		{name: "broken yaml", content: "slot: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewSlotConfigFromYAML(writeFile(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSlotConfigFromYAML: %v", err)
			}

			got := cfg.SymbolWeights()
			if len(got) != len(tt.want) {
				t.Fatalf("weights = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("weight %s = %d, want %d", k, got[k], v)
				}
			}
		})
	}
}

func TestSlotConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewSlotConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewSlotConfigFromYAML: %v", err)
	}
	if cfg.SymbolWeights() != nil {
		t.Fatal("expected default weights")
	}
}

func TestNewStoreConfig(t *testing.T) {
	tests := []struct {
		name      string
		storage   string
		bonus     string
		wantKind  config.StorageKind
		wantBonus string
		wantErr   bool
	}{
		{name: "defaults", wantKind: config.StoragePG, wantBonus: "100"},
		{name: "file store", storage: "file", bonus: "25.50", wantKind: config.StorageFile, wantBonus: "25.5"},
		{name: "no bonus", storage: "pg", bonus: "0", wantKind: config.StoragePG, wantBonus: "0"},
		{name: "unknown storage", storage: "redis", wantErr: true},
		{name: "negative bonus", bonus: "-1", wantErr: true},
		{name: "garbage bonus", bonus: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(storageEnvName, tt.storage)
			t.Setenv(signupBonusEnvName, tt.bonus)
			t.Setenv(storeFileEnvName, "")

			cfg, err := NewStoreConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStoreConfig: %v", err)
			}
			if cfg.Kind() != tt.wantKind {
				t.Errorf("kind = %s, want %s", cfg.Kind(), tt.wantKind)
			}
			if !cfg.SignupBonus().Equal(decimal.RequireFromString(tt.wantBonus)) {
				t.Errorf("bonus = %s, want %s", cfg.SignupBonus(), tt.wantBonus)
			}
			if cfg.FilePath() != defaultStoreFile {
				t.Errorf("file = %s, want %s", cfg.FilePath(), defaultStoreFile)
			}
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "")
	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error without secret")
	}

	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "")
	t.Setenv(refreshTokenDurationEnvName, "1h")
	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("NewJWTConfig: %v", err)
	}
	if cfg.AccessTokenDuration() != defaultAccessTokenDuration {
		t.Errorf("access ttl = %s", cfg.AccessTokenDuration())
	}
	if cfg.RefreshTokenDuration() != time.Hour {
		t.Errorf("refresh ttl = %s", cfg.RefreshTokenDuration())
	}

	t.Setenv(accessTokenDurationEnvName, "-5m")
	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "")
	if _, err := NewHTTPConfig(); err == nil {
		t.Fatal("expected error without port")
	}

	t.Setenv(httpPortEnvName, "8080")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("NewHTTPConfig: %v", err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Fatalf("address = %s", cfg.Address())
	}
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv(pgDSNEnvName, "")
	if _, err := NewPGConfig(); err == nil {
		t.Fatal("expected error without dsn")
	}

	t.Setenv(pgDSNEnvName, "postgres://localhost/slot")
	t.Setenv(pgMaxConnsEnvName, "")
	cfg, err := NewPGConfig()
	if err != nil {
		t.Fatalf("NewPGConfig: %v", err)
	}
	if cfg.MaxConns() != 0 {
		t.Fatalf("max conns = %d, want 0", cfg.MaxConns())
	}

	t.Setenv(pgMaxConnsEnvName, "12")
	cfg, err = NewPGConfig()
	if err != nil || cfg.MaxConns() != 12 {
		t.Fatalf("max conns = %v, err = %v", cfg, err)
	}

	t.Setenv(pgMaxConnsEnvName, "zero")
	if _, err := NewPGConfig(); err == nil {
		t.Fatal("expected error for invalid max conns")
	}
}
