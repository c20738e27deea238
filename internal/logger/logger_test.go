package logger

import (
	"os"
	"path/filepath"
	"testing"
)

type testLogConfig struct {
	mode, level, dir string
	file             bool
}

func (c testLogConfig) App() string { return "lion_slot" }
func (c testLogConfig) Mode() string { return c.mode }
func (c testLogConfig) Level() string { return c.level }
func (c testLogConfig) Dir() string { return c.dir }
func (c testLogConfig) File() bool { return c.file }

func TestNewWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	log := New(testLogConfig{mode: ModeDev, level: "info", dir: dir, file: true})

	log.Debug("hidden")
	log.Error("round failed")
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "lion_slot_error.log"))
	if err != nil {
		t.Fatalf("read error log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("error log is empty")
	}
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	t.Parallel()

	log := New(testLogConfig{mode: ModeDev, level: "loud", dir: t.TempDir()})
	if !log.Core().Enabled(-1) {
		t.Fatal("expected debug level after invalid level")
	}
}
