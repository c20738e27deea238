package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lion_slot/internal/config"

	"gopkg.in/yaml.v3"
)

type slotYAML struct {
	Slot struct {
		Weights map[string]int `yaml:"weights"`
	} `yaml:"slot"`
}

type slotConfig struct {
	weights map[string]int
}

// NewSlotConfigFromYAML читает веса символов из секции slot.weights.
// Если файла нет, используются веса по умолчанию
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &slotConfig{}, nil
		}
		return nil, fmt.Errorf("read slot config: %w", err)
	}

	var raw slotYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	for name, count := range raw.Slot.Weights {
		if count <= 0 {
			return nil, fmt.Errorf("slot config: weight of %q must be positive", name)
		}
	}

	return &slotConfig{weights: raw.Slot.Weights}, nil
}

func (cfg *slotConfig) SymbolWeights() map[string]int {
	if len(cfg.weights) == 0 {
		return nil
	}
	out := make(map[string]int, len(cfg.weights))
	for k, v := range cfg.weights {
		out[k] = v
	}
	return out
}
