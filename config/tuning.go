package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their built-in defaults.
type Tuning struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Boss        BossConfig        `yaml:"boss"`
	Megaphone   MegaphoneConfig   `yaml:"megaphone"`
	Treadmill   TreadmillConfig   `yaml:"treadmill"`
	Progression ProgressionConfig `yaml:"progression"`
}

var defaultTuning Tuning

func currentTuning() Tuning {
	return Tuning{
		Physics:     Physics,
		Player:      Player,
		Enemy:       Enemy,
		Boss:        Boss,
		Megaphone:   Megaphone,
		Treadmill:   Treadmill,
		Progression: Progression,
	}
}

func (t Tuning) apply() {
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	Boss = t.Boss
	Megaphone = t.Megaphone
	Treadmill = t.Treadmill
	Progression = t.Progression
}

// ParseTuning decodes a tuning document on top of the built-in defaults.
func ParseTuning(data []byte) (Tuning, error) {
	t := defaultTuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

// ApplyTuning replaces the tunable globals with defaults overridden by data.
// On error the current values are left untouched.
func ApplyTuning(data []byte) error {
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.apply()
	return nil
}

// LoadTuningFile reads and applies a tuning file from disk.
func LoadTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ResetTuning restores the built-in defaults.
func ResetTuning() {
	defaultTuning.apply()
}
