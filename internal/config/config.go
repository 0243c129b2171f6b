// Package config provides YAML-based configuration loading for the
// 2048 engine, its campaign and the servers around it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config contains all configuration for t2048.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Campaign CampaignConfig `yaml:"campaign"`
	Display  DisplayConfig  `yaml:"display"`
	Storage  StorageConfig  `yaml:"storage"`
	SSH      SSHConfig      `yaml:"ssh"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// EngineConfig defines rule engine parameters.
type EngineConfig struct {
	// SpawnPolicy is "always" (spawn after every accepted action) or
	// "on_change" (spawn only when the action moved something).
	SpawnPolicy string `yaml:"spawn_policy"`
}

// CampaignConfig defines the campaign level table.
type CampaignConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig is a single campaign level.
type LevelConfig struct {
	Name   string `yaml:"name"`
	Target int    `yaml:"target"`
}

// DisplayConfig defines terminal rendering parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // empty means ~/.t2048/scores.db
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// HTTPConfig defines the HTTP session API.
type HTTPConfig struct {
	Address    string        `yaml:"address"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Validate reports every problem found in cfg.
func (c Config) Validate() error {
	var errs []error

	if _, err := t2048.ParseSpawnPolicy(c.Engine.SpawnPolicy); err != nil {
		errs = append(errs, fmt.Errorf("engine.spawn_policy: %w", err))
	}
	for i, lvl := range c.Campaign.Levels {
		if !t2048.IsTileValue(lvl.Target) || lvl.Target < 2*t2048.SpawnValue {
			errs = append(errs, fmt.Errorf("campaign.levels[%d]: target %d is not a reachable tile", i, lvl.Target))
		}
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate: must be positive, got %d", c.Display.TickRate))
	}
	if c.HTTP.SessionTTL < 0 {
		errs = append(errs, fmt.Errorf("http.session_ttl: must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Levels converts the campaign table to engine levels.
func (c Config) Levels() []t2048.Level {
	levels := make([]t2048.Level, 0, len(c.Campaign.Levels))
	for i, lvl := range c.Campaign.Levels {
		levels = append(levels, t2048.Level{ID: i + 1, Name: lvl.Name, Target: lvl.Target})
	}
	return levels
}

// Apply installs the engine and campaign settings into the game package.
// An empty campaign keeps the built-in levels.
func (c Config) Apply() error {
	policy, err := t2048.ParseSpawnPolicy(c.Engine.SpawnPolicy)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	t2048.SetSpawnPolicy(policy)

	if len(c.Campaign.Levels) == 0 {
		return nil
	}
	if err := t2048.SetLevels(c.Levels()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
