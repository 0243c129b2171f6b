package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	levels := make([]LevelConfig, 0, len(t2048.DefaultLevels))
	for _, lvl := range t2048.DefaultLevels {
		levels = append(levels, LevelConfig{Name: lvl.Name, Target: lvl.Target})
	}

	return Config{
		Engine: EngineConfig{
			SpawnPolicy: string(t2048.SpawnAlways),
		},
		Campaign: CampaignConfig{
			Levels: levels,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/t2048_host_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		HTTP: HTTPConfig{
			Address:    ":8080",
			SessionTTL: time.Hour,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
