// t2048 is a 4x4 sliding-tile merge puzzle for the terminal, SSH and HTTP.
//
// Usage:
//
//	t2048 list              - List playable modes
//	t2048 play [mode]       - Play a mode, or pick one from the menu
//	t2048 scores [mode]     - Show high scores
//	t2048 serve             - Start SSH server for remote play
//	t2048 api               - Start the HTTP session API
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Load configuration from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 4x4 sliding-tile merge puzzle.

Available commands:
  list     - Show all playable modes
  play     - Play a mode directly, or open the menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Start the HTTP session API

Examples:
  t2048 play
  t2048 play 2048_endless
  t2048 serve --ssh :2222
  t2048 api --http :8080
  t2048 scores 2048`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.db_path from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// setup builds the logger and loads, validates and applies the config.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	if flagFPS <= 0 {
		flagFPS = cfg.Display.TickRate
	}
	if flagDBPath == "" {
		flagDBPath = cfg.Storage.DBPath
	}

	appConfig = cfg
	return nil
}
