package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode, or pick one from the menu",
	Long: `Start playing. Without a mode the interactive menu opens and you
return to it after every game.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back to menu (while paused or after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048 --level 3
  t2048 play 2048_endless --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
}

func runPlay(_ *cobra.Command, args []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	if len(args) == 0 {
		return runMenu(store, cfg)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 't2048 list' to see available modes", gameID)
	}
	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		return fmt.Errorf("--level must be between 1 and %d", t2048.LevelCount())
	}

	game, err := newGame(gameID, flagLevel)
	if err != nil {
		return err
	}
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runMenu loops menu -> game or scoreboard -> menu until the player quits.
func runMenu(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		case res.Selection != nil:
			game, err := newGame(res.Selection.GameID, res.Selection.Level)
			if err != nil {
				logger.Error("could not start game", "mode", res.Selection.GameID, "error", err)
				continue
			}

			// Fresh seed per game unless the player pinned one
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg); err != nil {
				logger.Error("game exited", "error", err)
			}
		}
	}
}

func newGame(gameID string, level int) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if l, ok := game.(registry.Leveled); ok && level > 0 {
		l.StartAtLevel(level)
	}
	return game, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}
