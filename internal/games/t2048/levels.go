// Package t2048 implements the sliding-tile merge puzzle on a 4x4 grid:
// the rule engine (tiles, board, line merge/slide, game-over detection)
// and a playable game with campaign and endless modes on top of it.
package t2048

import "fmt"

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int // Tile value that clears the level
}

// DefaultLevels is the built-in campaign.
var DefaultLevels = []Level{
	{ID: 1, Name: "First Steps", Target: 64},
	{ID: 2, Name: "Warm-up", Target: 128},
	{ID: 3, Name: "Getting Started", Target: 256},
	{ID: 4, Name: "Building Momentum", Target: 512},
	{ID: 5, Name: "The Climb", Target: 1024},
	{ID: 6, Name: "Classic 2048", Target: 2048},
	{ID: 7, Name: "Beyond Limits", Target: 4096},
	{ID: 8, Name: "Master Class", Target: 8192},
	{ID: 9, Name: "Grandmaster", Target: 16384},
	{ID: 10, Name: "Ultimate Champion", Target: 32768},
}

// Levels is the active campaign. Replace it with SetLevels.
var Levels = DefaultLevels

// SetLevels replaces the campaign. Targets must be powers of two >= 4.
func SetLevels(levels []Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("t2048: campaign needs at least one level")
	}
	for i, lvl := range levels {
		if !IsTileValue(lvl.Target) || lvl.Target < 2*SpawnValue {
			return fmt.Errorf("t2048: level %d target %d is not a reachable tile", i+1, lvl.Target)
		}
	}
	Levels = levels
	return nil
}

// IsTileValue reports whether v is a power of two >= 2.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
