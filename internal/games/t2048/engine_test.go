package t2048

import (
	"math/rand"
	"testing"
)

func TestInitialize(t *testing.T) {
	e := NewEngine(&seqRand{picks: []int{5}})
	res := e.Initialize()

	if countValues(res.Board) != 1 {
		t.Fatalf("initial board has %d tiles, want 1", countValues(res.Board))
	}
	if res.Board.Tile(5).Value != SpawnValue {
		t.Errorf("tile 5 = %d, want %d", res.Board.Tile(5).Value, SpawnValue)
	}
	if res.Score != 0 || res.HasEnded {
		t.Errorf("Initialize() = score %d ended %v, want 0 false", res.Score, res.HasEnded)
	}
}

func TestPerformActionDirections(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		input    [CellCount]int
		expected [CellCount]int
	}{
		{
			name:   "left",
			action: ActionLeft,
			input: [CellCount]int{
				2, 2, 0, 0,
				4, 0, 4, 0,
				2, 2, 2, 2,
				0, 0, 0, 2,
			},
			expected: [CellCount]int{
				4, 0, 0, 0,
				8, 0, 0, 0,
				4, 4, 0, 0,
				2, 0, 0, 0,
			},
		},
		{
			name:   "right",
			action: ActionRight,
			input: [CellCount]int{
				2, 2, 0, 0,
				4, 0, 4, 0,
				2, 2, 2, 2,
				0, 0, 0, 2,
			},
			expected: [CellCount]int{
				0, 0, 0, 4,
				0, 0, 0, 8,
				0, 0, 4, 4,
				0, 0, 0, 2,
			},
		},
		{
			name:   "up",
			action: ActionUp,
			input: [CellCount]int{
				2, 4, 2, 0,
				2, 0, 2, 0,
				0, 4, 2, 0,
				0, 0, 2, 2,
			},
			expected: [CellCount]int{
				4, 8, 4, 2,
				0, 0, 4, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
		},
		{
			name:   "down",
			action: ActionDown,
			input: [CellCount]int{
				2, 4, 2, 2,
				2, 0, 2, 0,
				0, 4, 2, 0,
				0, 0, 2, 0,
			},
			expected: [CellCount]int{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 4, 0,
				4, 8, 4, 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoardFromValues(tt.input)
			changed := PerformAction(b, tt.action)

			if got := b.Values(); got != tt.expected {
				t.Errorf("PerformAction(%s):\n%v\nwant\n%v", tt.action, b, NewBoardFromValues(tt.expected))
			}
			if !changed {
				t.Errorf("PerformAction(%s) should report a change", tt.action)
			}
		})
	}
}

func TestPerformActionRowWithBlockedPair(t *testing.T) {
	b := NewBoardFromValues([CellCount]int{2, 2, 8, 2})
	PerformAction(b, ActionLeft)

	if got, want := b.Rows()[0].Values(), [4]int{4, 8, 2, 0}; got != want {
		t.Errorf("row after Left = %v, want %v", got, want)
	}
}

func TestPerformActionIsDeterministic(t *testing.T) {
	input := [CellCount]int{
		2, 0, 2, 4,
		4, 4, 8, 8,
		0, 2, 0, 2,
		16, 0, 16, 16,
	}

	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		b1, b2 := NewBoardFromValues(input), NewBoardFromValues(input)
		PerformAction(b1, a)
		PerformAction(b2, a)
		if b1.Values() != b2.Values() {
			t.Errorf("%s produced different boards:\n%v\nvs\n%v", a, b1, b2)
		}
	}
}

func TestHandleMoveCompactedRow(t *testing.T) {
	b := NewBoardFromValues([CellCount]int{2})
	e := NewEngine(&seqRand{picks: []int{0}})

	res := e.HandleMove(b, ActionLeft)

	if got, want := b.Rows()[0].Values()[0], 2; got != want {
		t.Errorf("tile 0 = %d, want %d", got, want)
	}
	if res.Changed {
		t.Error("sliding a compacted row should not report a change")
	}
	if countValues(b) != 2 {
		t.Errorf("valued tiles = %d, want 2 (existing + spawned)", countValues(b))
	}
	if res.Board != b {
		t.Error("HandleMove should return the board it was given")
	}
}

func TestHandleMoveColumnMerge(t *testing.T) {
	b := NewBoardFromValues([CellCount]int{
		2, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 0, 0,
	})
	// First empty cell after the merge is index 1, outside column 0.
	e := NewEngine(&seqRand{picks: []int{0}})

	res := e.HandleMove(b, ActionUp)

	if got, want := b.Columns()[0].Values(), [4]int{4, 0, 0, 0}; got != want {
		t.Errorf("column 0 = %v, want %v", got, want)
	}
	if res.Score != 4 {
		t.Errorf("Score = %d, want 4", res.Score)
	}
	if !res.Changed || res.HasEnded {
		t.Errorf("HandleMove() changed=%v ended=%v, want true false", res.Changed, res.HasEnded)
	}
}

func TestHandleMoveIgnoresUnknownAction(t *testing.T) {
	input := [CellCount]int{2, 2, 0, 0, 4}
	b := NewBoardFromValues(input)
	r := &seqRand{}
	e := NewEngine(r)

	for _, a := range []Action{ActionNone, Action(42), Action(-1)} {
		res := e.HandleMove(b, a)
		if b.Values() != input {
			t.Errorf("action %d changed the board", a)
		}
		if res.Score != 4 || res.HasEnded {
			t.Errorf("action %d: score %d ended %v, want 4 false", a, res.Score, res.HasEnded)
		}
	}
	if r.calls != 0 {
		t.Errorf("unknown actions spawned %d tiles", r.calls)
	}
}

func TestHandleMoveAfterGameEnded(t *testing.T) {
	input := [CellCount]int{
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 4,
		4, 2, 4, 2,
	}
	b := NewBoardFromValues(input)
	r := &seqRand{}
	e := NewEngine(r)

	res := e.HandleMove(b, ActionUp)

	if !res.HasEnded {
		t.Error("HasEnded should stay true")
	}
	if b.Values() != input || r.calls != 0 {
		t.Error("moves on an ended board must not change it")
	}
	if res.Score != 4 {
		t.Errorf("Score = %d, want 4", res.Score)
	}
}

func TestSpawnPolicy(t *testing.T) {
	input := [CellCount]int{4, 2}

	always := NewBoardFromValues(input)
	NewEngine(&seqRand{}).HandleMove(always, ActionLeft)
	if countValues(always) != 3 {
		t.Errorf("SpawnAlways: valued tiles = %d, want 3", countValues(always))
	}

	onChange := NewBoardFromValues(input)
	r := &seqRand{}
	res := NewEngine(r, WithSpawnPolicy(SpawnOnChange)).HandleMove(onChange, ActionLeft)
	if onChange.Values() != input || r.calls != 0 {
		t.Error("SpawnOnChange should not spawn after a no-op move")
	}
	if res.Changed {
		t.Error("no-op move reported as changed")
	}

	moved := NewBoardFromValues(input)
	NewEngine(&seqRand{}, WithSpawnPolicy(SpawnOnChange)).HandleMove(moved, ActionRight)
	if countValues(moved) != 3 {
		t.Errorf("SpawnOnChange after a real move: valued tiles = %d, want 3", countValues(moved))
	}
}

func TestHasGameEnded(t *testing.T) {
	tests := []struct {
		name     string
		values   [CellCount]int
		expected bool
	}{
		{
			name: "no moves left",
			values: [CellCount]int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
		{
			name: "checkerboard",
			values: [CellCount]int{
				2, 4, 2, 4,
				4, 2, 4, 2,
				2, 4, 2, 4,
				4, 2, 4, 2,
			},
			expected: true,
		},
		{
			name: "horizontal merge available",
			values: [CellCount]int{
				2, 2, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: false,
		},
		{
			name: "vertical merge available",
			values: [CellCount]int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 4096,
			},
			expected: false,
		},
		{
			name: "all equal",
			values: [CellCount]int{
				2, 2, 2, 2,
				2, 2, 2, 2,
				2, 2, 2, 2,
				2, 2, 2, 2,
			},
			expected: false,
		},
		{
			name: "one empty cell",
			values: [CellCount]int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 0, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoardFromValues(tt.values)
			if got := HasGameEnded(b); got != tt.expected {
				t.Errorf("HasGameEnded() = %v, want %v", got, tt.expected)
			}
			if b.Values() != tt.values {
				t.Error("HasGameEnded mutated the board")
			}
		})
	}
}

func TestScore(t *testing.T) {
	if got := Score(NewBoard()); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}

	b := NewBoardFromValues([CellCount]int{
		2, 4, 8, 16,
		32, 64, 128, 256,
		512, 1024, 2048, 4,
		8, 16, 32, 64,
	})
	if got := Score(b); got != 2048 {
		t.Errorf("Score = %d, want 2048", got)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
	}{
		{"up", ActionUp},
		{"Down", ActionDown},
		{" left ", ActionLeft},
		{"RIGHT", ActionRight},
		{"ArrowUp", ActionUp},
		{"ArrowDown", ActionDown},
		{"ArrowLeft", ActionLeft},
		{"ArrowRight", ActionRight},
		{"", ActionNone},
		{"jump", ActionNone},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseSpawnPolicy(t *testing.T) {
	for in, want := range map[string]SpawnPolicy{
		"":          SpawnAlways,
		"always":    SpawnAlways,
		"on_change": SpawnOnChange,
	} {
		got, err := ParseSpawnPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseSpawnPolicy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseSpawnPolicy("sometimes"); err == nil {
		t.Error("ParseSpawnPolicy should reject unknown names")
	}
}

func TestBoardInvariantsUnderRandomPlay(t *testing.T) {
	actions := []Action{ActionUp, ActionLeft, ActionDown, ActionRight}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		e := NewEngine(rng)
		res := e.Initialize()

		for step := 0; step < 2000 && !res.HasEnded; step++ {
			res = e.HandleMove(res.Board, actions[rng.Intn(len(actions))])

			for i, tile := range res.Board.Tiles() {
				if tile.ID != i {
					t.Fatalf("seed %d step %d: tile %d has ID %d", seed, step, i, tile.ID)
				}
				if tile.Value != 0 && !IsTileValue(tile.Value) {
					t.Fatalf("seed %d step %d: tile %d has value %d", seed, step, i, tile.Value)
				}
			}
			if res.Score != Score(res.Board) {
				t.Fatalf("seed %d step %d: score %d, board max %d", seed, step, res.Score, Score(res.Board))
			}
		}
	}
}
