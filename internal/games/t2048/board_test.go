package t2048

import "testing"

func TestEmptyTiles(t *testing.T) {
	tiles := EmptyTiles()
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("tile %d has ID %d", i, tile.ID)
		}
		if tile.HasValue() {
			t.Errorf("tile %d should be empty, got %d", i, tile.Value)
		}
	}
}

func TestRowsAndColumns(t *testing.T) {
	b := NewBoard()

	for r, row := range b.Rows() {
		for c, tile := range row {
			if want := r*BoardSize + c; tile.ID != want {
				t.Errorf("Rows()[%d][%d].ID = %d, want %d", r, c, tile.ID, want)
			}
		}
	}

	for c, col := range b.Columns() {
		for r, tile := range col {
			if want := r*BoardSize + c; tile.ID != want {
				t.Errorf("Columns()[%d][%d].ID = %d, want %d", c, r, tile.ID, want)
			}
		}
	}
}

func TestLinesAreLiveReferences(t *testing.T) {
	b := NewBoard()

	b.Rows()[1][2].SetValue(8)
	if b.Tile(6).Value != 8 {
		t.Errorf("row view write not visible on board, tile 6 = %d", b.Tile(6).Value)
	}

	b.Columns()[3][2].SetValue(16)
	if b.Tile(11).Value != 16 {
		t.Errorf("column view write not visible on board, tile 11 = %d", b.Tile(11).Value)
	}
}

func TestReversedDoesNotAffectLaterViews(t *testing.T) {
	b := NewBoard()
	rev := b.Rows()[0].Reversed()
	if rev[0].ID != 3 {
		t.Errorf("Reversed()[0].ID = %d, want 3", rev[0].ID)
	}

	if got := b.Rows()[0][0].ID; got != 0 {
		t.Errorf("fresh Rows()[0][0].ID = %d, want 0", got)
	}
}

func TestSpawnRandomTile(t *testing.T) {
	b := NewBoardFromValues([CellCount]int{
		2, 0, 4, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	// Empty cells in order are indices 1, 3, 4, ...; pick the third.
	r := &seqRand{picks: []int{2}}
	if got := b.SpawnRandomTile(r); got != b {
		t.Error("SpawnRandomTile should return the board")
	}

	if b.Tile(4).Value != SpawnValue {
		t.Errorf("tile 4 = %d, want %d", b.Tile(4).Value, SpawnValue)
	}
	if countValues(b) != 3 {
		t.Errorf("valued tiles = %d, want 3", countValues(b))
	}
}

func TestSpawnRandomTileOnFullBoard(t *testing.T) {
	var values [CellCount]int
	for i := range values {
		values[i] = 2 << (i % 3)
	}
	b := NewBoardFromValues(values)
	r := &seqRand{}

	b.SpawnRandomTile(r)

	if b.Values() != values {
		t.Error("spawn on a full board should not change it")
	}
	if r.calls != 0 {
		t.Errorf("spawn on a full board drew %d random numbers", r.calls)
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	if b.IsFull() {
		t.Error("empty board reported full")
	}

	for i := range CellCount {
		b.Tile(i).SetValue(2)
	}
	if !b.IsFull() {
		t.Error("filled board not reported full")
	}

	b.Tile(9).Clear()
	if b.IsFull() {
		t.Error("board with one gap reported full")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoardFromValues([CellCount]int{
		2, 0, 0, 4,
		0, 0, 0, 0,
		0, 16, 0, 0,
		0, 0, 0, 2048,
	})

	want := "2 . . 4\n. . . .\n. 16 . .\n. . . 2048"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
