package t2048

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
	}{
		{"adjacent pair", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}},
		{"four equal merge pairwise", [4]int{2, 2, 2, 2}, [4]int{4, 0, 4, 0}},
		{"three equal merge once", [4]int{4, 4, 4, 0}, [4]int{8, 0, 4, 0}},
		{"pair across full gap", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}},
		{"pair across single gap", [4]int{0, 2, 0, 2}, [4]int{0, 4, 0, 0}},
		{"gap pair wins over trailing", [4]int{2, 0, 2, 2}, [4]int{4, 0, 0, 2}},
		{"blocked by different value", [4]int{2, 2, 8, 2}, [4]int{4, 0, 8, 2}},
		{"no equal neighbours", [4]int{2, 4, 2, 4}, [4]int{2, 4, 2, 4}},
		{"empty line", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lineOf(tt.input)
			Merge(l)
			if got := l.Values(); got != tt.expected {
				t.Errorf("Merge(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
	}{
		{"single tile at far end", [4]int{0, 0, 0, 2}, [4]int{2, 0, 0, 0}},
		{"already compact", [4]int{4, 2, 0, 0}, [4]int{4, 2, 0, 0}},
		{"scattered", [4]int{0, 2, 0, 4}, [4]int{2, 4, 0, 0}},
		{"trailing pair", [4]int{0, 0, 2, 4}, [4]int{2, 4, 0, 0}},
		{"inner gap", [4]int{2, 0, 4, 0}, [4]int{2, 4, 0, 0}},
		{"leading gap", [4]int{0, 8, 2, 0}, [4]int{8, 2, 0, 0}},
		{"three after gap", [4]int{0, 2, 4, 8}, [4]int{2, 4, 8, 0}},
		{"equal values do not merge", [4]int{0, 2, 0, 2}, [4]int{2, 2, 0, 0}},
		{"full line", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}},
		{"empty line", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lineOf(tt.input)
			Move(l)
			if got := l.Values(); got != tt.expected {
				t.Errorf("Move(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMergeThenMoveCascade(t *testing.T) {
	// [2,2,2,2] must end as [4,4,_,_], never [8,_,_,_] or [4,2,2,_]
	l := lineOf([4]int{2, 2, 2, 2})
	Merge(l)
	Move(l)

	if got, want := l.Values(), [4]int{4, 4, 0, 0}; got != want {
		t.Errorf("merge+move [2 2 2 2] = %v, want %v", got, want)
	}
}

func TestMoveKeepsTileIdentity(t *testing.T) {
	l := lineOf([4]int{0, 0, 0, 8})
	Move(l)

	for i, tile := range l {
		if tile.ID != i {
			t.Errorf("tile at %d has ID %d after move", i, tile.ID)
		}
	}
}

func TestSimulateMove(t *testing.T) {
	tests := []struct {
		input    [4]int
		expected bool
	}{
		{[4]int{2, 4, 8, 16}, false},
		{[4]int{2, 0, 0, 0}, false},
		{[4]int{0, 0, 0, 0}, false},
		{[4]int{0, 0, 0, 2}, true},
		{[4]int{2, 0, 4, 0}, true},
	}

	for _, tt := range tests {
		l := lineOf(tt.input)
		if got := SimulateMove(l); got != tt.expected {
			t.Errorf("SimulateMove(%v) = %v, want %v", tt.input, got, tt.expected)
		}
		if l.Values() != tt.input {
			t.Errorf("SimulateMove(%v) mutated the line to %v", tt.input, l.Values())
		}
	}
}

func TestSimulateMerge(t *testing.T) {
	tests := []struct {
		input    [4]int
		expected bool
	}{
		{[4]int{2, 4, 2, 4}, false},
		{[4]int{2, 4, 8, 16}, false},
		{[4]int{0, 0, 0, 0}, false},
		{[4]int{2, 0, 0, 2}, true},
		{[4]int{2, 4, 4, 8}, true},
		{[4]int{2, 2, 2, 2}, true},
	}

	for _, tt := range tests {
		l := lineOf(tt.input)
		if got := SimulateMerge(l); got != tt.expected {
			t.Errorf("SimulateMerge(%v) = %v, want %v", tt.input, got, tt.expected)
		}
		if l.Values() != tt.input {
			t.Errorf("SimulateMerge(%v) mutated the line to %v", tt.input, l.Values())
		}
	}
}

func TestTileOperations(t *testing.T) {
	a := &Tile{ID: 3}
	b := &Tile{ID: 7, Value: 4}

	if !a.IsEmpty() || a.HasValue() {
		t.Error("zero tile should be empty")
	}

	a.Double()
	if !a.IsEmpty() {
		t.Error("Double on an empty tile should keep it empty")
	}
	if a.IsEqualTo(&Tile{}) {
		t.Error("two empty tiles are not equal")
	}

	a.CopyFrom(b)
	if a.Value != 4 || a.ID != 3 {
		t.Errorf("CopyFrom: got ID %d value %d, want ID 3 value 4", a.ID, a.Value)
	}
	if !a.IsEqualTo(b) {
		t.Error("tiles with the same value should be equal")
	}

	a.Double()
	if a.Value != 8 || a.IsEqualTo(b) {
		t.Errorf("Double: got %d, want 8", a.Value)
	}

	a.Clear()
	if a.HasValue() {
		t.Error("Clear should empty the tile")
	}

	a.SetValue(2)
	if a.Value != 2 {
		t.Errorf("SetValue: got %d, want 2", a.Value)
	}
}
