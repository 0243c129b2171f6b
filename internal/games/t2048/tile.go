package t2048

// SpawnValue is the value placed on a freshly spawned tile.
const SpawnValue = 2

// Tile is a single grid cell. ID is fixed at board construction;
// a zero Value means the cell is empty.
type Tile struct {
	ID    int
	Value int
}

// IsEmpty reports whether the tile holds no value.
func (t *Tile) IsEmpty() bool {
	return t.Value == 0
}

// HasValue reports whether the tile holds a value.
func (t *Tile) HasValue() bool {
	return t.Value != 0
}

// SetValue replaces the tile value.
func (t *Tile) SetValue(v int) {
	t.Value = v
}

// Double doubles the value. Empty tiles stay empty.
func (t *Tile) Double() {
	t.Value *= 2
}

// Clear empties the tile.
func (t *Tile) Clear() {
	t.Value = 0
}

// CopyFrom takes the other tile's value; the ID is left untouched.
func (t *Tile) CopyFrom(other *Tile) {
	t.Value = other.Value
}

// IsEqualTo is true only when both tiles hold the same value.
func (t *Tile) IsEqualTo(other *Tile) bool {
	return t.HasValue() && other.HasValue() && t.Value == other.Value
}
