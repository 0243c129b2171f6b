package t2048

import (
	"strconv"
	"strings"
)

const (
	// BoardSize is the board dimension.
	BoardSize = 4
	// CellCount is the number of tiles on a board.
	CellCount = BoardSize * BoardSize
)

// Rand is the only source of entropy used by the engine.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Line is one row or column ordered from the movement target to the far end.
// Its entries point into the owning board.
type Line [BoardSize]*Tile

// Reversed returns a new line with the opposite orientation.
func (l Line) Reversed() Line {
	var out Line
	for i := range BoardSize {
		out[i] = l[BoardSize-1-i]
	}
	return out
}

// Values returns the tile values of the line.
func (l Line) Values() [BoardSize]int {
	var out [BoardSize]int
	for i, t := range l {
		out[i] = t.Value
	}
	return out
}

// Board is a fixed 4x4 grid stored row-major: index = row*4 + col.
type Board struct {
	tiles [CellCount]Tile
}

// EmptyTiles returns 16 empty tiles with ids 0..15.
func EmptyTiles() [CellCount]Tile {
	var tiles [CellCount]Tile
	for i := range tiles {
		tiles[i] = Tile{ID: i}
	}
	return tiles
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{tiles: EmptyTiles()}
}

// NewBoardFromValues creates a board with the given row-major values.
// Zero marks an empty cell.
func NewBoardFromValues(values [CellCount]int) *Board {
	b := NewBoard()
	for i, v := range values {
		b.tiles[i].Value = v
	}
	return b
}

// Tile returns a pointer to the tile at row-major index i.
func (b *Board) Tile(i int) *Tile {
	return &b.tiles[i]
}

// Tiles returns a copy of all tiles in index order.
func (b *Board) Tiles() [CellCount]Tile {
	return b.tiles
}

// Values returns the tile values in row-major order.
func (b *Board) Values() [CellCount]int {
	var out [CellCount]int
	for i := range b.tiles {
		out[i] = b.tiles[i].Value
	}
	return out
}

// Grid returns the values as rows of columns.
func (b *Board) Grid() [BoardSize][BoardSize]int {
	var out [BoardSize][BoardSize]int
	for i := range b.tiles {
		out[i/BoardSize][i%BoardSize] = b.tiles[i].Value
	}
	return out
}

// SpawnRandomTile places SpawnValue on an empty tile chosen uniformly
// through r. A full board is left as is.
func (b *Board) SpawnRandomTile(r Rand) *Board {
	empty := make([]*Tile, 0, CellCount)
	for i := range b.tiles {
		if b.tiles[i].IsEmpty() {
			empty = append(empty, &b.tiles[i])
		}
	}
	if len(empty) == 0 {
		return b
	}

	empty[r.Intn(len(empty))].SetValue(SpawnValue)
	return b
}

// IsFull reports whether every tile has a value.
func (b *Board) IsFull() bool {
	for i := range b.tiles {
		if b.tiles[i].IsEmpty() {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty tiles.
func (b *Board) EmptyCount() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].IsEmpty() {
			n++
		}
	}
	return n
}

// Rows returns the four rows, left to right. Built fresh on every call.
func (b *Board) Rows() [BoardSize]Line {
	var rows [BoardSize]Line
	for r := range BoardSize {
		for c := range BoardSize {
			rows[r][c] = &b.tiles[r*BoardSize+c]
		}
	}
	return rows
}

// Columns returns the four columns, top to bottom. Built fresh on every call.
func (b *Board) Columns() [BoardSize]Line {
	var cols [BoardSize]Line
	for c := range BoardSize {
		for r := range BoardSize {
			cols[c][r] = &b.tiles[r*BoardSize+c]
		}
	}
	return cols
}

// String renders the board as four lines of values, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, t := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(t.Value))
		}
	}
	return sb.String()
}
