package t2048

// seqRand returns queued picks (modulo n) and counts calls.
type seqRand struct {
	picks []int
	calls int
}

func (r *seqRand) Intn(n int) int {
	r.calls++
	if len(r.picks) == 0 {
		return 0
	}
	p := r.picks[0]
	r.picks = r.picks[1:]
	return p % n
}

func lineOf(values [BoardSize]int) Line {
	var l Line
	for i, v := range values {
		l[i] = &Tile{ID: i, Value: v}
	}
	return l
}

func countValues(b *Board) int {
	return CellCount - b.EmptyCount()
}
