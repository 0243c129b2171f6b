package t2048

// candidate pairs two positions of a line. open is the gap condition,
// evaluated once when the candidate list is built.
type candidate struct {
	first, second int
	open          bool
}

// candidates builds the six position pairs in resolution order.
// Gap conditions are frozen against the line as it is now; occupancy and
// equality are checked live when each candidate is applied.
func candidates(l Line) [6]candidate {
	return [6]candidate{
		{first: 0, second: 1, open: true},
		{first: 0, second: 2, open: l[1].IsEmpty()},
		{first: 0, second: 3, open: l[1].IsEmpty() && l[2].IsEmpty()},
		{first: 1, second: 2, open: true},
		{first: 1, second: 3, open: l[2].IsEmpty()},
		{first: 2, second: 3, open: true},
	}
}

func canMove(l Line, c candidate) bool {
	return c.open && l[c.first].IsEmpty() && l[c.second].HasValue()
}

func canMerge(l Line, c candidate) bool {
	return c.open && l[c.first].IsEqualTo(l[c.second])
}

// movePass applies one frozen pass of slides and reports whether anything moved.
func movePass(l Line) bool {
	moved := false
	for _, c := range candidates(l) {
		if !canMove(l, c) {
			continue
		}
		l[c.first].CopyFrom(l[c.second])
		l[c.second].Clear()
		moved = true
	}
	return moved
}

// Move slides values toward l[0] without merging, keeping their order.
// A single pass leaves a gap for lines like [_ _ a b], so passes repeat
// until nothing moves.
func Move(l Line) {
	for movePass(l) {
	}
}

// SimulateMove reports whether Move would change l. l is not modified.
func SimulateMove(l Line) bool {
	for _, c := range candidates(l) {
		if canMove(l, c) {
			return true
		}
	}
	return false
}

// Merge doubles l[i] and clears l[j] for every eligible equal pair, in one pass.
// Each pair is tried once, so [2 2 2 2] becomes [4 _ 4 _], never a single 8.
func Merge(l Line) {
	for _, c := range candidates(l) {
		if !canMerge(l, c) {
			continue
		}
		l[c.first].Double()
		l[c.second].Clear()
	}
}

// SimulateMerge reports whether Merge would change l. l is not modified.
func SimulateMerge(l Line) bool {
	for _, c := range candidates(l) {
		if canMerge(l, c) {
			return true
		}
	}
	return false
}
