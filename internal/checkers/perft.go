package checkers

// Perft counts the leaf positions reachable in exactly depth plies. A side
// with no moves ends its line early and contributes nothing.
func Perft(b *Board, side Side, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range b.LegalMoves(side) {
		child := b.Clone()
		if err := child.ApplyMove(m, side); err != nil {
			continue
		}
		nodes += Perft(child, side.Opponent(), depth-1)
	}
	return nodes
}
