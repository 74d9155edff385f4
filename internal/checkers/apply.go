package checkers

import "fmt"

// ApplyMove relocates the piece on m.From to m.To in place, removes the
// jumped enemy piece and promotes a man reaching the far row. The move is
// expected to come from LegalMoves or to have passed ValidateMove; only
// bounds and ownership are checked here.
func (b *Board) ApplyMove(m Move, side Side) error {
	if !inBounds(m.From) || !inBounds(m.To) {
		return fmt.Errorf("apply %d-%d: %w", m.From, m.To, ErrOutOfBounds)
	}
	pc := b.Squares[m.From]
	if pc == Empty || pc.Side() != side {
		return fmt.Errorf("%w: %s: no %s piece on %s", ErrInvalidMove, m, side, cellText(m.From))
	}

	fromRow, fromCol := rowOf(m.From), colOf(m.From)
	dr, dc := rowOf(m.To)-fromRow, colOf(m.To)-fromCol
	if abs(dr) == 2 && abs(dc) == 2 {
		mid := indexOf(fromRow+dr/2, fromCol+dc/2)
		if b.Squares[mid].Side() == side.Opponent() {
			b.Squares[mid] = Empty
		}
	}

	b.Squares[m.From] = Empty
	if pc.Rank() == Man && rowOf(m.To) == promotionRow(side) {
		pc = MakePiece(side, King)
	}
	b.Squares[m.To] = pc
	return nil
}

// Play validates m for the side to move, applies it and passes the turn.
// The position is left untouched when the move is rejected.
func (p *Position) Play(m Move) error {
	if err := p.Board.ValidateMove(m, p.SideToMove); err != nil {
		return err
	}
	if err := p.Board.ApplyMove(m, p.SideToMove); err != nil {
		return err
	}
	p.SideToMove = p.SideToMove.Opponent()
	return nil
}

// ApplyMove returns a copy of p with m applied and the turn passed.
func (p *Position) ApplyMove(m Move) (*Position, error) {
	np := *p
	if err := np.Board.ApplyMove(m, p.SideToMove); err != nil {
		return nil, err
	}
	np.SideToMove = p.SideToMove.Opponent()
	return &np, nil
}
