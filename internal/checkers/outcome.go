package checkers

// Outcome reports the game state from the move lists of both sides: a side
// without moves loses, and when neither side can move the game is drawn.
func (b *Board) Outcome() Outcome {
	redCan := b.HasMoves(Red)
	blueCan := b.HasMoves(Blue)
	switch {
	case !redCan && !blueCan:
		return Draw
	case !redCan:
		return BlueWins
	case !blueCan:
		return RedWins
	}
	return Ongoing
}

// Winner is the winning side of a decided outcome, NoSide otherwise.
func (o Outcome) Winner() Side {
	switch o {
	case RedWins:
		return Red
	case BlueWins:
		return Blue
	}
	return NoSide
}

// Loss is the outcome where side has lost.
func Loss(side Side) Outcome {
	if side == Red {
		return BlueWins
	}
	return RedWins
}
