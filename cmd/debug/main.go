package main

import (
	"fmt"
	"os"
	"time"

	"checkers/internal/checkers"
)

func main() {
	pos := checkers.NewInitialPosition(checkers.Blue)
	if len(os.Args) > 1 {
		p, err := checkers.DecodePosition(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos = p
	}
	fmt.Println("Position:", pos.Encode())
	fmt.Println("Legal moves:", len(pos.Board.LegalMoves(pos.SideToMove)))
	for depth := 1; depth <= 6; depth++ {
		start := time.Now()
		n := checkers.Perft(&pos.Board, pos.SideToMove, depth)
		fmt.Printf("perft(%d) = %d (%v)\n", depth, n, time.Since(start))
	}
}
