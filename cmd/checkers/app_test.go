package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(strings.NewReader(input), &out)
	argv := append([]string{"checkers", "--style", "ascii", "--log-level", "error"}, args...)
	err := a.Run(argv)
	return out.String(), err
}

func TestMovesCommand(t *testing.T) {
	out, err := run(t, "", "moves")
	require.NoError(t, err)
	require.Equal(t, "a5b4 c5d4 c5b4 e5f4 e5d4 g5h4 g5f4\n", out)

	out, err = run(t, "", "moves", "--position", "1x1x1x1x/x1x1x1x1/1x1x1x1x/8/8/o1o1o1o1/1o1o1o1o/o1o1o1o1 r", "--square", "b2")
	require.NoError(t, err)
	require.Equal(t, "b2a3 b2c3\n", out)

	_, err = run(t, "", "moves", "--square", "z9")
	require.Error(t, err)
}

func TestBestCommand(t *testing.T) {
	out, err := run(t, "", "best", "--position", "8/8/8/2x5/3o4/8/8/6o1 r", "--depth", "2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "c3e5 score="), out)

	out, err = run(t, "", "best", "--position", "8/8/8/2x5/3o4/8/8/8 r", "--strategy", "bestfirst", "--seed", "1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "c3e5 score=10"), out)
	require.Contains(t, out, "depth=10")

	out, err = run(t, "", "best", "--position", "8/8/8/2x5/3o4/8/8/8 r")
	require.NoError(t, err)
	require.Contains(t, out, "depth=6")

	_, err = run(t, "", "best", "--strategy", "alphabeta")
	require.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "", "show")
	require.NoError(t, err)
	require.Contains(t, out, "0   x   x   x   x \n")
	require.Contains(t, out, "blue to move, ongoing")

	_, err = run(t, "", "show", "--position", "bogus")
	require.Error(t, err)
}

func TestSelfplayCommand(t *testing.T) {
	out, err := run(t, "", "selfplay", "--games", "2", "--depth", "1", "--max-plies", "6", "--quiet")
	require.NoError(t, err)
	require.Contains(t, out, "game 1: draw (ply limit, 6 plies)")
	require.Contains(t, out, "red 0, blue 0, draw 2")
}

func TestPlayCommandExit(t *testing.T) {
	out, err := run(t, "exit\n", "play", "--red", "ai", "--blue", "human", "--depth", "1")
	require.NoError(t, err)
	require.Contains(t, out, " CHECKERS ")
	require.Contains(t, out, "Blue: Enter move")
}

func TestPlayCommandHumanMove(t *testing.T) {
	out, err := run(t, "a5b4\nexit\n", "play", "--depth", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Player move: a5b4")
	require.Contains(t, out, "AI move: ")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  first: red\n"), 0o644))
	out, err := run(t, "", "--config", path, "moves")
	require.NoError(t, err)
	require.Equal(t, "b2a3 b2c3 d2c3 d2e3 f2e3 f2g3 h2g3\n", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "moves")
	require.Error(t, err)
}

func TestVersusCommand(t *testing.T) {
	out, err := run(t, "", "versus", "--games", "2", "--minimax-depth", "1",
		"--bestfirst-depth", "1", "--budget", "50", "--seed", "3", "--max-plies", "4", "--quiet")
	require.NoError(t, err)
	require.Contains(t, out, "game 1: red minimax, blue bestfirst: draw (ply limit, 4 plies)")
	require.Contains(t, out, "game 2: red bestfirst, blue minimax: draw (ply limit, 4 plies)")
	require.Contains(t, out, "minimax 0, bestfirst 0, draw 2")
}

func TestPlayCommandTwoHumans(t *testing.T) {
	out, err := run(t, "a5b4\nb2a3\nexit\n", "play", "--red", "human", "--blue", "human")
	require.NoError(t, err)
	require.Contains(t, out, "Player move: a5b4")
	require.Contains(t, out, "Player move: b2a3")
	require.Equal(t, 1, strings.Count(out, "Red: Enter move"))
	require.Equal(t, 2, strings.Count(out, "Blue: Enter move"))
	require.NotContains(t, out, "AI move")
}
