package engine

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// listState is a State that only enumerates, so Random must use AllActions.
type listState struct {
	actions []int
}

func (s listState) AllActions() []int { return s.actions }
func (s listState) Apply(int) error   { return nil }

func chiSquareBelowCritical(t *testing.T, counts map[int]float64, categories int, draws int) {
	t.Helper()

	obs := make([]float64, categories)
	exp := make([]float64, categories)
	for i := range categories {
		obs[i] = counts[i]
		exp[i] = float64(draws) / float64(categories)
	}

	chi := stat.ChiSquare(obs, exp)
	critical := distuv.ChiSquared{K: float64(categories - 1)}.Quantile(0.999)
	assert.Less(t, chi, critical, "distribution is not uniform: %v", obs)
}

func TestRandomUniformOverEnumeration(t *testing.T) {
	const draws = 50000
	s := listState{actions: []int{0, 1, 2, 3, 4}}
	r := NewRandom[int](rand.New(rand.NewSource(11)))

	counts := make(map[int]float64)
	for range draws {
		a, ok, err := r.NextAction(s)
		require.NoError(t, err)
		require.True(t, ok)
		counts[a]++
	}

	chiSquareBelowCritical(t, counts, len(s.actions), draws)
}

func TestRandomNoAction(t *testing.T) {
	r := NewRandom[int](rand.New(rand.NewSource(1)))

	a, ok, err := r.NextAction(listState{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, a)
}

func TestRandomEnvironmentUniform(t *testing.T) {
	const draws = 60000
	board := t2048.Board{
		{2, 4, 2, 4},
		{4, 0, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 0},
	}
	s := t2048.NewGameFromBoard(board, t2048.Environment)
	legal := s.AllActions()
	require.Len(t, legal, 6)

	index := make(map[t2048.Action]int, len(legal))
	for i, a := range legal {
		index[a] = i
	}

	r := NewRandom[t2048.Action](rand.New(rand.NewSource(5)))
	counts := make(map[int]float64)
	for range draws {
		a, ok, err := r.NextAction(s)
		require.NoError(t, err)
		require.True(t, ok)
		i, found := index[a]
		require.True(t, found, "action %v is not in the enumeration", a)
		counts[i]++
	}

	chiSquareBelowCritical(t, counts, len(legal), draws)
}

func TestRandomMoverUsesLegalSet(t *testing.T) {
	s := t2048.NewGameFromBoard(t2048.Board{{2, 0, 0, 0}}, t2048.Mover)
	r := NewRandom[t2048.Action](rand.New(rand.NewSource(2)))

	seen := make(map[t2048.Action]bool)
	for range 200 {
		a, ok, err := r.NextAction(s)
		require.NoError(t, err)
		require.True(t, ok)
		seen[a] = true
	}

	assert.Equal(t, map[t2048.Action]bool{t2048.Down: true, t2048.Right: true}, seen)
}

func TestHumanReprompts(t *testing.T) {
	var diag bytes.Buffer
	in := NewScannerSource(strings.NewReader("north\n\n  l \n"), nil)
	h := NewHuman[t2048.PlayerAction](in, t2048.ParsePlayerAction, WithDiagnostics[t2048.PlayerAction](&diag))

	a, ok, err := h.NextAction(nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, t2048.Left, a)
	assert.Equal(t, 2, strings.Count(diag.String(), "Could not parse action"))
}

func TestHumanExhaustedInput(t *testing.T) {
	in := NewScannerSource(strings.NewReader("bogus\n"), nil)
	h := NewHuman[t2048.PlayerAction](in, t2048.ParsePlayerAction)

	_, ok, err := h.NextAction(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingSource struct{}

func (failingSource) ReadLine(string) (string, error) { return "", errors.New("tty gone") }

func TestHumanReadFailure(t *testing.T) {
	h := NewHuman[int](failingSource{}, strconv.Atoi)

	_, ok, err := h.NextAction(nil)
	require.Error(t, err)
	assert.False(t, ok)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestScannerSourcePrompt(t *testing.T) {
	var out bytes.Buffer
	src := NewScannerSource(strings.NewReader("up\n"), &out)

	line, err := src.ReadLine("move> ")
	require.NoError(t, err)
	assert.Equal(t, "up", line)
	assert.Equal(t, "move> ", out.String())

	_, err = src.ReadLine("move> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestDeclaredSearchStrategies(t *testing.T) {
	strategies := []Strategy[t2048.Action]{
		&Minimax[t2048.Action]{Depth: 3},
		&MCTS[t2048.Action]{Rollouts: 100},
	}

	live := t2048.NewGameFromBoard(t2048.Board{{2, 0, 0, 0}}, t2048.Mover)
	dead := t2048.NewGameFromBoard(t2048.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, t2048.Mover)

	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			_, ok, err := s.NextAction(live)
			assert.ErrorIs(t, err, ErrNotImplemented)
			assert.False(t, ok)

			_, ok, err = s.NextAction(dead)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
