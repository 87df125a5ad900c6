package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMoveLeftRows(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "single tile at origin stays",
			input:    [4]int{1, 0, 0, 0},
			expected: [4]int{1, 0, 0, 0},
			score:    0,
		},
		{
			name:     "four equal tiles merge pairwise",
			input:    [4]int{1, 1, 1, 1},
			expected: [4]int{2, 2, 0, 0},
			score:    4,
		},
		{
			name:     "merge after sliding adjacent",
			input:    [4]int{1, 2, 0, 2},
			expected: [4]int{1, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{4, 2, 2, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "different tiles close the gap",
			input:    [4]int{2, 0, 4, 0},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile at end",
			input:    [4]int{0, 0, 0, 4},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Board{tt.input}
			score := board.moveLeft()
			if board[0] != tt.expected {
				t.Errorf("moveLeft(%v) = %v, want %v", tt.input, board[0], tt.expected)
			}
			if score != tt.score {
				t.Errorf("moveLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestMoveLeftDiagonal(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}
	expected := Board{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{16, 0, 0, 0},
	}

	board.moveLeft()

	if board != expected {
		t.Errorf("moveLeft: got\n%v\nwant\n%v", board, expected)
	}
}

func TestRotateClockwise(t *testing.T) {
	board := Board{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	expected := Board{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}

	board.rotateClockwise()

	if board != expected {
		t.Errorf("rotateClockwise: got\n%v\nwant\n%v", board, expected)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 100 {
		var original Board
		for r := range BoardSize {
			for c := range BoardSize {
				original[r][c] = rng.Intn(2048)
			}
		}

		b := original
		b.rotateClockwise()
		b.rotateCounterClockwise()
		if b != original {
			t.Fatalf("case %d: CCW(CW(b)) != b\n%v", i, original)
		}

		b.rotateCounterClockwise()
		b.rotateClockwise()
		if b != original {
			t.Fatalf("case %d: CW(CCW(b)) != b\n%v", i, original)
		}

		for range 4 {
			b.rotateClockwise()
		}
		if b != original {
			t.Fatalf("case %d: four clockwise rotations != identity", i)
		}
	}
}

func TestSlideDirections(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      PlayerAction
		expected Board
		score    int
	}{
		{
			dir: Left,
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			dir: Right,
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			dir: Up,
			expected: Board{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: Board{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, score, changed := Slide(board, tt.dir)
			if result != tt.expected {
				t.Errorf("Slide(%v): got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%v) should report a change", tt.dir)
			}
		})
	}
}

func TestSlideNoChange(t *testing.T) {
	board := Board{
		{2, 4, 0, 0},
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := Slide(board, Left)
	if changed {
		t.Error("Slide(Left) should not report a change")
	}
	if score != 0 || result != board {
		t.Errorf("Slide(Left) = %v, %d; want unchanged board and 0", result, score)
	}
}

func TestNewGame(t *testing.T) {
	for seed := range int64(50) {
		g := NewGame(rand.New(rand.NewSource(seed)))

		if g.Player() != Mover {
			t.Fatalf("seed %d: first player = %v, want Mover", seed, g.Player())
		}

		tiles := 0
		board := g.Board()
		for r := range BoardSize {
			for c := range BoardSize {
				v := board[r][c]
				if v == 0 {
					continue
				}
				tiles++
				if v != 2 && v != 4 {
					t.Errorf("seed %d: initial tile value %d, want 2 or 4", seed, v)
				}
			}
		}
		if tiles != 2 {
			t.Errorf("seed %d: initial tiles = %d, want 2", seed, tiles)
		}
	}
}

func TestNewGameDeterministic(t *testing.T) {
	a := NewGame(rand.New(rand.NewSource(42)))
	b := NewGame(rand.New(rand.NewSource(42)))

	if a.Board() != b.Board() {
		t.Errorf("same seed produced different boards:\n%v\n%v", a.Board(), b.Board())
	}
}

func TestApplyAlternatesTurns(t *testing.T) {
	g := NewGameFromBoard(Board{{2, 0, 0, 2}}, Mover)

	if err := g.Apply(Left); err != nil {
		t.Fatalf("Apply(Left) failed: %v", err)
	}
	if g.Player() != Environment {
		t.Fatalf("after player action, player = %v, want Environment", g.Player())
	}
	if got := g.Board()[0]; got != [4]int{4, 0, 0, 0} {
		t.Errorf("row after Left = %v, want [4 0 0 0]", got)
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}

	spawn := EnvironmentAction{Placement: Placement{Row: 3, Col: 3}, Value: 2}
	if err := g.Apply(spawn); err != nil {
		t.Fatalf("Apply(%v) failed: %v", spawn, err)
	}
	if g.Player() != Mover {
		t.Fatalf("after environment action, player = %v, want Mover", g.Player())
	}
	if g.Board()[3][3] != 2 {
		t.Errorf("spawned tile = %d, want 2", g.Board()[3][3])
	}
	if g.Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", g.Turns())
	}
}

func TestApplyRejectsWrongSide(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	}

	tests := []struct {
		name   string
		player Player
		action Action
	}{
		{"player action on environment turn", Environment, Left},
		{"environment action on mover turn", Mover, EnvironmentAction{Placement: Placement{Row: 2, Col: 2}, Value: 2}},
		{"second player action in a row", Environment, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameFromBoard(board, tt.player)

			err := g.Apply(tt.action)
			if !errors.Is(err, ErrIllegalAction) {
				t.Fatalf("Apply(%v) error = %v, want ErrIllegalAction", tt.action, err)
			}

			var illegal *IllegalActionError
			if !errors.As(err, &illegal) || illegal.Action != tt.action {
				t.Errorf("error does not carry the rejected action: %v", err)
			}
			if g.Board() != board {
				t.Errorf("board changed after rejected action:\n%v", g.Board())
			}
			if g.Player() != tt.player || g.Turns() != 0 {
				t.Errorf("state changed after rejected action: player=%v turns=%d", g.Player(), g.Turns())
			}
		})
	}
}

func TestApplyRejectsOccupiedOrInvalidSpawn(t *testing.T) {
	board := Board{{2, 0, 0, 0}}

	tests := []struct {
		name   string
		action EnvironmentAction
	}{
		{"occupied cell", EnvironmentAction{Placement: Placement{Row: 0, Col: 0}, Value: 2}},
		{"out of bounds", EnvironmentAction{Placement: Placement{Row: 4, Col: 0}, Value: 2}},
		{"bad value", EnvironmentAction{Placement: Placement{Row: 1, Col: 1}, Value: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameFromBoard(board, Environment)
			if err := g.Apply(tt.action); !errors.Is(err, ErrIllegalAction) {
				t.Fatalf("Apply(%v) error = %v, want ErrIllegalAction", tt.action, err)
			}
			if g.Board() != board || g.Player() != Environment {
				t.Errorf("state changed after rejected action")
			}
		})
	}
}

func TestAllActionsFullBoardNoMerge(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, policy := range []LegalityPolicy{PolicyExhaustive, PolicyPriorityChain} {
		g := NewGameFromBoard(board, Mover, WithPolicy(policy))
		if actions := g.AllActions(); len(actions) != 0 {
			t.Errorf("%s: AllActions() = %v, want none", policy, actions)
		}
		if _, ok := g.RandomAction(rand.New(rand.NewSource(1))); ok {
			t.Errorf("%s: RandomAction() returned an action on a dead board", policy)
		}
	}
}

func TestAllActionsMoverCanonicalOrder(t *testing.T) {
	board := Board{
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g := NewGameFromBoard(board, Mover)
	actions := g.AllActions()

	want := []Action{Up, Down, Left, Right}
	if len(actions) != len(want) {
		t.Fatalf("AllActions() = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("AllActions()[%d] = %v, want %v", i, actions[i], want[i])
		}
	}
}

func TestPriorityChainUnderReports(t *testing.T) {
	board := Board{{2, 0, 0, 0}}

	exhaustive := PlayerActionsFor(board, PolicyExhaustive)
	chain := PlayerActionsFor(board, PolicyPriorityChain)

	if len(exhaustive) != 2 || exhaustive[0] != Down || exhaustive[1] != Right {
		t.Errorf("exhaustive = %v, want [Down Right]", exhaustive)
	}
	if len(chain) != 1 || chain[0] != Down {
		t.Errorf("priority chain = %v, want [Down]", chain)
	}
}

func TestExhaustiveMatchesSlide(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := range 200 {
		var board Board
		for r := range BoardSize {
			for c := range BoardSize {
				if rng.Intn(3) > 0 {
					board[r][c] = 1 << (1 + rng.Intn(4))
				}
			}
		}

		legal := make(map[PlayerAction]bool)
		for _, a := range PlayerActionsFor(board, PolicyExhaustive) {
			legal[a] = true
		}
		for _, a := range PlayerActions {
			_, _, changed := Slide(board, a)
			if changed != legal[a] {
				t.Fatalf("case %d: %v changed=%v legal=%v\n%v", i, a, changed, legal[a], board)
			}
		}
	}
}

func TestEnvironmentActions(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 0, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	}

	g := NewGameFromBoard(board, Environment)
	actions := g.AllActions()

	if len(actions) != 4 {
		t.Fatalf("AllActions() returned %d actions, want 4", len(actions))
	}
	for _, a := range actions {
		ea, ok := a.(EnvironmentAction)
		if !ok {
			t.Fatalf("unexpected action type %T", a)
		}
		if board.At(ea.Placement) != 0 {
			t.Errorf("action %v targets occupied cell", ea)
		}
	}

	rng := rand.New(rand.NewSource(9))
	for range 100 {
		a, ok := g.RandomAction(rng)
		if !ok {
			t.Fatal("RandomAction() found no action")
		}
		if err := g.Clone().Apply(a); err != nil {
			t.Fatalf("RandomAction() produced illegal action %v: %v", a, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGameFromBoard(Board{{2, 2, 0, 0}}, Mover)
	c := g.Clone()

	if err := c.Apply(Left); err != nil {
		t.Fatalf("Apply on clone failed: %v", err)
	}
	if g.Board()[0] != [4]int{2, 2, 0, 0} || g.Player() != Mover {
		t.Error("applying to a clone modified the original")
	}
}

func TestConsole(t *testing.T) {
	g := NewGameFromBoard(Board{
		{16, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}, Environment)

	want := "player :: Environment\n" +
		" 16   0   0   0 \n" +
		"  0   2   0   0 \n" +
		"  0   0   0   0 \n" +
		"  0   0   0   4 \n"

	if got := g.Console(); got != want {
		t.Errorf("Console() =\n%q\nwant\n%q", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	g := NewGameFromBoard(Board{{2, 4, 0, 0}, {0, 0, 0, 8}}, Environment)
	snap := g.Snapshot()

	if snap.MaxTile != 8 || snap.TileSum != 14 || snap.EmptyCells != 13 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.Legal != 26 {
		t.Errorf("Snapshot().Legal = %d, want 26", snap.Legal)
	}
}
