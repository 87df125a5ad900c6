package match

import (
	"fmt"
	"io"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Renderer shows the state after every accepted action.
type Renderer interface {
	Render(state *t2048.GameState) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(state *t2048.GameState) error

// Render calls f(state).
func (f RendererFunc) Render(state *t2048.GameState) error {
	return f(state)
}

// ConsoleRenderer prints the plain console dump of the state.
type ConsoleRenderer struct {
	W io.Writer
}

// Render writes the console dump followed by a blank line.
func (r ConsoleRenderer) Render(state *t2048.GameState) error {
	_, err := fmt.Fprintf(r.W, "%s\n", state.Console())
	return err
}

type nopRenderer struct{}

func (nopRenderer) Render(*t2048.GameState) error { return nil }
