// Package registry provides a global registry of strategy factories.
// Strategy kinds register themselves in init() functions, allowing the CLI
// to discover and instantiate players without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Kind names a strategy family selectable for either side.
type Kind string

const (
	KindRandom  Kind = "random"
	KindHuman   Kind = "human"
	KindMinimax Kind = "minimax"
	KindMCTS    Kind = "mcts"
)

// Kinds lists every kind the selection surface accepts, in menu order.
var Kinds = []Kind{KindRandom, KindHuman, KindMinimax, KindMCTS}

// ParseKind validates a strategy kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("registry: unknown strategy %q", s)
}

// Strategy is a decision source for one side of a 2048 game.
type Strategy = engine.Strategy[t2048.Action]

// Env carries what a factory may need to build a strategy for one side.
type Env struct {
	Side   t2048.Player
	Rand   *rand.Rand
	Input  engine.LineSource // Used by interactive strategies
	Output io.Writer         // Prompts and diagnostics for interactive strategies
	Logger *log.Logger
}

// Info contains metadata about a registered kind.
type Info struct {
	Kind        Kind
	Description string
	Implemented bool
}

// Factory creates a new strategy for the given environment.
type Factory func(env Env) (Strategy, error)

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[Kind]entry)
	mu      sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from an init() function.
// Panics if the kind is unknown or already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, err := ParseKind(string(info.Kind)); err != nil {
		panic(err)
	}
	if _, exists := entries[info.Kind]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", info.Kind))
	}

	entries[info.Kind] = entry{info: info, factory: f}
}

// List returns information about all registered kinds, sorted by kind.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Lookup returns the metadata for a kind.
func Lookup(kind Kind) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[kind]
	return e.info, ok
}

// Create instantiates a strategy of the given kind.
// Returns an error if the kind is not registered or the factory fails.
func Create(kind Kind, env Env) (Strategy, error) {
	mu.RLock()
	e, ok := entries[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", kind)
	}

	s, err := e.factory(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s for %s: %w", kind, env.Side, err)
	}
	return s, nil
}

// Exists checks if a kind is registered.
func Exists(kind Kind) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}
