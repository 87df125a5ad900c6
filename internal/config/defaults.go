package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the built-in match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Mover:             "random",
		Environment:       "random",
		Seed:              0,
		Legality:          "exhaustive",
		MaxIllegalActions: 3,
		MaxTurns:          0,
		Render:            RenderAuto,
		Input:             InputAuto,
		LogLevel:          "info",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
