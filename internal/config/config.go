// Package config provides YAML-based match configuration loading and
// validation.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// RenderMode selects how boards are printed.
type RenderMode string

const (
	RenderAuto   RenderMode = "auto"   // styled on a terminal, plain otherwise
	RenderStyled RenderMode = "styled" // lipgloss colours
	RenderPlain  RenderMode = "plain"  // console dump
	RenderNone   RenderMode = "none"
)

// InputMode selects where human strategies read lines from.
type InputMode string

const (
	InputAuto  InputMode = "auto" // tui on a terminal, plain otherwise
	InputTUI   InputMode = "tui"
	InputPlain InputMode = "plain"
)

// MatchConfig contains everything needed to set up a match.
type MatchConfig struct {
	Mover             string     `yaml:"mover"`
	Environment       string     `yaml:"environment"`
	Seed              int64      `yaml:"seed"`
	Legality          string     `yaml:"legality"`
	MaxIllegalActions int        `yaml:"max_illegal_actions"`
	MaxTurns          int        `yaml:"max_turns"`
	Render            RenderMode `yaml:"render"`
	Input             InputMode  `yaml:"input"`
	LogLevel          string     `yaml:"log_level"`
}

// Validate checks every field and reports all problems at once.
func (c MatchConfig) Validate() error {
	var result *multierror.Error

	if _, err := registry.ParseKind(c.Mover); err != nil {
		result = multierror.Append(result, fmt.Errorf("mover: %w", err))
	}
	if _, err := registry.ParseKind(c.Environment); err != nil {
		result = multierror.Append(result, fmt.Errorf("environment: %w", err))
	}
	if _, err := t2048.ParseLegalityPolicy(c.Legality); err != nil {
		result = multierror.Append(result, fmt.Errorf("legality: %w", err))
	}
	if c.MaxIllegalActions < 1 {
		result = multierror.Append(result, fmt.Errorf("max_illegal_actions: must be at least 1, got %d", c.MaxIllegalActions))
	}
	if c.MaxTurns < 0 {
		result = multierror.Append(result, fmt.Errorf("max_turns: must not be negative, got %d", c.MaxTurns))
	}
	switch c.Render {
	case RenderAuto, RenderStyled, RenderPlain, RenderNone:
	default:
		result = multierror.Append(result, fmt.Errorf("render: unknown mode %q", c.Render))
	}
	switch c.Input {
	case InputAuto, InputTUI, InputPlain:
	default:
		result = multierror.Append(result, fmt.Errorf("input: unknown mode %q", c.Input))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
	}

	return result.ErrorOrNil()
}

// Kinds returns the parsed strategy kinds for both sides.
func (c MatchConfig) Kinds() (mover, environment registry.Kind, err error) {
	if mover, err = registry.ParseKind(c.Mover); err != nil {
		return "", "", err
	}
	if environment, err = registry.ParseKind(c.Environment); err != nil {
		return "", "", err
	}
	return mover, environment, nil
}

// Policy returns the parsed legality policy.
func (c MatchConfig) Policy() t2048.LegalityPolicy {
	p, err := t2048.ParseLegalityPolicy(c.Legality)
	if err != nil {
		return t2048.PolicyExhaustive
	}
	return p
}

// Level returns the parsed log level, falling back to info.
func (c MatchConfig) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
