package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// LineSource supplies one line of input per call. It returns io.EOF when
// no further input will arrive.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// ScannerSource reads lines from an io.Reader and writes prompts to an io.Writer.
type ScannerSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerSource creates a line source over r. Prompts go to out, which may be nil.
func NewScannerSource(r io.Reader, out io.Writer) *ScannerSource {
	return &ScannerSource{
		scanner: bufio.NewScanner(r),
		out:     out,
	}
}

// ReadLine blocks until a full line is available.
func (s *ScannerSource) ReadLine(prompt string) (string, error) {
	if s.out != nil && prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// ParseFunc converts a line of text into an action.
type ParseFunc[A any] func(line string) (A, error)

// Human asks a person for each action. Lines that fail to parse are
// reported and requested again; only exhausted input ends play.
type Human[A any] struct {
	in     LineSource
	parse  ParseFunc[A]
	out    io.Writer
	prompt string
	logger *log.Logger
}

// HumanOption configures a Human strategy.
type HumanOption[A any] func(*Human[A])

// WithPrompt sets the text shown before each read.
func WithPrompt[A any](prompt string) HumanOption[A] {
	return func(h *Human[A]) {
		h.prompt = prompt
	}
}

// WithDiagnostics sets where parse failures are reported to the user.
func WithDiagnostics[A any](w io.Writer) HumanOption[A] {
	return func(h *Human[A]) {
		h.out = w
	}
}

// WithLogger sets the logger.
func WithLogger[A any](logger *log.Logger) HumanOption[A] {
	return func(h *Human[A]) {
		h.logger = logger
	}
}

// NewHuman creates a human strategy reading from in and parsing with parse.
func NewHuman[A any](in LineSource, parse ParseFunc[A], opts ...HumanOption[A]) *Human[A] {
	h := &Human[A]{
		in:     in,
		parse:  parse,
		out:    io.Discard,
		prompt: "> ",
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name returns "human".
func (h *Human[A]) Name() string {
	return "human"
}

// NextAction blocks until a parseable line arrives or input is exhausted.
func (h *Human[A]) NextAction(_ State[A]) (A, bool, error) {
	var zero A

	for {
		line, err := h.in.ReadLine(h.prompt)
		if errors.Is(err, io.EOF) {
			h.logger.Debug("input exhausted")
			return zero, false, nil
		}
		if err != nil {
			return zero, false, fmt.Errorf("human: read input: %w", err)
		}

		action, err := h.parse(strings.TrimSpace(line))
		if err != nil {
			h.logger.Debug("could not parse action", "input", line, "error", err)
			fmt.Fprintf(h.out, "Could not parse action: %v\n", err)
			continue
		}

		return action, true, nil
	}
}
