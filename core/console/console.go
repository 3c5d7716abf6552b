// Package console defines the terminal abstractions used by the simulation.
// Reading operator input, writing display text and pacing delays all go
// through these interfaces so the game logic can run against scripted input
// and without real sleeps.
package console

import (
	"context"
	"time"
)

// Output receives display text.
type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// Input provides operator input.
type Input interface {
	// ReadLine returns the next line without the line terminator. io.EOF is
	// returned once the input is exhausted.
	ReadLine() (string, error)
	// ReadKey blocks until a single key press is available.
	ReadKey() error
}

// Pauser blocks for display pacing.
type Pauser interface {
	Pause(ctx context.Context, d time.Duration)
}

// Prompt writes the prompt without a trailing newline and reads one line.
func Prompt(in Input, out Output, prompt string) (string, error) {
	out.Printf("%s", prompt)
	return in.ReadLine()
}
