package main

import (
	"fmt"
	"strings"
)

// UnrecognizedInputError means no intent cleared the suggestion
// threshold. The dispatch loop answers it with generic help text.
type UnrecognizedInputError struct {
	Input string
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("unrecognized command: %q", e.Input)
}

// AmbiguousInputError carries the ranked "did you mean" candidates for
// input that scored between the suggest and accept thresholds.
type AmbiguousInputError struct {
	Input       string
	Suggestions []Suggestion
}

func (e *AmbiguousInputError) Error() string {
	names := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		names[i] = string(s.Intent.ID)
	}
	return fmt.Sprintf("ambiguous input %q, candidates: %s", e.Input, strings.Join(names, ", "))
}

// MissingArgumentError is returned by the renderer when a required slot
// has no value. Rendering never substitutes an empty string.
type MissingArgumentError struct {
	Intent IntentID
	Slot   string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s requires a %s", e.Intent, e.Slot)
}

// ExecutionFailureError wraps a non-zero exit from the OS executor. The
// captured stderr is surfaced to the user verbatim.
type ExecutionFailureError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecutionFailureError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("command exited with code %d: %s", e.ExitCode, e.Stderr)
}
