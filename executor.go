package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecResult is the outcome of running one external command.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs a fully rendered command and captures its output. A
// non-zero exit code is reported in the result, not as a Go error;
// errors mean the command could not be started at all.
type Executor interface {
	Run(argv []string, dir string) (ExecResult, error)
}

// SystemExecutor spawns commands directly, without a shell, so argument
// values are never re-interpreted.
type SystemExecutor struct{}

// NewSystemExecutor returns the process-spawning executor.
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Run executes argv synchronously and captures both output streams.
func (e *SystemExecutor) Run(argv []string, dir string) (ExecResult, error) {
	if len(argv) == 0 {
		return ExecResult{}, fmt.Errorf("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("command %q not found or failed to start: %w", argv[0], err)
	}
	return result, nil
}

// changeDirectory handles the cd intent in-process, since a child
// process cannot change this process's working directory. "~" and
// "~/..." expand to the user's home.
func changeDirectory(target string) error {
	if target == "" {
		return fmt.Errorf("cd needs a target directory")
	}
	expanded := target
	if target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		expanded = filepath.Join(home, strings.TrimPrefix(target, "~"))
	}
	if err := os.Chdir(expanded); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory not found: %s", expanded)
		}
		return err
	}
	return nil
}
