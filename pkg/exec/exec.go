// Package exec hands control to the container's real entrypoint once the
// process check has passed.
package exec

import (
	"errors"
	"os"
	"os/exec"
)

// ErrNoCommand is returned by Handoff when no command was given.
var ErrNoCommand = errors.New("no command to exec")

// Executor replaces the current process with another program.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On success it does not return.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Handoff execs argv[0] with the remaining arguments.
func Handoff(e Executor, argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return ErrNoCommand
	}
	return e.Exec(argv[0], argv[1:])
}

func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func environ() []string {
	return os.Environ()
}

// MockExecutor is a test double for Executor.
type MockExecutor struct {
	ExecFunc func(name string, args []string) error
}

// Exec calls the mock function, or returns nil when none is set.
func (m *MockExecutor) Exec(name string, args []string) error {
	if m.ExecFunc != nil {
		return m.ExecFunc(name, args)
	}
	return nil
}
