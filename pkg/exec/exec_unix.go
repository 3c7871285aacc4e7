//go:build unix

package exec

import (
	"fmt"
	"syscall"
)

var execFunc = syscall.Exec

// Exec replaces the current process using syscall.Exec.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", name, err)
	}

	// argv[0] is the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- the command comes from the caller's own argv after "--".
	return execFunc(binary, argv, environ())
}
