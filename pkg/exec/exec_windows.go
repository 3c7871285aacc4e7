//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows; use a shell script instead")

// Exec is not supported on Windows, which has no call that replaces the
// running process image.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrExecNotSupported
}
