// Package proccheck verifies that a process whose listing line contains a
// given string is running on the host.
package proccheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertti/procpreflight/pkg/check"
)

var (
	// ErrNotRunning is wrapped by Result.Err when no matching process was found.
	ErrNotRunning = errors.New("process not running")
	// ErrListFailed is wrapped by Result.Err when the process table could not
	// be read and StrictErrors is set.
	ErrListFailed = errors.New("process listing failed")
)

// Check verifies that at least one running process contains Command.
type Check struct {
	Command      string                 // literal substring searched for in each listing line
	Lister       Lister                 // process table source (default: PSLister)
	StrictErrors bool                   // report listing failures separately instead of as "not running"
	SelfMatch    func(line string) bool // artifact filter (default: IsSelfMatch)
}

// New returns a check for command backed by the ps listing.
func New(command string) *Check {
	return &Check{
		Command: command,
		Lister:  &PSLister{},
	}
}

// Name returns the display label of the check.
func (c *Check) Name() string {
	return "Process Active: " + c.Command
}

// Run executes the process check.
func (c *Check) Run() check.Result {
	return c.RunContext(context.Background())
}

// RunContext executes the process check. The context is handed to the
// lister unchanged; the check adds no deadline of its own.
func (c *Check) RunContext(ctx context.Context) check.Result {
	result := check.Result{
		Name: c.Name(),
	}

	lister := c.Lister
	if lister == nil {
		lister = &PSLister{}
	}

	lines, err := lister.ListProcesses(ctx)
	if err != nil {
		if c.StrictErrors {
			return result.Fail(fmt.Sprintf("process listing failed: %v", err), fmt.Errorf("%w: %w", ErrListFailed, err))
		}
		// A listing that never ran has no matching lines.
		return result.Fail(c.notRunningMessage(), fmt.Errorf("%w: %w", ErrNotRunning, err))
	}

	matches := Match(lines, c.Command, c.selfMatch())
	if len(matches) == 0 {
		return result.Fail(c.notRunningMessage(), fmt.Errorf("%w: %s", ErrNotRunning, c.Command))
	}

	result.AddDetailf("matches: %d", len(matches))
	return result.Pass()
}

func (c *Check) notRunningMessage() string {
	return fmt.Sprintf(`There is no process running containing "%s"`, c.Command)
}

func (c *Check) selfMatch() func(string) bool {
	if c.SelfMatch != nil {
		return c.SelfMatch
	}
	return IsSelfMatch
}
