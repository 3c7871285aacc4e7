package proccheck

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

const psInvocation = "ps -ef"

var psArgs = []string{"-ef"}

// Lister abstracts process table enumeration for testability.
// Each returned line describes one process and includes its command line.
type Lister interface {
	ListProcesses(ctx context.Context) ([]string, error)
}

// PSLister lists processes by running "ps -ef" without a shell.
type PSLister struct {
	Path string // ps binary (default: "ps" resolved from PATH)
}

// ListProcesses runs ps and returns its non-empty output lines.
func (l *PSLister) ListProcesses(ctx context.Context) ([]string, error) {
	name := l.Path
	if name == "" {
		name = "ps"
	}

	cmd := exec.CommandContext(ctx, name, psArgs...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if stderr := strings.TrimSpace(errBuf.String()); stderr != "" {
			return nil, fmt.Errorf("running %s: %w: %s", psInvocation, err, stderr)
		}
		return nil, fmt.Errorf("running %s: %w", psInvocation, err)
	}

	return splitLines(outBuf.String()), nil
}

// NativeLister enumerates processes through gopsutil, for hosts that ship
// without a ps binary. Lines use the form "<user> <pid> <ppid> <cmdline>".
type NativeLister struct {
	procs func(ctx context.Context) ([]nativeProcess, error) // injected for testing
}

// nativeProcess is the subset of *process.Process read by NativeLister.
type nativeProcess interface {
	CmdlineWithContext(ctx context.Context) (string, error)
	NameWithContext(ctx context.Context) (string, error)
	UsernameWithContext(ctx context.Context) (string, error)
	PpidWithContext(ctx context.Context) (int32, error)
	PID() int32
}

type gopsutilProcess struct {
	*process.Process
}

func (p gopsutilProcess) PID() int32 { return p.Pid }

func listNative(ctx context.Context) ([]nativeProcess, error) {
	ps, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	procs := make([]nativeProcess, len(ps))
	for i, p := range ps {
		procs[i] = gopsutilProcess{p}
	}
	return procs, nil
}

// ListProcesses returns one line per process still alive when it is read.
func (l *NativeLister) ListProcesses(ctx context.Context) ([]string, error) {
	list := l.procs
	if list == nil {
		list = listNative
	}
	procs, err := list(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating processes: %w", err)
	}

	lines := make([]string, 0, len(procs))
	for _, p := range procs {
		// Kernel threads have no cmdline, and other users' cmdlines can be
		// unreadable (macOS). ps shows those as [name].
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil || cmdline == "" {
			name, err := p.NameWithContext(ctx)
			if err != nil {
				continue
			}
			cmdline = "[" + name + "]"
		}

		user, err := p.UsernameWithContext(ctx)
		if err != nil || user == "" {
			user = "?"
		}
		ppid, _ := p.PpidWithContext(ctx)

		lines = append(lines, fmt.Sprintf("%s %d %d %s", user, p.PID(), ppid, cmdline))
	}
	return lines, nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// MockLister is a test double for Lister.
type MockLister struct {
	ListFunc func(ctx context.Context) ([]string, error)
}

// ListProcesses calls the mock function.
func (m *MockLister) ListProcesses(ctx context.Context) ([]string, error) {
	return m.ListFunc(ctx)
}
