package proccheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines dropped", "a\n\n   \nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"leading spaces kept", "  root 1 0 init\n", []string{"  root 1 0 init"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.input))
		})
	}
}

func TestPSListerMissingBinary(t *testing.T) {
	l := &PSLister{Path: "/nonexistent/preflight-ps"}

	lines, err := l.ListProcesses(context.Background())

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.Contains(t, err.Error(), "running ps -ef")
}

func TestNativeListerIncludesSelf(t *testing.T) {
	l := &NativeLister{}

	lines, err := l.ListProcesses(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}

func TestListerInterface(t *testing.T) {
	var _ Lister = &PSLister{}
	var _ Lister = &NativeLister{}
	var _ Lister = &MockLister{}
}

type fakeProcess struct {
	pid        int32
	ppid       int32
	user       string
	cmdline    string
	cmdlineErr error
	name       string
	nameErr    error
}

func (f *fakeProcess) CmdlineWithContext(ctx context.Context) (string, error) {
	return f.cmdline, f.cmdlineErr
}

func (f *fakeProcess) NameWithContext(ctx context.Context) (string, error) {
	return f.name, f.nameErr
}

func (f *fakeProcess) UsernameWithContext(ctx context.Context) (string, error) {
	return f.user, nil
}

func (f *fakeProcess) PpidWithContext(ctx context.Context) (int32, error) {
	return f.ppid, nil
}

func (f *fakeProcess) PID() int32 { return f.pid }

func TestNativeListerRendering(t *testing.T) {
	denied := errors.New("operation not permitted")
	procs := []nativeProcess{
		&fakeProcess{pid: 1, ppid: 0, user: "root", cmdline: "/sbin/init"},
		&fakeProcess{pid: 2, ppid: 0, user: "root", name: "kthreadd"},
		&fakeProcess{pid: 88, ppid: 1, user: "_www", cmdlineErr: denied, name: "nginx"},
		&fakeProcess{pid: 90, ppid: 1, cmdline: "/usr/bin/redis-server"},
		&fakeProcess{pid: 99, ppid: 1, cmdlineErr: denied, nameErr: denied},
	}
	l := &NativeLister{procs: func(ctx context.Context) ([]nativeProcess, error) {
		return procs, nil
	}}

	lines, err := l.ListProcesses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"root 1 0 /sbin/init",
		"root 2 0 [kthreadd]",
		"_www 88 1 [nginx]",
		"? 90 1 /usr/bin/redis-server",
	}, lines)
}

func TestCheckFindsProcessWithUnreadableCmdline(t *testing.T) {
	l := &NativeLister{procs: func(ctx context.Context) ([]nativeProcess, error) {
		return []nativeProcess{
			&fakeProcess{pid: 88, ppid: 1, user: "_www", cmdlineErr: errors.New("denied"), name: "nginx"},
		}, nil
	}}
	c := &Check{Command: "nginx", Lister: l, SelfMatch: noSelf}

	assert.True(t, c.Run().OK())
}

func TestNativeListerEnumerationError(t *testing.T) {
	l := &NativeLister{procs: func(ctx context.Context) ([]nativeProcess, error) {
		return nil, errors.New("no /proc")
	}}

	_, err := l.ListProcesses(context.Background())

	assert.EqualError(t, err, "enumerating processes: no /proc")
}
