package proccheck

import (
	"os"
	"strings"
)

// Match returns the lines containing command that selfMatch does not flag.
// command is compared as a literal substring.
func Match(lines []string, command string, selfMatch func(line string) bool) []string {
	var matches []string
	for _, line := range lines {
		if !strings.Contains(line, command) {
			continue
		}
		if selfMatch != nil && selfMatch(line) {
			continue
		}
		matches = append(matches, line)
	}
	return matches
}

// IsSelfMatch reports whether line is an artifact of the search rather than
// a genuine process entry: a grep invocation, the ps listing itself, or the
// current process.
//
// Any line containing "grep" is dropped, so a real process whose command
// line contains that word can never match.
func IsSelfMatch(line string) bool {
	return isSelfMatch(line, ownCommandLine())
}

func isSelfMatch(line, self string) bool {
	if strings.Contains(line, "grep") {
		return true
	}

	if isPSInvocation(strings.TrimSpace(line)) {
		return true
	}

	return self != "" && strings.Contains(line, self)
}

// isPSInvocation reports whether line ends with the ps listing command,
// whether ps was run by name or by path.
func isPSInvocation(line string) bool {
	rest, ok := strings.CutSuffix(line, psInvocation)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	switch rest[len(rest)-1] {
	case ' ', '/', '\\':
		return true
	}
	return false
}

var ownCommandLine = func() string {
	return strings.Join(os.Args, " ")
}
