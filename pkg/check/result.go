package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "Process Active: nginx"
	Status  Status   // OK or FAIL
	Details []string // human-readable details, the first is the failure message
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Message returns the first detail line, or "" when there is none.
func (r Result) Message() string {
	if len(r.Details) == 0 {
		return ""
	}
	return r.Details[0]
}
