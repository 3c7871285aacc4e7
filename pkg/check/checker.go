package check

// Checker is implemented by all check types.
// A check probes one aspect of the host and reports the outcome
// as a Result. Name returns the label shown next to the outcome.
//
// Implementations:
//   - proccheck.Check: verifies a process containing a string is running
type Checker interface {
	Run() Result
	Name() string
}
