package main

import (
	"errors"
	"io"

	"github.com/vertti/procpreflight/pkg/check"
	"github.com/vertti/procpreflight/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes Cobra to exit with code 1.
func runCheck(w io.Writer, c check.Checker) error {
	result := c.Run()
	output.FprintResult(w, result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
