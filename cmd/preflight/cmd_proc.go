package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/procpreflight/pkg/proccheck"
)

const (
	sourcePS     = "ps"
	sourceNative = "native"
)

var (
	procStrictErrors bool
	procSource       string
	procPSPath       string
)

var procCmd = &cobra.Command{
	Use:   "proc <command>",
	Short: "Check that a process containing a string is running",
	Long: `Verify that at least one running process has a listing line containing
the given string. The string is matched literally, never as a pattern.

Examples:
  preflight proc nginx
  preflight proc "worker.py --queue=jobs"
  preflight proc --source native redis-server
  preflight proc --strict-errors postgres`,
	Args: cobra.ExactArgs(1),
	RunE: runProcCheck,
}

func init() {
	procCmd.Flags().BoolVar(&procStrictErrors, "strict-errors", false, "report process listing failures separately from a missing process")
	procCmd.Flags().StringVar(&procSource, "source", sourcePS, "process table source (ps, native)")
	procCmd.Flags().StringVar(&procPSPath, "ps-path", "", "path to the ps binary (default: ps from PATH)")
	rootCmd.AddCommand(procCmd)
}

func runProcCheck(cmd *cobra.Command, args []string) error {
	lister, err := newLister(procSource, procPSPath)
	if err != nil {
		return err
	}

	c := &proccheck.Check{
		Command:      args[0],
		Lister:       lister,
		StrictErrors: procStrictErrors,
	}

	return runCheck(cmd.OutOrStdout(), c)
}

func newLister(source, psPath string) (proccheck.Lister, error) {
	switch source {
	case sourcePS:
		return &proccheck.PSLister{Path: psPath}, nil
	case sourceNative:
		if psPath != "" {
			return nil, fmt.Errorf("--ps-path cannot be used with --source %s", sourceNative)
		}
		return &proccheck.NativeLister{}, nil
	default:
		return nil, fmt.Errorf("invalid --source %q: must be %q or %q", source, sourcePS, sourceNative)
	}
}
