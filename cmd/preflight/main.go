package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pfexec "github.com/vertti/procpreflight/pkg/exec"
)

// Version is set at build time via ldflags
var Version = "dev"

var executor pfexec.Executor = &pfexec.RealExecutor{}

func main() {
	// Everything after "--" is the command to exec once checks pass.
	execArgs := extractExecArgs(&os.Args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	if len(execArgs) == 0 {
		return
	}
	if err := pfexec.Handoff(executor, execArgs); err != nil {
		fmt.Fprintf(os.Stderr, "exec: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Process preflight checks for your runtime environment",
	Long: `Preflight verifies that required processes are running before handing
control to your entrypoint.

Examples:
  preflight proc nginx
  preflight proc sshd -- /app/start.sh --port 8080`,
	Version:      Version,
	SilenceUsage: true,
}

// extractExecArgs removes "--" and everything after it from args and
// returns the removed tail without the separator.
func extractExecArgs(args *[]string) []string {
	for i, a := range *args {
		if a == "--" {
			tail := (*args)[i+1:]
			*args = (*args)[:i]
			return tail
		}
	}
	return nil
}
