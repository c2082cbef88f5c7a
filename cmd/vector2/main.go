// File: cmd/vector2/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/xkilldash9x/vector2/cmd"
	"github.com/xkilldash9x/vector2/internal/observability"
)

var (
	// osExit is swapped out in tests.
	osExit = os.Exit
	// execute runs the command tree; swapped out in tests.
	execute = cmd.Execute
)

func main() {
	defer handlePanic()

	// Ctrl+C stops a running batch or follow session cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	osExit(exitCode(execute(ctx)))
}

// exitCode maps a command error to the process exit status. An interrupted
// command is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}

// handlePanic flushes the logs and reports a crash with its stack trace.
func handlePanic() {
	if r := recover(); r != nil {
		observability.Sync()
		fmt.Fprintf(os.Stderr, "panic: %v\n\n%s\n", r, debug.Stack())
		osExit(2)
	}
}
