package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Results
// go to stdout; errors, usage and logs go to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	report(stderr, err)
	if errors.Is(err, domain.ErrInvalidArgument) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

// report prints err with its errbuilder code, followed by one line per
// field for errors that carry details.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "Error [%s]: %s\n", domain.CodeOf(err), domain.Message(err))

	var eb *errbuilder.ErrBuilder
	if !errors.As(err, &eb) {
		return
	}
	for _, field := range slices.Sorted(maps.Keys(eb.Details.Errors)) {
		fmt.Fprintf(w, "  %s: %s\n", field, eb.Details.Errors.Get(field))
	}
}
