package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rabinshresthaaa/CoverPage/cli"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Match GOMAXPROCS to the container CPU quota. Set only fails on an
	// invalid GOMAXPROCS env var, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
