package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// dotEnvFile is read from the working directory before flags and
// environment are resolved.
const dotEnvFile = ".env"

func main() {
	env := DefaultEnv()

	if err := loadDotEnv(dotEnvFile); err != nil {
		fmt.Fprintln(env.Stderr, "warning:", err)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verboseRequested(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	err := run(ctx, os.Args[1:], env)
	stop()

	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// verboseRequested reports whether -v or --verbose appears before any
// parse error would stop run.
func verboseRequested(args []string) bool {
	f, err := parseFlags(args)
	return err == nil && f.verbose
}
