package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a command word that is not recognised.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// mdBook runs the renderer with no arguments, so render is the default.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if len(rest) == 0 || isFlag(rest[0]) {
		return runRenderCmd(rest, env)
	}

	switch rest[0] {
	case "render":
		return runRenderCmd(rest[1:], env)
	case "doctor":
		return runDoctorCmd(rest[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdbook-docx %s\n", Version)
		return ExitSuccess
	case "help":
		var topic string
		if len(rest) > 1 {
			topic = rest[1]
		}
		return printHelp(env.Stdout, topic)
	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n\n", ErrUnknownCommand, rest[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}
