// Package cli implements the chst command line: subcommand dispatch, flag
// parsing, logging and exit codes. Effect processing lives in dsp/effects;
// this package only wires stdin, stdout and files around it.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// Env holds the process streams used by Run. ExitFunc is invoked by fatal
// log entries; nil means os.Exit.
type Env struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	ExitFunc func(int)
}

// DefaultEnv returns an Env bound to the process streams.
func DefaultEnv() Env {
	return Env{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		ExitFunc: os.Exit,
	}
}

type command struct {
	summary string
	run     func(env Env, args []string) int
}

var commands = map[string]command{
	"clipper": {"waveshaping clipper with one-pole smoothing", runClipper},
	"eq":      {"Butterworth high-pass/low-pass equalizer", runEQ},
	"curves":  {"export clipper transfer curves to CSV", runCurves},
}

// Run executes the chst command line. args excludes the program name.
// The returned value is the process exit code.
func Run(env Env, args []string) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return exitFailure
	}

	name := args[0]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage(env.Stderr)
		return exitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "unknown subcommand %q\n\n", name)
		printUsage(env.Stderr)

		return exitFailure
	}

	return cmd.run(env, args[1:])
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}

	sort.Strings(names)

	var b strings.Builder

	b.WriteString("Usage: chst <subcommand> [options]\n\nSubcommands:\n")

	for _, n := range names {
		fmt.Fprintf(&b, "  %-9s %s\n", n, commands[n].summary)
	}

	b.WriteString("\nUse 'chst <subcommand> --help' for subcommand-specific help.\n")

	_, _ = io.WriteString(w, b.String())
}

// newLogger returns a text logger on w. Fatal entries call exit.
func newLogger(w io.Writer, verbose bool, exit func(int)) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if exit != nil {
		log.ExitFunc = exit
	}

	return log
}
