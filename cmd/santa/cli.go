package main

import (
	"flag"
	"fmt"
	"io"
)

type mode int

const (
	modeInspect mode = iota + 1
	modeCommit
	modeReport
)

type command struct {
	mode      mode
	input     string
	assumeYes bool
}

var errUsage = fmt.Errorf("invalid usage")

const usage = `Usage:
  santa run <participants.csv> --dry-run   show pairings without sending emails
  santa run <participants.csv> --send      send emails without showing pairings
  santa report                             show the outcome of the last send
`

func parseCommand(args []string, stderr io.Writer) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("%w: missing command", errUsage)
	}
	switch args[0] {
	case "run":
		return parseRun(args[1:], stderr)
	case "report":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%w: report takes no arguments", errUsage)
		}
		return command{mode: modeReport}, nil
	case "help", "-h", "--help":
		return command{}, flag.ErrHelp
	default:
		return command{}, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// parseRun accepts flags before or after the input file.
func parseRun(args []string, stderr io.Writer) (command, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dryRun := fs.Bool("dry-run", false, "Show pairings without sending emails")
	send := fs.Bool("send", false, "Send emails without showing pairings")
	yes := fs.Bool("yes", false, "Do not ask for confirmation before sending")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return command{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch {
	case len(positional) != 1:
		return command{}, fmt.Errorf("%w: expected one participant file, got %d", errUsage, len(positional))
	case *dryRun && *send:
		return command{}, fmt.Errorf("%w: cannot use both --dry-run and --send", errUsage)
	case !*dryRun && !*send:
		return command{}, fmt.Errorf("%w: must specify either --dry-run or --send", errUsage)
	case *yes && *dryRun:
		return command{}, fmt.Errorf("%w: --yes only applies to --send", errUsage)
	}

	cmd := command{mode: modeCommit, input: positional[0], assumeYes: *yes}
	if *dryRun {
		cmd.mode = modeInspect
	}
	return cmd, nil
}
