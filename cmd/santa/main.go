package main

import (
	"context"
	goerrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"secret-santa/domain"
	"secret-santa/errors"
	"secret-santa/infrastructure/mail"
	"secret-santa/internal"
	"secret-santa/notification"
	"secret-santa/pairing"
	"secret-santa/repositories"
	"secret-santa/roster"
	"secret-santa/services"
	"secret-santa/ui"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitFailure        = 1
	exitPartialFailure = 2
	exitUsage          = 64
)

// errPartialDelivery means the run completed but some givers were not notified.
var errPartialDelivery = fmt.Errorf("some notifications could not be delivered")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// run wires the components for one invocation and returns its outcome.
// Deferred cleanups (the ledger) complete before main exits.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd, err := parseCommand(args, stderr)
	if err != nil {
		return err
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Delivery ledger (optional)
	var ledger repositories.IDeliveryRepository = repositories.NoopDeliveryRepository{}
	if config.LedgerPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.LedgerPath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("opening delivery ledger: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warn("Failed to close delivery ledger", "error", err)
			}
		}()
		ledger = repositories.NewDeliveryRepository(db, log)
	}

	// 3. Components
	console := ui.NewConsole(stdout, config.Colors)
	notifiers := func(credentials domain.Credentials) services.Notifier {
		return notification.NewDispatcher(log, mail.NewOpener(log, credentials, config.DeliveryTimeout),
			config.DeliveryWorkers, config.DeliveryTimeout)
	}
	svc := services.NewSantaService(log,
		roster.NewLoader(log),
		pairing.NewEngine(nil),
		console,
		ui.NewPrompter(stdin, stdout),
		notifiers,
		ledger,
		services.Settings{
			MaxAttempts: config.MaxAttempts,
			Render:      notification.DefaultRenderer(config.MailSubject),
			Relay: domain.Credentials{
				Sender: config.SMTPSender,
				Host:   config.SMTPHost,
				Port:   config.SMTPPort,
			},
		},
	)

	// 4. Execute
	switch cmd.mode {
	case modeInspect:
		_, err = svc.Inspect(ctx, cmd.input)
		return err
	case modeCommit:
		report, err := svc.Commit(ctx, cmd.input, services.CommitOptions{AssumeYes: cmd.assumeYes})
		if goerrors.Is(err, errors.ErrCancelled) {
			console.Error("Cancelled. No emails sent.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(report.Failed) > 0 {
			return fmt.Errorf("%w: %d of %d", errPartialDelivery,
				len(report.Failed), len(report.Failed)+len(report.Delivered))
		}
		return nil
	case modeReport:
		_, err = svc.Report()
		return err
	}
	return nil
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case goerrors.Is(err, flag.ErrHelp):
		fmt.Fprint(stderr, usage)
		return 0
	case goerrors.Is(err, errUsage):
		fmt.Fprintf(stderr, "❌ Error: %v\n\n%s", err, usage)
		return exitUsage
	case goerrors.Is(err, errPartialDelivery):
		fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		return exitPartialFailure
	default:
		fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		return exitFailure
	}
}
