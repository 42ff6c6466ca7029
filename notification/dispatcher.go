//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=../mocks/mock_transport.go -package=mocks
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"secret-santa/domain"
	"secret-santa/errors"

	"golang.org/x/sync/errgroup"
)

// Session is an open, authenticated channel to the mail relay.
// A session is used by one goroutine at a time.
type Session interface {
	Send(ctx context.Context, message domain.Message) error
	Close() error
}

// SessionOpener opens transport sessions. Opening is where authentication
// happens, so a bad secret surfaces before any message is sent.
type SessionOpener interface {
	Open(ctx context.Context) (Session, error)
}

type Dispatcher struct {
	log     *slog.Logger
	opener  SessionOpener
	workers int
	timeout time.Duration
}

// NewDispatcher returns a dispatcher delivering through opener.
// One worker is the sequential reference behaviour; each extra worker opens
// its own session.
func NewDispatcher(log *slog.Logger, opener SessionOpener, workers int, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:     log,
		opener:  opener,
		workers: max(workers, 1),
		timeout: timeout,
	}
}

// NotifyAll sends every giver a private message naming their recipient.
// A failing delivery is recorded against its giver and the others carry on:
// callers inspect the returned results, indexed like pairing.Assignments().
// The only error returned is a transport that cannot be opened at all.
func (d *Dispatcher) NotifyAll(ctx context.Context, pairing domain.Pairing, contacts map[string]string, render Renderer) ([]domain.DeliveryResult, error) {
	assignments := pairing.Assignments()
	if len(assignments) == 0 {
		return nil, nil
	}

	first, err := d.opener.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}

	results := make([]domain.DeliveryResult, len(assignments))
	jobs := make(chan int)
	var g errgroup.Group

	g.Go(func() error {
		d.work(ctx, first, jobs, assignments, contacts, render, results)
		return nil
	})
	for worker := 1; worker < min(d.workers, len(assignments)); worker++ {
		g.Go(func() error {
			session, err := d.opener.Open(ctx)
			if err != nil {
				// The first session still drains the queue.
				d.log.Warn("Extra delivery session unavailable", "worker", worker, "error", err)
				return nil
			}
			d.work(ctx, session, jobs, assignments, contacts, render, results)
			return nil
		})
	}

	for i := range assignments {
		jobs <- i
	}
	close(jobs)
	_ = g.Wait()

	return results, nil
}

func (d *Dispatcher) work(ctx context.Context, session Session, jobs <-chan int, assignments []domain.Assignment,
	contacts map[string]string, render Renderer, results []domain.DeliveryResult) {
	defer func() {
		if err := session.Close(); err != nil {
			d.log.Warn("Failed to close delivery session", "error", err)
		}
	}()
	for i := range jobs {
		results[i] = d.deliver(ctx, session, assignments[i], contacts, render)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, session Session, assignment domain.Assignment,
	contacts map[string]string, render Renderer) domain.DeliveryResult {
	result := domain.DeliveryResult{Giver: assignment.Giver}

	address, ok := contacts[assignment.Giver]
	if !ok || address == "" {
		result.Err = fmt.Errorf("%w: %s", errors.ErrMissingContact, assignment.Giver)
		d.log.Error("Notification skipped", "giver", assignment.Giver, "error", result.Err)
		return result
	}
	result.Address = address

	if err := ctx.Err(); err != nil {
		result.Err = fmt.Errorf("%w: %v", errors.ErrDelivery, err)
		return result
	}

	message, err := render(assignment.Giver, assignment.Recipient)
	if err != nil {
		result.Err = fmt.Errorf("%w: rendering: %v", errors.ErrDelivery, err)
		d.log.Error("Notification not rendered", "giver", assignment.Giver, "error", err)
		return result
	}
	message.To = address

	sendCtx, cancel := d.sendContext(ctx)
	defer cancel()
	start := time.Now()
	if err := session.Send(sendCtx, message); err != nil {
		result.Err = fmt.Errorf("%w: %v", errors.ErrDelivery, err)
		d.log.Error("Notification failed", "giver", assignment.Giver, "error", err)
		return result
	}
	d.log.Info("Notification delivered", "giver", assignment.Giver, "duration", time.Since(start))
	return result
}

func (d *Dispatcher) sendContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
