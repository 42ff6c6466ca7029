package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"secret-santa/domain"
	"secret-santa/errors"
	"secret-santa/notification"
	"secret-santa/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const confirmKeyword = "SEND"

type ISantaService interface {
	Inspect(ctx context.Context, path string) (domain.Pairing, error)
	Commit(ctx context.Context, path string, options CommitOptions) (CommitReport, error)
	Report() ([]domain.DeliveryRecord, error)
}

// Settings are the knobs of a draw that do not change between invocations.
type Settings struct {
	MaxAttempts int
	Render      notification.Renderer
	// Relay pre-fills the credential prompt, its Secret is ignored.
	Relay domain.Credentials
}

type CommitOptions struct {
	// AssumeYes skips the typed confirmation.
	AssumeYes bool
}

type CommitReport struct {
	RunID     uuid.UUID
	Delivered []domain.DeliveryResult
	Failed    []domain.DeliveryResult
}

type SantaService struct {
	log       *slog.Logger
	loader    ParticipantLoader
	engine    PairingGenerator
	presenter Presenter
	prompter  Prompter
	notifiers NotifierFactory
	ledger    repositories.IDeliveryRepository
	settings  Settings
	now       func() time.Time
}

func NewSantaService(log *slog.Logger, loader ParticipantLoader, engine PairingGenerator,
	presenter Presenter, prompter Prompter, notifiers NotifierFactory,
	ledger repositories.IDeliveryRepository, settings Settings) *SantaService {
	if settings.Render == nil {
		settings.Render = notification.DefaultRenderer("")
	}
	return &SantaService{
		log:       log,
		loader:    loader,
		engine:    engine,
		presenter: presenter,
		prompter:  prompter,
		notifiers: notifiers,
		ledger:    ledger,
		settings:  settings,
		now:       time.Now,
	}
}

// Inspect draws a pairing and shows all of it to the operator.
// Nothing is delivered: the notifier is never built.
// Every invocation draws again, a previewed pairing cannot be reused.
func (s *SantaService) Inspect(_ context.Context, path string) (domain.Pairing, error) {
	s.presenter.Banner("🎄 SECRET SANTA - DRY RUN MODE 🎄")

	participants, err := s.loader.Load(path)
	if err != nil {
		return domain.Pairing{}, err
	}
	s.presenter.Participants(participants)

	pairing, err := s.engine.Generate(participants, s.settings.MaxAttempts)
	if err != nil {
		return domain.Pairing{}, err
	}
	s.log.Debug("Pairing drawn", "participants", pairing.Len(), "attempts", pairing.Attempts())
	s.presenter.Pairing(pairing)
	s.presenter.Success("Dry run complete! No emails sent.")
	return pairing, nil
}

// Commit draws a pairing and delivers it without ever showing it.
// Input and pairing errors abort before anything is sent. Delivery
// failures do not: they are reported per giver in the CommitReport.
func (s *SantaService) Commit(ctx context.Context, path string, options CommitOptions) (CommitReport, error) {
	s.presenter.Banner("🎅 SECRET SANTA - REAL RUN MODE 🎅")

	participants, err := s.loader.Load(path)
	if err != nil {
		return CommitReport{}, err
	}
	s.presenter.Info(fmt.Sprintf("\nLoaded %d participants", len(participants)))

	// Fewer than two participants fail before any credential is asked.
	if len(participants) < 2 {
		return CommitReport{}, fmt.Errorf("%w: got %d", errors.ErrInsufficientParticipants, len(participants))
	}

	s.presenter.SMTPHints()
	credentials, err := s.prompter.Credentials(s.settings.Relay)
	if err != nil {
		return CommitReport{}, err
	}

	s.presenter.Info("\n🎲 Creating secret pairings...")
	pairing, err := s.engine.Generate(participants, s.settings.MaxAttempts)
	if err != nil {
		return CommitReport{}, err
	}
	s.log.Debug("Pairing drawn", "participants", pairing.Len(), "attempts", pairing.Attempts())

	if !options.AssumeYes {
		s.presenter.Warn(fmt.Sprintf("Ready to send %d emails.", pairing.Len()))
		confirmed, err := s.prompter.Confirm(fmt.Sprintf("Type '%s' to confirm", confirmKeyword), confirmKeyword)
		if err != nil {
			return CommitReport{}, err
		}
		if !confirmed {
			return CommitReport{}, errors.ErrCancelled
		}
	}

	s.presenter.Info("\n📤 Sending emails...")
	s.log.Info("Dispatching notifications", "relay", credentials, "count", pairing.Len())
	results, err := s.notifiers(credentials).NotifyAll(ctx, pairing, domain.Contacts(participants), s.settings.Render)
	if err != nil {
		return CommitReport{}, err
	}

	report := CommitReport{
		RunID:     uuid.New(),
		Delivered: lo.Filter(results, func(r domain.DeliveryResult, _ int) bool { return r.Delivered() }),
		Failed:    lo.Filter(results, func(r domain.DeliveryResult, _ int) bool { return !r.Delivered() }),
	}
	if err := s.ledger.StoreResults(report.RunID, s.now(), results); err != nil {
		s.log.Warn("Delivery results not recorded", "run_id", report.RunID, "error", err)
	}
	s.presenter.DeliverySummary(results)
	if len(report.Failed) == 0 {
		s.presenter.Info("🎁 Secret Santa assignments have been distributed!")
	}
	return report, nil
}

// Report shows the outcome of the last recorded delivery run.
func (s *SantaService) Report() ([]domain.DeliveryRecord, error) {
	records, err := s.ledger.LastRun()
	if err != nil {
		return nil, err
	}
	s.presenter.DeliveryReport(records)
	return records, nil
}
