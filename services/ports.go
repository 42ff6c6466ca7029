//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package services

import (
	"context"

	"secret-santa/domain"
	"secret-santa/notification"
)

type ParticipantLoader interface {
	Load(path string) ([]domain.Participant, error)
}

type PairingGenerator interface {
	Generate(participants []domain.Participant, maxAttempts int) (domain.Pairing, error)
}

type Notifier interface {
	NotifyAll(ctx context.Context, pairing domain.Pairing, contacts map[string]string, render notification.Renderer) ([]domain.DeliveryResult, error)
}

// NotifierFactory builds a notifier once the operator has provided credentials.
type NotifierFactory func(credentials domain.Credentials) Notifier

type Presenter interface {
	Banner(title string)
	Info(message string)
	Success(message string)
	Warn(message string)
	Participants(participants []domain.Participant)
	Pairing(pairing domain.Pairing)
	SMTPHints()
	DeliverySummary(results []domain.DeliveryResult)
	DeliveryReport(records []domain.DeliveryRecord)
}

type Prompter interface {
	Credentials(defaults domain.Credentials) (domain.Credentials, error)
	Confirm(label, expected string) (bool, error)
}
