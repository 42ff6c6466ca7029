// Package pairing draws secret santa assignments.
// It is pure computation: no I/O, randomness is injected through the Engine.
package pairing

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"secret-santa/domain"
	"secret-santa/errors"

	"github.com/samber/lo"
)

const DefaultMaxAttempts = 100

// ExhaustedError is returned when no derangement was found within the
// attempt budget. It matches errors.ErrPairingExhausted.
type ExhaustedError struct {
	Attempts     int
	Participants int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts for %d participants, re-run to draw again",
		errors.ErrPairingExhausted, e.Attempts, e.Participants)
}

func (e *ExhaustedError) Unwrap() error {
	return errors.ErrPairingExhausted
}

type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine drawing from rng.
// A nil rng is replaced by a PCG source seeded from the clock.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	return &Engine{rng: rng}
}

// Generate draws a derangement of participants by rejection sampling:
// shuffle the names, zip them against the input order and retry while any
// giver drew themselves. Fewer than two participants can never be deranged
// and fail before any attempt is consumed.
func (e *Engine) Generate(participants []domain.Participant, maxAttempts int) (domain.Pairing, error) {
	n := len(participants)
	if n < 2 {
		return domain.Pairing{}, fmt.Errorf("%w: got %d", errors.ErrInsufficientParticipants, n)
	}
	if maxAttempts < 1 {
		return domain.Pairing{}, fmt.Errorf("%w: got %d", errors.ErrInvalidAttempts, maxAttempts)
	}
	givers := domain.Names(participants)
	if duplicates := lo.FindDuplicates(givers); len(duplicates) > 0 {
		return domain.Pairing{}, fmt.Errorf("%w: %v", errors.ErrDuplicateName, duplicates)
	}

	recipients := slices.Clone(givers)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		e.rng.Shuffle(n, func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})
		if hasFixedPoint(givers, recipients) {
			continue
		}
		assignments := make([]domain.Assignment, n)
		for i := range givers {
			assignments[i] = domain.Assignment{Giver: givers[i], Recipient: recipients[i]}
		}
		return domain.NewPairing(assignments, attempt), nil
	}
	return domain.Pairing{}, &ExhaustedError{Attempts: maxAttempts, Participants: n}
}

func hasFixedPoint(givers, recipients []string) bool {
	for i := range givers {
		if givers[i] == recipients[i] {
			return true
		}
	}
	return false
}

// Validate checks that pairing is a bijection over participants with no
// fixed points. A pairing that passes once always passes again.
func Validate(pairing domain.Pairing, participants []domain.Participant) error {
	assignments := pairing.Assignments()
	if len(assignments) != len(participants) {
		return fmt.Errorf("%w: %d assignments for %d participants",
			errors.ErrInvalidPairing, len(assignments), len(participants))
	}
	names := lo.SliceToMap(participants, func(p domain.Participant) (string, struct{}) {
		return p.Name, struct{}{}
	})
	givers := make(map[string]struct{}, len(assignments))
	recipients := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if a.Giver == a.Recipient {
			return fmt.Errorf("%w: %s drew themselves", errors.ErrInvalidPairing, a.Giver)
		}
		if _, ok := names[a.Giver]; !ok {
			return fmt.Errorf("%w: unknown giver %s", errors.ErrInvalidPairing, a.Giver)
		}
		if _, ok := names[a.Recipient]; !ok {
			return fmt.Errorf("%w: unknown recipient %s", errors.ErrInvalidPairing, a.Recipient)
		}
		if _, seen := givers[a.Giver]; seen {
			return fmt.Errorf("%w: %s gives twice", errors.ErrInvalidPairing, a.Giver)
		}
		if _, seen := recipients[a.Recipient]; seen {
			return fmt.Errorf("%w: %s receives twice", errors.ErrInvalidPairing, a.Recipient)
		}
		givers[a.Giver] = struct{}{}
		recipients[a.Recipient] = struct{}{}
	}
	return nil
}
