package errors

import "fmt"

var (
	ErrInput             = fmt.Errorf("invalid input")
	ErrUnsupportedFile   = fmt.Errorf("%w: unsupported participant file", ErrInput)
	ErrMissingColumn     = fmt.Errorf("%w: missing column", ErrInput)
	ErrDuplicateName     = fmt.Errorf("%w: duplicate participant name", ErrInput)
	ErrEmptyParticipants = fmt.Errorf("%w: no participants", ErrInput)
	ErrInvalidAddress    = fmt.Errorf("%w: invalid participant address", ErrInput)

	ErrInsufficientParticipants = fmt.Errorf("at least 2 participants are required")
	ErrPairingExhausted         = fmt.Errorf("could not find a valid pairing")
	ErrInvalidAttempts          = fmt.Errorf("maximum attempts must be at least 1")
	ErrInvalidPairing           = fmt.Errorf("invalid pairing")

	ErrTransport          = fmt.Errorf("transport unavailable")
	ErrInvalidCredentials = fmt.Errorf("invalid transport credentials")
	ErrDelivery           = fmt.Errorf("delivery failed")
	ErrMissingContact     = fmt.Errorf("%w: no contact address", ErrDelivery)

	ErrCancelled      = fmt.Errorf("cancelled by operator")
	ErrLedgerDisabled = fmt.Errorf("delivery ledger is disabled, set LEDGER_PATH")
	ErrInvalidConfig  = fmt.Errorf("invalid configuration")
)
