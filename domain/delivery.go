package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryStatus string

const (
	Delivered DeliveryStatus = "delivered"
	Failed    DeliveryStatus = "failed"
)

// DeliveryResult is the outcome of notifying one giver.
type DeliveryResult struct {
	Giver   string
	Address string
	Err     error
}

func (r DeliveryResult) Delivered() bool {
	return r.Err == nil
}

func (r DeliveryResult) Status() DeliveryStatus {
	if r.Delivered() {
		return Delivered
	}
	return Failed
}

// DeliveryRecord is what the ledger keeps about a delivery.
// It never holds the recipient, pairings are not persisted.
type DeliveryRecord struct {
	RunID    uuid.UUID
	Position int
	Giver    string
	Address  string
	Status   DeliveryStatus
	Error    string
	At       time.Time
}
