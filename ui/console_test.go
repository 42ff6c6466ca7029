package ui

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"secret-santa/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConsole_Pairing(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsole(&out, false)

	console.Pairing(domain.NewPairing([]domain.Assignment{
		{Giver: "Alice", Recipient: "Bob"},
		{Giver: "Bob", Recipient: "Alice"},
	}, 1))

	req.Contains(out.String(), "PAIRINGS:")
	req.Regexp(`Alice\s+→\s+Bob`, out.String())
	req.Regexp(`Bob\s+→\s+Alice`, out.String())
}

func TestConsole_DeliverySummary(t *testing.T) {
	t.Run("should congratulate when every email was sent", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		NewConsole(&out, false).DeliverySummary([]domain.DeliveryResult{
			{Giver: "Alice", Address: "alice@example.com"},
			{Giver: "Bob", Address: "bob@example.com"},
		})
		req.Contains(out.String(), "Email sent to Alice")
		req.Contains(out.String(), "Successfully sent 2/2 emails")
	})

	t.Run("should list participants to notify manually", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		NewConsole(&out, false).DeliverySummary([]domain.DeliveryResult{
			{Giver: "Alice", Address: "alice@example.com"},
			{Giver: "Bob", Address: "bob@example.com", Err: fmt.Errorf("mailbox full")},
		})
		req.Contains(out.String(), "Failed to send email to Bob: mailbox full")
		req.Contains(out.String(), "Sent 1/2 emails")
		req.Contains(out.String(), "bob@example.com")
	})
}

func TestConsole_DeliveryReport(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	runID := uuid.New()

	NewConsole(&out, false).DeliveryReport([]domain.DeliveryRecord{
		{RunID: runID, Giver: "Alice", Address: "alice@example.com", Status: domain.Delivered, At: time.Now()},
		{RunID: runID, Giver: "Bob", Address: "bob@example.com", Status: domain.Failed, Error: "timeout", At: time.Now()},
	})

	req.Contains(out.String(), runID.String())
	req.Contains(out.String(), "DELIVERED")
	req.Contains(out.String(), "FAILED")
	req.Contains(out.String(), "timeout")
}

func TestConsole_DeliveryReport_Empty(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	NewConsole(&out, false).DeliveryReport(nil)
	req.Contains(out.String(), "No delivery run recorded yet.")
}
