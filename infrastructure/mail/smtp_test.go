package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"secret-santa/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("should address the message to the giver only", func(t *testing.T) {
		req := require.New(t)
		msg, err := NewMessage("santa@example.com", domain.Message{
			To:      "alice@example.com",
			Subject: "Your assignment",
			Body:    "You are the Secret Santa for: Bob",
		})
		req.NoError(err)

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		req.NoError(err)
		raw := buf.String()
		req.Contains(raw, "From: <santa@example.com>")
		req.Contains(raw, "To: <alice@example.com>")
		req.Contains(raw, "Subject: Your assignment")
		req.Contains(raw, "Secret Santa for: Bob")
	})

	t.Run("should reject an invalid recipient", func(t *testing.T) {
		req := require.New(t)
		_, err := NewMessage("santa@example.com", domain.Message{To: "not an address"})
		req.Error(err)
	})

	t.Run("should reject an invalid sender", func(t *testing.T) {
		req := require.New(t)
		_, err := NewMessage("", domain.Message{To: "alice@example.com"})
		req.Error(err)
	})
}

func TestOpener_Open_UnreachableRelay(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opener := NewOpener(logs.GetLoggerFromLevel(slog.LevelDebug), domain.Credentials{
		Sender: "santa@example.com",
		Secret: "hunter2",
		Host:   "127.0.0.1",
		Port:   1,
	}, time.Second)

	session, err := opener.Open(ctx)

	req.Error(err)
	req.Nil(session)
	req.NotContains(err.Error(), "hunter2")
}

func TestNewOpener_Timeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"Configured timeout is kept", 5 * time.Second, 5 * time.Second},
		{"Zero falls back to the default", 0, defaultTimeout},
		{"Negative falls back to the default", -time.Second, defaultTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(log, domain.Credentials{Host: "127.0.0.1", Port: 587}, tt.timeout)
			require.Equal(t, tt.want, opener.timeout)
		})
	}
}
