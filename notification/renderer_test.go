package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRenderer(t *testing.T) {
	tests := []struct {
		name            string
		subject         string
		expectedSubject string
	}{
		{"Default subject", "", DefaultSubject},
		{"Custom subject", "Office party draw", "Office party draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			message, err := DefaultRenderer(tt.subject)("Alice", "Bob")
			req.NoError(err)
			req.Equal(tt.expectedSubject, message.Subject)
			req.Contains(message.Body, "Ho Ho Ho Alice!")
			req.Contains(message.Body, "You are the Secret Santa for: Bob")
			req.Empty(message.To)
		})
	}
}
