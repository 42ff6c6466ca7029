package ui

import (
	"bytes"
	"strings"
	"testing"

	"secret-santa/domain"
	"secret-santa/errors"

	"github.com/stretchr/testify/require"
)

var defaults = domain.Credentials{Host: "smtp.gmail.com", Port: 587}

func TestPrompter_Credentials(t *testing.T) {
	t.Run("should apply defaults for host and port", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		prompter := NewPrompter(strings.NewReader("santa@example.com\ns3cret\n\n\n"), &out)

		credentials, err := prompter.Credentials(defaults)

		req.NoError(err)
		req.Equal(domain.Credentials{
			Sender: "santa@example.com",
			Secret: "s3cret",
			Host:   "smtp.gmail.com",
			Port:   587,
		}, credentials)
		req.NotContains(out.String(), "s3cret")
		req.Contains(out.String(), "default: smtp.gmail.com")
	})

	t.Run("should use the configured sender as default", func(t *testing.T) {
		req := require.New(t)
		prompter := NewPrompter(strings.NewReader("\ns3cret\nsmtp.example.com\n465\n"), &bytes.Buffer{})

		credentials, err := prompter.Credentials(domain.Credentials{Sender: "org@example.com", Host: "smtp.gmail.com", Port: 587})

		req.NoError(err)
		req.Equal("org@example.com", credentials.Sender)
		req.Equal("smtp.example.com", credentials.Host)
		req.Equal(465, credentials.Port)
	})

	t.Run("should reject a non numeric port", func(t *testing.T) {
		req := require.New(t)
		prompter := NewPrompter(strings.NewReader("santa@example.com\ns3cret\n\nabc\n"), &bytes.Buffer{})
		_, err := prompter.Credentials(defaults)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should reject an invalid sender", func(t *testing.T) {
		req := require.New(t)
		prompter := NewPrompter(strings.NewReader("santa\ns3cret\n\n\n"), &bytes.Buffer{})
		_, err := prompter.Credentials(defaults)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should reject an empty secret", func(t *testing.T) {
		req := require.New(t)
		prompter := NewPrompter(strings.NewReader("santa@example.com\n\n\n\n"), &bytes.Buffer{})
		_, err := prompter.Credentials(defaults)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should fail when input ends early", func(t *testing.T) {
		req := require.New(t)
		prompter := NewPrompter(strings.NewReader("santa@example.com\n"), &bytes.Buffer{})
		_, err := prompter.Credentials(defaults)
		req.Error(err)
	})
}

func TestPrompter_Credentials_Host(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		wantErr bool
	}{
		{"Named relay", "smtp.example.com", false},
		{"Label starting with a digit", "1and1.example.com", false},
		{"Digit only label", "mail.123.example.com", false},
		{"IP address", "192.0.2.10", false},
		{"Embedded space", "smtp example.com", true},
		{"Forbidden character", "smtp_relay!.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			input := "santa@example.com\ns3cret\n" + tt.host + "\n587\n"
			prompter := NewPrompter(strings.NewReader(input), &bytes.Buffer{})

			credentials, err := prompter.Credentials(defaults)

			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidCredentials)
				return
			}
			req.NoError(err)
			req.Equal(tt.host, credentials.Host)
		})
	}
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Exact keyword", "SEND\n", true},
		{"Keyword without newline", "SEND", true},
		{"Lower case is refused", "send\n", false},
		{"Empty answer is refused", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ok, err := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{}).Confirm("Type 'SEND' to confirm", "SEND")
			req.NoError(err)
			req.Equal(tt.want, ok)
		})
	}
}
