package main

import (
	"bytes"
	"context"
	goerrors "errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"secret-santa/errors"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    command
		wantErr error
	}{
		{
			name: "dry run after the file",
			args: []string{"run", "people.csv", "--dry-run"},
			want: command{mode: modeInspect, input: "people.csv"},
		},
		{
			name: "dry run before the file",
			args: []string{"run", "--dry-run", "people.csv"},
			want: command{mode: modeInspect, input: "people.csv"},
		},
		{
			name: "send with yes",
			args: []string{"run", "people.csv", "--send", "--yes"},
			want: command{mode: modeCommit, input: "people.csv", assumeYes: true},
		},
		{
			name: "report",
			args: []string{"report"},
			want: command{mode: modeReport},
		},
		{name: "no command", args: nil, wantErr: errUsage},
		{name: "unknown command", args: []string{"draw"}, wantErr: errUsage},
		{name: "no mode", args: []string{"run", "people.csv"}, wantErr: errUsage},
		{name: "both modes", args: []string{"run", "people.csv", "--dry-run", "--send"}, wantErr: errUsage},
		{name: "no file", args: []string{"run", "--send"}, wantErr: errUsage},
		{name: "two files", args: []string{"run", "a.csv", "b.csv", "--send"}, wantErr: errUsage},
		{name: "yes without send", args: []string{"run", "people.csv", "--dry-run", "--yes"}, wantErr: errUsage},
		{name: "report with arguments", args: []string{"report", "extra"}, wantErr: errUsage},
		{name: "help", args: []string{"--help"}, wantErr: flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := parseCommand(tt.args, io.Discard)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestParseCommand_UnknownFlag(t *testing.T) {
	req := require.New(t)
	_, err := parseCommand([]string{"run", "people.csv", "--shuffle"}, io.Discard)
	req.Error(err)
	req.NotErrorIs(err, errUsage)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"help", flag.ErrHelp, 0},
		{"usage", errUsage, exitUsage},
		{"partial delivery", errPartialDelivery, exitPartialFailure},
		{"input", errors.ErrMissingColumn, exitFailure},
		{"transport", errors.ErrTransport, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err, io.Discard))
		})
	}
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	// .env in the working directory is read by run
	t.Chdir(t.TempDir())
	t.Setenv("LEDGER_PATH", "")
	t.Setenv("COLORS", "false")
	t.Setenv("LOG_LEVEL", "ERROR")
}

func TestRun_DryRunShowsEveryGiver(t *testing.T) {
	req := require.New(t)
	isolateEnv(t)
	path := writeRoster(t, "name,email\nAlice,alice@example.com\nBob,bob@example.com\nCarol,carol@example.com\n")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"run", path, "--dry-run"}, strings.NewReader(""), &stdout, io.Discard)

	req.NoError(err)
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		req.Contains(stdout.String(), name)
	}
	req.Contains(stdout.String(), "→")
}

func TestRun_SendWithOneParticipantFailsBeforePrompting(t *testing.T) {
	req := require.New(t)
	isolateEnv(t)
	path := writeRoster(t, "name,email\nAlice,alice@example.com\n")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"run", path, "--send"}, strings.NewReader(""), &stdout, io.Discard)

	req.ErrorIs(err, errors.ErrInsufficientParticipants)
	req.NotContains(stdout.String(), "→")
}

func TestRun_MissingColumnIsInputError(t *testing.T) {
	req := require.New(t)
	isolateEnv(t)
	path := writeRoster(t, "name,phone\nAlice,123\nBob,456\n")

	err := run(context.Background(), []string{"run", path, "--dry-run"}, strings.NewReader(""), io.Discard, io.Discard)

	req.ErrorIs(err, errors.ErrInput)
	req.Equal(exitFailure, exitCode(err, io.Discard))
}

func TestRun_DeclinedConfirmationIsNotAnError(t *testing.T) {
	req := require.New(t)
	isolateEnv(t)
	path := writeRoster(t, "name,email\nAlice,alice@example.com\nBob,bob@example.com\n")
	// sender, secret, host, port, then a wrong confirmation word
	stdin := strings.NewReader("santa@example.com\nsecret\nlocalhost\n2525\nno\n")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"run", path, "--send"}, stdin, &stdout, io.Discard)

	req.NoError(err)
	req.Contains(stdout.String(), "Cancelled. No emails sent.")
	req.NotContains(stdout.String(), "→")
	req.False(goerrors.Is(err, errors.ErrCancelled))
}
