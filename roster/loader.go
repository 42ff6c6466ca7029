// Package roster loads the participant list of a draw from a CSV file.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"secret-santa/domain"
	"secret-santa/domain/mimetypes"
	"secret-santa/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	nameColumn = "name"
)

// addressColumns are accepted spellings of the contact column.
var addressColumns = []string{"email", "address"}

type Loader struct {
	log       *slog.Logger
	validator *validator.Validate
}

func NewLoader(log *slog.Logger) *Loader {
	return &Loader{
		log:       log,
		validator: validator.New(),
	}
}

// Load reads participants from the CSV file at path.
// Every failure wraps errors.ErrInput and happens before any draw is made.
func (l *Loader) Load(path string) ([]domain.Participant, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInput, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a file", errors.ErrUnsupportedFile, path)
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInput, err)
	}
	if _, ok := mimetypes.MatchesAny(detected.String(), mimetypes.Tabular...); !ok {
		return nil, fmt.Errorf("%w: %s detected as %s", errors.ErrUnsupportedFile, path, detected.String())
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInput, err)
	}
	defer file.Close()

	participants, err := l.Read(file)
	if err != nil {
		return nil, err
	}
	l.log.Debug("Participants loaded", "path", path, "count", len(participants))
	return participants, nil
}

// Read parses participants from CSV content with a header row.
func (l *Loader) Read(r io.Reader) ([]domain.Participant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: header row is missing", errors.ErrEmptyParticipants)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInput, err)
	}
	nameIdx, addressIdx, err := columns(header)
	if err != nil {
		return nil, err
	}

	var participants []domain.Participant
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInput, err)
		}
		line, _ := reader.FieldPos(0)
		name, address := cell(record, nameIdx), cell(record, addressIdx)
		if name == "" && address == "" {
			continue
		}
		participant := domain.Participant{Name: name, Address: address}
		if err := l.validator.Struct(participant); err != nil {
			if name == "" || address == "" {
				return nil, fmt.Errorf("%w: line %d: name and address are both required", errors.ErrInput, line)
			}
			return nil, fmt.Errorf("%w: line %d: %q", errors.ErrInvalidAddress, line, address)
		}
		participants = append(participants, participant)
	}

	if len(participants) == 0 {
		return nil, errors.ErrEmptyParticipants
	}
	duplicates := lo.FindDuplicatesBy(participants, func(p domain.Participant) string {
		return strings.ToLower(p.Name)
	})
	if len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrDuplicateName,
			strings.Join(domain.Names(duplicates), ", "))
	}
	return participants, nil
}

func columns(header []string) (nameIdx, addressIdx int, err error) {
	normalized := lo.Map(header, func(h string, _ int) string {
		return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	})
	nameIdx = lo.IndexOf(normalized, nameColumn)
	if nameIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", errors.ErrMissingColumn, nameColumn)
	}
	addressIdx = -1
	for _, column := range addressColumns {
		if addressIdx = lo.IndexOf(normalized, column); addressIdx >= 0 {
			break
		}
	}
	if addressIdx < 0 {
		return 0, 0, fmt.Errorf("%w: one of %q", errors.ErrMissingColumn, addressColumns)
	}
	return nameIdx, addressIdx, nil
}

func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
