//go:generate go run go.uber.org/mock/mockgen -source=delivery.go -destination=../mocks/mock_delivery_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"secret-santa/domain"
	"secret-santa/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const runPrefix = "run:"

type IDeliveryRepository interface {
	StoreResults(runID uuid.UUID, at time.Time, results []domain.DeliveryResult) error
	LastRun() ([]domain.DeliveryRecord, error)
}

type DeliveryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDeliveryRepository(db *badger.DB, log *slog.Logger) DeliveryRepository {
	return DeliveryRepository{db: db, log: log}
}

// StoreResults persists the outcome of every delivery of a run.
// Keys are formatted as "run:{timestamp_padded}:{run_id}:{position_padded}" so
// runs sort chronologically and records keep the pairing order.
// Recipients are never written, only who was (or was not) notified.
func (r DeliveryRepository) StoreResults(runID uuid.UUID, at time.Time, results []domain.DeliveryResult) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for i, result := range results {
			record := domain.DeliveryRecord{
				RunID:    runID,
				Position: i,
				Giver:    result.Giver,
				Address:  result.Address,
				Status:   result.Status(),
				At:       at.UTC(),
			}
			if result.Err != nil {
				record.Error = result.Err.Error()
			}
			bytes, err := marshalRecord(record)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(recordKey(record)), bytes); err != nil {
				return err
			}
		}
		r.log.Debug("Delivery run recorded", "run_id", runID, "records", len(results))
		return nil
	})
}

// LastRun returns the records of the most recent run in pairing order.
// The scan walks keys backwards from the newest timestamp and stops at the
// first key belonging to another run.
func (r DeliveryRepository) LastRun() ([]domain.DeliveryRecord, error) {
	var records []domain.DeliveryRecord
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(runPrefix)
		var runKey string
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			current := runKeyOf(key)
			if runKey == "" {
				runKey = current
			}
			if current != runKey {
				break
			}
			err := item.Value(func(value []byte) error {
				record, err := unmarshalRecord(value)
				if err != nil {
					return fmt.Errorf("decoding %s: %w", key, err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(records)
	return records, nil
}

func recordKey(record domain.DeliveryRecord) string {
	return fmt.Sprintf("%s%019d:%s:%06d", runPrefix, record.At.UnixNano(), record.RunID, record.Position)
}

// runKeyOf strips the position from a record key.
func runKeyOf(key string) string {
	return key[:strings.LastIndex(key, ":")]
}

func marshalRecord(record domain.DeliveryRecord) ([]byte, error) {
	value, err := structpb.NewStruct(map[string]any{
		"run_id":   record.RunID.String(),
		"position": record.Position,
		"giver":    record.Giver,
		"address":  record.Address,
		"status":   string(record.Status),
		"error":    record.Error,
		"at":       record.At.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(value)
}

func unmarshalRecord(bytes []byte) (domain.DeliveryRecord, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(bytes, &value); err != nil {
		return domain.DeliveryRecord{}, err
	}
	fields := value.GetFields()
	runID, err := uuid.Parse(fields["run_id"].GetStringValue())
	if err != nil {
		return domain.DeliveryRecord{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.DeliveryRecord{}, err
	}
	return domain.DeliveryRecord{
		RunID:    runID,
		Position: int(fields["position"].GetNumberValue()),
		Giver:    fields["giver"].GetStringValue(),
		Address:  fields["address"].GetStringValue(),
		Status:   domain.DeliveryStatus(fields["status"].GetStringValue()),
		Error:    fields["error"].GetStringValue(),
		At:       at.UTC(),
	}, nil
}

// Failures filters the records that need a manual notification.
func Failures(records []domain.DeliveryRecord) []domain.DeliveryRecord {
	return lo.Filter(records, func(r domain.DeliveryRecord, _ int) bool {
		return r.Status == domain.Failed
	})
}

// NoopDeliveryRepository is used when no ledger path is configured.
type NoopDeliveryRepository struct{}

func (NoopDeliveryRepository) StoreResults(uuid.UUID, time.Time, []domain.DeliveryResult) error {
	return nil
}

func (NoopDeliveryRepository) LastRun() ([]domain.DeliveryRecord, error) {
	return nil, errors.ErrLedgerDisabled
}
