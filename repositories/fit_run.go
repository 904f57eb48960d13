//go:generate go run go.uber.org/mock/mockgen -source=fit_run.go -destination=../mocks/mock_fit_run_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const fitRunPrefix = "fit:"

type IFitRunRepository interface {
	Store(run FitRun) error
	List(limit *int) ([]FitRun, error)
}

type FitRunRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFitRunRepository(db *badger.DB, log *slog.Logger) FitRunRepository {
	return FitRunRepository{db: db, log: log}
}

// FitRun records one fit or partial fit performed against the store.
type FitRun struct {
	ID        uuid.UUID
	At        time.Time
	Documents int
	Terms     int
	NFeatures int
	Resumed   bool
}

// Store persists a run under "fit:{timestamp_padded}:{uuid}" so that runs sort chronologically.
func (r FitRunRepository) Store(run FitRun) error {
	key := fmt.Sprintf("%s%019d:%s", fitRunPrefix, run.At.UnixNano(), run.ID)
	value, err := structpb.NewStruct(map[string]any{
		"id":         run.ID.String(),
		"at":         run.At.UTC().Format(time.RFC3339Nano),
		"documents":  run.Documents,
		"terms":      run.Terms,
		"n_features": run.NFeatures,
		"resumed":    run.Resumed,
	})
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns the runs newest first, at most limit of them when limit is set.
func (r FitRunRepository) List(limit *int) ([]FitRun, error) {
	var runs []FitRun
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fitRunPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(runs) == *limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d runs reached", *limit))
				break
			}
			err := it.Item().Value(func(v []byte) error {
				run, err := toFitRun(v)
				if err != nil {
					return err
				}
				runs = append(runs, run)
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
	return runs, nil
}

func toFitRun(v []byte) (FitRun, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(v, &value); err != nil {
		return FitRun{}, err
	}
	fields := value.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return FitRun{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return FitRun{}, err
	}
	return FitRun{
		ID:        id,
		At:        at,
		Documents: int(fields["documents"].GetNumberValue()),
		Terms:     int(fields["terms"].GetNumberValue()),
		NFeatures: int(fields["n_features"].GetNumberValue()),
		Resumed:   fields["resumed"].GetBoolValue(),
	}, nil
}
