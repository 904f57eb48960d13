//go:generate go run go.uber.org/mock/mockgen -source=term_count.go -destination=../mocks/mock_term_count_repository.go -package=mocks
package repositories

import (
	"fmt"
	"hashlens/unhash"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const termPrefix = "term:"

type ITermCountRepository interface {
	Store(counts []unhash.TermCount) error
	Load() ([]unhash.TermCount, error)
	Clear() error
}

type TermCountRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTermCountRepository(db *badger.DB, log *slog.Logger) TermCountRepository {
	return TermCountRepository{db: db, log: log}
}

// Store replaces the stored snapshot.
// Keys are "term:{rank}" with a 19 digit zero padded rank so that a prefix scan
// returns the counts in the order they were given. Ranks are overwritten in place
// and only the ranks past the new snapshot are dropped afterwards, so a failed
// write leaves the previous snapshot readable.
func (r TermCountRepository) Store(counts []unhash.TermCount) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for rank, tc := range counts {
		value, err := structpb.NewStruct(map[string]any{
			"term":  tc.Term,
			"count": tc.Count,
		})
		if err != nil {
			return err
		}
		bytes, err := proto.Marshal(value)
		if err != nil {
			return err
		}
		if err = wb.Set(termKey(rank), bytes); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	stale, err := r.dropFrom(len(counts))
	if err != nil {
		return err
	}
	r.log.Debug("Term counts stored", "terms", len(counts), "stale", stale)
	return nil
}

// dropFrom deletes every stored rank greater than or equal to rank.
func (r TermCountRepository) dropFrom(rank int) (int, error) {
	var keys [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(termPrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(termKey(rank)); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil || len(keys) == 0 {
		return 0, err
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return 0, err
		}
	}
	return len(keys), wb.Flush()
}

func termKey(rank int) []byte {
	return []byte(fmt.Sprintf("%s%019d", termPrefix, rank))
}

func (r TermCountRepository) Load() ([]unhash.TermCount, error) {
	var counts []unhash.TermCount
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(termPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var value structpb.Struct
				if err := proto.Unmarshal(v, &value); err != nil {
					return err
				}
				counts = append(counts, unhash.TermCount{
					Term:  value.GetFields()["term"].GetStringValue(),
					Count: int(value.GetFields()["count"].GetNumberValue()),
				})
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
	return counts, nil
}

func (r TermCountRepository) Clear() error {
	return r.db.DropPrefix([]byte(termPrefix))
}
