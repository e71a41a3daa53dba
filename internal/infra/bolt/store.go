package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
)

var entriesBucket = []byte("entries")

// Store persists configured entries in a bbolt file, keyed by entry ID.
type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Add(_ context.Context, entry domain.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(entriesBucket)
		if b.Get([]byte(entry.ID)) != nil {
			return fmt.Errorf("entry %s already exists", entry.ID)
		}
		return b.Put([]byte(entry.ID), data)
	})
}

func (s *Store) Get(_ context.Context, id string) (domain.Entry, error) {
	var entry domain.Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(entriesBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
		}
		return json.Unmarshal(v, &entry)
	})
	return entry, err
}

func (s *Store) FindByUniqueID(ctx context.Context, domainName, uniqueID string) (domain.Entry, bool, error) {
	entries, err := s.List(ctx, domainName)
	if err != nil {
		return domain.Entry{}, false, err
	}
	for _, entry := range entries {
		if entry.UniqueID == uniqueID {
			return entry, true, nil
		}
	}
	return domain.Entry{}, false, nil
}

func (s *Store) List(_ context.Context, domainName string) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(entriesBucket).ForEach(func(k, v []byte) error {
			var entry domain.Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("decoding entry %s: %w", k, err)
			}
			if domainName == "" || entry.Domain == domainName {
				entries = append(entries, entry)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	application.SortEntries(entries)
	return entries, nil
}

func (s *Store) Remove(_ context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(entriesBucket)
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
		}
		return b.Delete([]byte(id))
	})
}
