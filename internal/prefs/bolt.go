package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPrefs = "preferences"

// openTimeout bounds how long OpenBolt waits for another process holding
// the file lock.
const openTimeout = time.Second

// Bolt is a Store backed by a bbolt database file.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path, creating parent
// directories as needed.
func OpenBolt(path string) (*Bolt, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create preference directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open preference store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPrefs))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize preference store: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Get returns the value stored for key.
func (s *Bolt) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketPrefs)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, s.wrap(err)
}

// Set stores value under key.
func (s *Bolt) Set(key, value string) error {
	return s.wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPrefs)).Put([]byte(key), []byte(value))
	}))
}

// Delete removes key.
func (s *Bolt) Delete(key string) error {
	return s.wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPrefs)).Delete([]byte(key))
	}))
}

// Path returns the database file path.
func (s *Bolt) Path() string {
	return s.db.Path()
}

// Close closes the database.
func (s *Bolt) Close() error {
	return s.db.Close()
}

func (s *Bolt) wrap(err error) error {
	if err == bolt.ErrDatabaseNotOpen {
		return ErrClosed
	}
	return err
}

var _ Store = (*Bolt)(nil)
