package syncstore

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// ErrNotFound indicates the key has no stored value. Cache treats it as
// a miss; every Store implementation must return it (possibly wrapped)
// from Get on absent keys.
var ErrNotFound = errors.New("syncstore: key not found")

// Store is the minimal key-value surface the cache runs on.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set durably stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// BadgerStore is a Store over a badger database directory.
type BadgerStore struct {
	db *badger.DB
}

// Open opens (creating if needed) the badger database in dir.
func Open(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own chatter is noise here
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "syncstore: open %s", dir)
	}

	return &BadgerStore{db: db}, nil
}

// Get implements Store.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrap(ErrNotFound, key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "syncstore: get %s", key)
	}

	return value, nil
}

// Set implements Store.
func (s *BadgerStore) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})

	return errors.Wrapf(err, "syncstore: set %s", key)
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	return errors.Wrap(s.db.Close(), "syncstore: close")
}
