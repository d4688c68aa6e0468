package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	perftPrefix = "perft:"
	gamePrefix  = "game:"
)

// Store wraps an embedded BadgerDB instance holding two use cases: a
// perft leaf-count cache keyed by position and depth, and named saved
// games recording a starting FEN plus a UCI move history.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the BadgerDB database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the database at the platform's default data
// directory.
func OpenDefault() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%s|%d", perftPrefix, fen, depth))
}

// CachePerft records the leaf-node count for a (FEN, depth) pair.
func (s *Store) CachePerft(fen string, depth int, nodes int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(nodes))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), buf[:])
	})
}

// LookupPerft returns a previously cached leaf-node count, and whether
// one was found.
func (s *Store) LookupPerft(fen string, depth int) (int64, bool, error) {
	var nodes int64
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			nodes = int64(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	return nodes, found, err
}

// SavedGame is a named game record: the FEN it started from and the
// UCI move sequence played from that position.
type SavedGame struct {
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	SavedAt  time.Time `json:"saved_at"`
}

func gameKey(name string) []byte {
	return []byte(gamePrefix + name)
}

// SaveGame persists a named game, overwriting any existing game with
// the same name.
func (s *Store) SaveGame(name string, g SavedGame) error {
	g.SavedAt = time.Now()
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
}

// LoadGame retrieves a previously saved game by name.
func (s *Store) LoadGame(name string) (SavedGame, error) {
	var g SavedGame
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	return g, err
}

// ListGames returns the names of every saved game.
func (s *Store) ListGames() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			names = append(names, string(key[len(gamePrefix):]))
		}
		return nil
	})
	return names, err
}
