package fundbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Stored blob names inside the data directory.
const (
	transactionsFile = "transactions.jsonl"
	holdingsFile     = "holdings.jsonl"
	remoteConfigFile = "webdav.json"
)

// Store persists the three named blobs of the tracker in a data directory:
// the transaction journal, the holdings ledger, and the remote sync
// configuration. Saves are whole-collection overwrites.
//
// Loads never fail: a missing or corrupt blob yields the empty collection so
// the tracker stays usable. Corruption is logged, not surfaced.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given data directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadTransactions reads the journal blob. Absent or corrupt data yields an
// empty journal.
func (s *Store) LoadTransactions() []Transaction {
	f, err := os.Open(filepath.Join(s.dir, transactionsFile))
	if err != nil {
		logUnlessMissing(transactionsFile, err)
		return []Transaction{}
	}
	defer f.Close()

	transactions, err := DecodeTransactions(f)
	if err != nil {
		log.Printf("warning: corrupt %s, starting empty: %v", transactionsFile, err)
		return []Transaction{}
	}
	return transactions
}

// SaveTransactions overwrites the journal blob.
func (s *Store) SaveTransactions(transactions []Transaction) error {
	return s.overwrite(transactionsFile, func(f *os.File) error {
		return EncodeTransactions(f, transactions)
	})
}

// LoadHoldings reads the holdings blob. Absent or corrupt data yields an
// empty ledger.
func (s *Store) LoadHoldings() []Holding {
	f, err := os.Open(filepath.Join(s.dir, holdingsFile))
	if err != nil {
		logUnlessMissing(holdingsFile, err)
		return []Holding{}
	}
	defer f.Close()

	holdings, err := DecodeHoldings(f)
	if err != nil {
		log.Printf("warning: corrupt %s, starting empty: %v", holdingsFile, err)
		return []Holding{}
	}
	return holdings
}

// SaveHoldings overwrites the holdings blob.
func (s *Store) SaveHoldings(holdings []Holding) error {
	return s.overwrite(holdingsFile, func(f *os.File) error {
		return EncodeHoldings(f, holdings)
	})
}

// LoadRemoteConfig reads the remote sync configuration. Absent or corrupt
// data yields the zero configuration.
func (s *Store) LoadRemoteConfig() RemoteConfig {
	data, err := os.ReadFile(filepath.Join(s.dir, remoteConfigFile))
	if err != nil {
		logUnlessMissing(remoteConfigFile, err)
		return RemoteConfig{}
	}
	var cfg RemoteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("warning: corrupt %s, ignoring: %v", remoteConfigFile, err)
		return RemoteConfig{}
	}
	return cfg
}

// SaveRemoteConfig overwrites the remote sync configuration.
func (s *Store) SaveRemoteConfig(cfg RemoteConfig) error {
	return s.overwrite(remoteConfigFile, func(f *os.File) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		_, err = f.Write(append(data, '\n'))
		return err
	})
}

// LoadBook loads both collections into a fresh book.
func (s *Store) LoadBook() *Book {
	b := NewBook()
	b.ReplaceAll(s.LoadTransactions(), s.LoadHoldings())
	return b
}

// SaveBook persists both collections of the book.
func (s *Store) SaveBook(b *Book) error {
	if err := s.SaveTransactions(b.AllTransactions()); err != nil {
		return err
	}
	return s.SaveHoldings(b.AllHoldings())
}

// overwrite replaces one blob. The content is written to a temporary file
// first and renamed over the old blob, so a failed write leaves the previous
// blob intact.
func (s *Store) overwrite(name string, write func(*os.File) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	tmp := f.Name()
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

func logUnlessMissing(name string, err error) {
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: cannot read %s, starting empty: %v", name, err)
	}
}
