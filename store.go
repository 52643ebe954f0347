package stockroom

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Default snapshot file names inside the data directory.
const (
	InventoryFile = "inventory.jsonl"
	SalesFile     = "sales.jsonl"
)

// Store reads and writes the inventory and sales snapshots in a data
// directory. It is the only component touching the filesystem.
type Store struct {
	dir    string
	events EventSink
}

// NewStore creates a store rooted at dir. A nil sink discards events.
func NewStore(dir string, events EventSink) *Store {
	if events == nil {
		events = DiscardEvents
	}
	return &Store{dir: dir, events: events}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Load reads both snapshots and returns a populated inventory (with its
// ledger). Missing files are not an error: the system starts empty.
func (s *Store) Load() (*Inventory, error) {
	ledger, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, InventoryFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewInventory(ledger, s.events), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f, ledger, s.events)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return inv, nil
}

func (s *Store) loadLedger() (*Ledger, error) {
	path := filepath.Join(s.dir, SalesFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(s.events), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open sales file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f, s.events)
	if err != nil {
		return nil, fmt.Errorf("could not decode sales file %q: %w", path, err)
	}
	return ledger, nil
}

// Save overwrites both snapshots. Each file is written to a temporary file
// first and atomically renamed into place, so a crash mid-write never leaves
// a partially written snapshot visible.
func (s *Store) Save(inv *Inventory) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	if err := s.writeAtomic(InventoryFile, func(w io.Writer) error {
		return EncodeInventory(w, inv)
	}); err != nil {
		return err
	}
	return s.writeAtomic(SalesFile, func(w io.Writer) error {
		return EncodeLedger(w, inv.Ledger())
	})
}

// writeAtomic writes the encoded content to a temp file in the data
// directory, then renames it over the target.
func (s *Store) writeAtomic(name string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %q: %w", name, err)
	}
	target := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("could not replace %q: %w", target, err)
	}
	return nil
}
