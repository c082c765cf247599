package profin

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Gateway reads and writes the one durable slot holding the serialized
// snapshot. Load runs once at rehydration, Save after every accepted command,
// always overwriting the full prior content.
type Gateway interface {
	// Load returns the stored snapshot, or ok=false when the slot is empty.
	// A malformed slot is an error; callers fall back to the seed snapshot.
	Load() (s *Snapshot, ok bool, err error)
	// Save overwrites the slot with the full snapshot.
	Save(s *Snapshot) error
}

// FileGateway keeps the slot in a single JSON file. Writes go through a
// temporary file and a rename, so a crash mid-write never corrupts the slot.
type FileGateway struct {
	Path string
}

// NewFileGateway returns a gateway over the given file path.
func NewFileGateway(path string) *FileGateway { return &FileGateway{Path: path} }

func (g *FileGateway) Load() (*Snapshot, bool, error) {
	f, err := os.Open(g.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cannot open state file %q: %w", g.Path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, false, fmt.Errorf("cannot read state file %q: %w", g.Path, err)
	}
	return s, true, nil
}

func (g *FileGateway) Save(s *Snapshot) error {
	dir := filepath.Dir(g.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create state directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(g.Path)+".*")
	if err != nil {
		return fmt.Errorf("cannot create temporary state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), g.Path); err != nil {
		return fmt.Errorf("cannot replace state file %q: %w", g.Path, err)
	}
	return nil
}

// MemoryGateway keeps the slot in memory. It exists for tests and for running
// the store with persistence entirely stubbed out.
type MemoryGateway struct {
	buf []byte
}

func (g *MemoryGateway) Load() (*Snapshot, bool, error) {
	if g.buf == nil {
		return nil, false, nil
	}
	s, err := DecodeSnapshot(bytes.NewReader(g.buf))
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (g *MemoryGateway) Save(s *Snapshot) error {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return err
	}
	g.buf = buf.Bytes()
	return nil
}
