package profin

import (
	"encoding/json"
	"fmt"
	"io"
)

// The whole state persists as one JSON blob in a single durable slot, written
// wholesale after every accepted command. The envelope carries a schema
// version tag so the format can evolve; blobs written before the tag existed
// decode as version 0.

// SchemaVersion is the version tag written with every snapshot.
const SchemaVersion = 1

type envelope struct {
	Version int `json:"version,omitempty"`
	Snapshot
}

// EncodeSnapshot writes the snapshot as an indented JSON blob, so the stored
// state remains human-readable and diff-friendly.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	env := envelope{Version: SchemaVersion, Snapshot: s.Clone()}
	env.normalize()
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot blob back. It accepts untagged legacy blobs
// and rejects versions newer than it knows how to read.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var env envelope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	if env.Version > SchemaVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", env.Version, SchemaVersion)
	}
	s := env.Snapshot
	s.normalize()
	return &s, nil
}
