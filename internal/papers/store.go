// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Papers maps a canonical entry key to its formatted row.
type Papers map[string]string

// Store is the persisted paper document: topic name to its papers. The
// on-disk form is a single JSON object with the same shape.
type Store map[string]Papers

// TopicPapers is one topic's fetched batch, in fetch order.
type TopicPapers struct {
	Topic  string
	Papers Papers
}

// Load reads the store at path. A missing or empty file is an empty store,
// not an error.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Store{}, nil
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", path, err)
	}
	if s == nil {
		s = Store{}
	}
	return s, nil
}

// Save writes the store to path as one JSON document. The write goes
// through a temp file in the same directory and a rename, so a failed run
// never leaves a partially written store behind.
func (s Store) Save(path string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store %s: %w", path, err)
	}
	return nil
}

// Count returns the total number of entries across all topics.
func (s Store) Count() int {
	n := 0
	for _, entries := range s {
		n += len(entries)
	}
	return n
}
