// Package store caches raw NHL API responses as JSON files on disk, keyed
// by relative path under a root directory. Cached lookups let repeated
// simulations of the same matchup skip the network entirely.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

type JSONStore struct {
	Root string // e.g. "data/raw"
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WriteRaw stores body at rel, creating parent directories. When pretty is
// set and body is valid JSON it is re-indented before writing; invalid JSON
// is stored as-is so a bad API response is still inspectable on disk.
func (s *JSONStore) WriteRaw(rel string, body []byte, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}

// ReadJSON reads rel and unmarshals it into v.
func (s *JSONStore) ReadJSON(rel string, v any) error {
	raw, err := s.ReadRaw(rel)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
