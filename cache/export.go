package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Snapshot is the JSON structure for cache export/import. Snapshots let a
// process warm-start its stem cache instead of recomputing a corpus from
// scratch.
type Snapshot struct {
	Version    string      `json:"version"`
	ExportedAt string      `json:"exported_at"`
	Entries    []StemEntry `json:"entries"`
}

// StemEntry is a single cached (key, root) pair.
type StemEntry struct {
	Key  string `json:"key"`
	Root string `json:"root"`
}

// Export writes the contents of an in-memory cache to w as JSON.
func Export(c *Memory, w io.Writer) error {
	data := c.Entries()
	entries := make([]StemEntry, 0, len(data))
	for key, root := range data {
		entries = append(entries, StemEntry{Key: key, Root: root})
	}

	snap := Snapshot{
		Version:    "1",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func ExportToFile(c *Memory, path string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return Export(c, f)
}

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Version  string
	Imported int
	Failed   int
}

// Import reads a snapshot from r and loads its entries into the cache.
func Import(c StemCache, r io.Reader) (*ImportResult, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	result := &ImportResult{Version: snap.Version}
	for _, entry := range snap.Entries {
		if err := c.Set(entry.Key, entry.Root); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportFromFile imports a snapshot from a file.
// The path is provided by the caller and is intentionally user-controlled.
func ImportFromFile(c StemCache, path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Import(c, f)
}
