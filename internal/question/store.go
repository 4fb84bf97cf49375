package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNotJSON is returned when a quiz file lacks the .json extension
	ErrNotJSON = errors.New("quiz file must be a JSON file (.json extension)")
	// ErrNotFound is returned when a quiz file does not exist
	ErrNotFound = errors.New("quiz file not found")
)

// DefaultFilePerm is the mode used for written question files
const DefaultFilePerm = 0o644

// LoadResult holds the usable records of a persisted list
type LoadResult struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`   // entries in the file, nulls included
	Dropped int      `json:"dropped"` // null or schema-invalid entries
}

// Encode writes entries as a pretty-printed JSON array. Nil entries are
// written as null.
func Encode(w io.Writer, entries []*Record) error {
	if entries == nil {
		entries = []*Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}
	return nil
}

// Save writes entries to path, replacing any existing file
func Save(path string, entries []*Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), DefaultFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Decode reads a persisted list, dropping null entries and entries that do
// not satisfy the record schema.
func Decode(r io.Reader) (*LoadResult, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	result := &LoadResult{
		Records: make([]Record, 0, len(raw)),
		Total:   len(raw),
	}
	for _, entry := range raw {
		if isNull(entry) || ValidateEntry(entry) != nil {
			result.Dropped++
			continue
		}
		var rec Record
		if err := json.Unmarshal(entry, &rec); err != nil {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// CheckPath verifies that path names an existing .json file
func CheckPath(path string) error {
	if !strings.HasSuffix(path, ".json") {
		return ErrNotJSON
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("cannot access quiz file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// Load reads the persisted list at path
func Load(path string) (*LoadResult, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
