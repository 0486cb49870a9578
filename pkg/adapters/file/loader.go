package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aretw0/orgtree/pkg/schema"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the definition file does not exist.
var ErrNotFound = errors.New("definition file not found")

// ErrUnsupportedFormat is returned for extensions other than .yaml, .yml and .json.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// Loader implements ports.DefinitionLoader by reading a definition file.
type Loader struct {
	Path string
}

// NewLoader creates a Loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads and decodes the definition. The file is read on every call, so edits
// are picked up without restarting.
func (l *Loader) Load(ctx context.Context) (*schema.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, l.Path)
		}
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	return Parse(data, filepath.Ext(l.Path))
}

// Parse decodes a definition from data, using ext (".yaml", ".yml" or ".json") to
// choose the format.
func Parse(data []byte, ext string) (*schema.Definition, error) {
	raw := map[string]any{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return schema.Decode(raw)
}

// Save writes def to path as YAML.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
// The replacement is atomic on POSIX. On Windows the destination is removed first, leaving a
// short window where path does not exist.
func Save(path string, def schema.Definition) error {
	data, err := Marshal(def)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory: %w", err)
	}

	// Same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // No-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if removeBeforeRename(runtime.GOOS) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// removeBeforeRename reports whether os.Rename cannot replace an existing file on goos.
func removeBeforeRename(goos string) bool {
	return goos == "windows"
}

// Marshal encodes def as YAML with two-space indentation.
func Marshal(def schema.Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return buf.Bytes(), nil
}
