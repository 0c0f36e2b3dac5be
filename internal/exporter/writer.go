package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-codeprob/internal/metadata"
)

const (
	// FormatJSON renders metadata suggestions as indented JSON.
	FormatJSON = "json"
	// FormatYAML renders metadata suggestions as YAML.
	FormatYAML = "yaml"
)

var (
	// ErrFileExists is returned when the output file already exists and
	// overwriting is disabled.
	ErrFileExists = errors.New("exporter: output file already exists")
	// ErrUnknownFormat is returned for metadata formats other than json and yaml.
	ErrUnknownFormat = errors.New("exporter: unknown metadata format")
)

// FileWriter stores exported documents on disk.
type FileWriter struct {
	Dir       string
	Overwrite bool
}

// Write stores result.Document as Dir/result.Filename and returns the path.
func (w FileWriter) Write(result *Result) (string, error) {
	if result == nil {
		return "", errors.New("exporter: nil result")
	}
	dir := w.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("exporter: create output dir: %w", err)
	}

	path := filepath.Join(dir, result.Filename)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !w.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	file, err := openOutput(path, flags)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return "", fmt.Errorf("exporter: open %s: %w", path, err)
	}
	if _, err := file.WriteString(result.Document); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("exporter: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("exporter: close %s: %w", path, err)
	}
	return path, nil
}

type outputFile interface {
	WriteString(string) (int, error)
	Close() error
}

// openOutput is replaced in tests to simulate failing writes.
var openOutput = func(path string, flags int) (outputFile, error) {
	return os.OpenFile(path, flags, 0o644)
}

// FormatEntry renders entry as a contributor-config.json suggestion. JSON
// output uses two space indentation.
func FormatEntry(entry metadata.Entry, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(entry)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
