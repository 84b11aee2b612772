// Package fileutil holds the file writing helpers shared by the note
// and JSON exporters.
package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// GetMarkdownFilePath returns the note path for a book title inside
// the output directory. The title is sanitized for the filename only;
// callers keep the raw title in the note content.
func GetMarkdownFilePath(title string, directory string) string {
	return filepath.Join(directory, SanitizeFilename(title)+".md")
}

// SanitizeFilename rewrites characters that are unsafe in note
// filenames. Colons become " -" so subtitles still read naturally,
// path separators become plain dashes.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// FileExists reports whether a regular file exists at the path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteFileWithOverwrite writes data to path, creating parent
// directories as needed. An existing file is left untouched unless
// overwrite is set. Reports whether the file was written.
func WriteFileWithOverwrite(path string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(path) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// WriteJSONFile marshals data as indented JSON and writes it through
// WriteFileWithOverwrite. Reports whether the file was written.
func WriteJSONFile(data any, path string, overwrite bool) (bool, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	wrote, err := WriteFileWithOverwrite(path, jsonData, 0o644, overwrite)
	if err != nil {
		return false, fmt.Errorf("failed to write JSON file: %w", err)
	}
	if !wrote {
		slog.Info("JSON file already exists, skipping", "filename", path)
	}

	return wrote, nil
}
