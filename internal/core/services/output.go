package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// outputDirPerm is the permission for created output directories.
const outputDirPerm = 0o755

// encodeJSON renders v with two-space indentation, leaving non-ASCII
// and HTML characters unescaped.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeJSON encodes v into path, creating the parent directory.
func writeJSON(path string, v any) error {
	data, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// stem strips the longest matching extension from a file's base name.
func stem(path string, extensions []string) string {
	name := filepath.Base(path)
	lower := strings.ToLower(name)

	var longest string
	for _, ext := range extensions {
		if len(ext) > len(longest) && len(lower) > len(ext) && strings.HasSuffix(lower, ext) {
			longest = ext
		}
	}
	if longest == "" {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name[:len(name)-len(longest)]
}

// listFiles returns the sorted names of regular, visible files in dir
// accepted by keep.
func listFiles(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || isHidden(e.Name()) || !keep(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// isHidden reports whether a file name starts with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
