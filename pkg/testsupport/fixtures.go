// Package testsupport holds helpers shared by tests that need a site
// checkout on disk.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTree creates files under root. Keys are slash separated paths; a key
// ending in "/" creates an empty directory.
func WriteTree(root string, files map[string]string) error {
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// MustWriteTree is WriteTree failing the test on error.
func MustWriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	if err := WriteTree(root, files); err != nil {
		t.Fatalf("write tree: %v", err)
	}
}

// Site returns a temporary checkout holding the required site files, empty
// content directories and files.
func Site(t testing.TB, requiredFiles []string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	tree := map[string]string{
		"problems/": "",
		"concepts/": "",
		"articles/": "",
	}
	for _, file := range requiredFiles {
		tree[file] = "ok"
	}
	for rel, content := range files {
		tree[rel] = content
	}
	MustWriteTree(t, root, tree)
	return root
}
