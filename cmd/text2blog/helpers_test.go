package main

// Notes:
// - Test infrastructure, not code under test. Every test environment points
//   TEXT2BLOG_CONFIG at its own settings file so no test depends on files in
//   the working directory or the user config directory.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stelarn/go-text2blog/internal/assets"
)

// fixedNow is the clock every test environment uses.
var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	vars   map[string]string
	dir    string
}

// newTestEnv returns an environment with captured output, color disabled
// and settings loaded from a temp file holding settingsJSON (defaults if empty).
func newTestEnv(t *testing.T, settingsJSON string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	if settingsJSON == "" {
		settingsJSON = "{}"
	}
	writeFile(t, settingsPath, settingsJSON)

	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		vars: map[string]string{
			"TEXT2BLOG_CONFIG":   settingsPath,
			"TEXT2BLOG_NO_COLOR": "1",
		},
		dir: dir,
	}
	te.Environment = &Environment{
		Now:         func() time.Time { return fixedNow },
		Stdin:       strings.NewReader(""),
		Stdout:      te.stdout,
		Stderr:      te.stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Getenv:      func(k string) string { return te.vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(te.vars))
			for k, v := range te.vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return te
}

// writeFile creates path (and parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// samplePost is a small document exercising every line kind.
const samplePost = "##### My Blog\n#### Intro\n### First Post\nHello world\n## Detail\n\n### Second Post\nBye"
