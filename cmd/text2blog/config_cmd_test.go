package main

import (
	"encoding/json"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunConfig - Effective settings output
// ---------------------------------------------------------------------------

func TestRunConfig_JSON(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, `{"button_bg": "#101010"}`)
	te.vars["TEXT2BLOG_ESCAPE_HTML"] = "true"

	if code := runMain([]string{"text2blog", "config"}, te.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, te.stderr)
	}

	var got map[string]any
	if err := json.Unmarshal(te.stdout.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, te.stdout)
	}
	if got["button_bg"] != "#101010" {
		t.Errorf("button_bg = %v, want #101010", got["button_bg"])
	}
	if got["window_bg"] != "#2e2e2e" {
		t.Errorf("window_bg = %v, want default", got["window_bg"])
	}
	convert, _ := got["convert"].(map[string]any)
	if convert["escape_html"] != true {
		t.Errorf("convert.escape_html = %v, want true from environment", convert["escape_html"])
	}
	if !strings.Contains(te.stderr.String(), "source: "+te.vars["TEXT2BLOG_CONFIG"]) {
		t.Errorf("stderr = %q, want source path", te.stderr)
	}
}

func TestRunConfig_YAML(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "config", "--format", "yaml"}, te.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, te.stderr)
	}
	if !strings.Contains(te.stdout.String(), "main_title:") {
		t.Errorf("stdout = %q, want YAML keys", te.stdout)
	}
}

func TestRunConfig_Errors(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "config", "--format", "toml"}, te.Environment); code != ExitUsage {
		t.Errorf("unknown format: runMain() = %d, want %d", code, ExitUsage)
	}

	te = newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "config", "extra"}, te.Environment); code != ExitUsage {
		t.Errorf("extra argument: runMain() = %d, want %d", code, ExitUsage)
	}
}

func TestRunConfig_MissingExplicitSettingsWarns(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	te.vars["TEXT2BLOG_CONFIG"] = te.dir + "/missing.json"

	if code := runMain([]string{"text2blog", "config"}, te.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, te.stderr)
	}
	stderr := te.stderr.String()
	if !strings.Contains(stderr, "settings not found") {
		t.Errorf("stderr = %q, want not-found warning", stderr)
	}
	if !strings.Contains(stderr, "source: built-in defaults") {
		t.Errorf("stderr = %q, want defaults as source", stderr)
	}
}
