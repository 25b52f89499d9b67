package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stelarn/go-text2blog/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestWriteInspection - Line classification report
// ---------------------------------------------------------------------------

func TestWriteInspection(t *testing.T) {
	t.Parallel()

	sym := pipeline.Symbols{MainTitle: "#####", SectionTitle: "####", SubsectionTitle: "###", SubsubsectionTitle: "##"}
	var buf bytes.Buffer
	writeInspection(&buf, samplePost, sym)

	lines := strings.Split(buf.String(), "\n")
	checks := []struct {
		line     int
		contains []string
	}{
		{0, []string{"1", "main-title", "My Blog"}},
		{1, []string{"2", "section", "-> #step0", "Intro"}},
		{2, []string{"3", "subsection", "#step0", "First Post"}},
		{3, []string{"4", "paragraph", "Hello world"}},
		{4, []string{"5", "subsubsection", "Detail"}},
		{5, []string{"6", "blank"}},
		{6, []string{"7", "subsection", "#step1", "Second Post"}},
	}
	for _, c := range checks {
		for _, want := range c.contains {
			if !strings.Contains(lines[c.line], want) {
				t.Errorf("line %d = %q, want it to contain %q", c.line+1, lines[c.line], want)
			}
		}
	}

	summary := buf.String()
	for _, want := range []string{"title: My Blog", "links: 1", "blocks: 2", "skipped: 1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunInspect - Command wiring
// ---------------------------------------------------------------------------

func TestRunInspect_File(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	input := filepath.Join(te.dir, "post.txt")
	writeFile(t, input, "just text")

	if code := runMain([]string{"text2blog", "inspect", input}, te.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, te.stderr)
	}
	out := te.stdout.String()
	if !strings.Contains(out, "paragraph") || !strings.Contains(out, "title: (none)") {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunInspect_Stdin(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	te.Stdin = strings.NewReader("### Only")
	if code := runMain([]string{"text2blog", "inspect"}, te.Environment); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, te.stderr)
	}
	if !strings.Contains(te.stdout.String(), "blocks: 1") {
		t.Errorf("stdout = %q, want one block", te.stdout)
	}
}

func TestRunInspect_Errors(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "inspect", "post.md"}, te.Environment); code != ExitUsage {
		t.Errorf("wrong extension: runMain() = %d, want %d", code, ExitUsage)
	}
	te = newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "inspect", "a.txt", "b.txt"}, te.Environment); code != ExitUsage {
		t.Errorf("two inputs: runMain() = %d, want %d", code, ExitUsage)
	}
	te = newTestEnv(t, "")
	if code := runMain([]string{"text2blog", "inspect", filepath.Join(te.dir, "none.txt")}, te.Environment); code != ExitIO {
		t.Errorf("missing input: runMain() = %d, want %d", code, ExitIO)
	}
}
