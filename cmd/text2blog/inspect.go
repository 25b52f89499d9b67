package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stelarn/go-text2blog/internal/pipeline"
)

// runInspect prints how each line of the input is classified, with the
// anchor each section and subsection line resolves to. Nothing is written.
func runInspect(args []string, flags *inspectFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: inspect takes one input", ErrUsage)
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}

	var data []byte
	if isStdin(args) {
		data, err = io.ReadAll(env.Stdin)
	} else {
		if err := validateInputExtension(args[0]); err != nil {
			return err
		}
		data, err = os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	cfg := s.cfg.ConverterConfig()
	if err := cfg.Symbols.Validate(); err != nil {
		return err
	}
	writeInspection(env.Stdout, string(data), pipeline.Symbols(cfg.Symbols))
	return nil
}

// writeInspection prints one row per line followed by a summary.
func writeInspection(w io.Writer, text string, sym pipeline.Symbols) {
	step := 0
	for i, line := range strings.Split(text, "\n") {
		kind, content := pipeline.Classify(line, sym)

		var anchor string
		switch kind {
		case pipeline.KindSectionTitle:
			anchor = "-> #" + pipeline.StepAnchor(step)
		case pipeline.KindSubsectionTitle:
			anchor = "#" + pipeline.StepAnchor(step)
			step++
		}

		fmt.Fprintf(w, "%4d  %-13s  %-9s  %s\n", i+1, kind, anchor, content)
	}

	doc := pipeline.Scan(text, sym)
	title := doc.Title
	if title == "" {
		title = "(none)"
	}
	fmt.Fprintf(w, "\ntitle: %s\nlinks: %d\nblocks: %d\nskipped: %d\n", title, len(doc.Links), doc.Steps, doc.Blanks)
}
