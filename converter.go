package text2blog

import (
	"fmt"

	"github.com/stelarn/go-text2blog/internal/assets"
	"github.com/stelarn/go-text2blog/internal/pipeline"
)

// defaultLayout is the embedded page skeleton, split once at startup.
var defaultLayout = mustLoadLayout(assets.NewEmbeddedLoader())

// mustLoadLayout panics if the embedded skeleton is missing or malformed,
// which can only happen if the binary was built with broken assets.
func mustLoadLayout(loader assets.AssetLoader) *pipeline.Layout {
	layout, err := loadLayout(loader)
	if err != nil {
		panic("text2blog: " + err.Error())
	}
	return layout
}

func loadLayout(loader assets.AssetLoader) (*pipeline.Layout, error) {
	skeleton, err := loader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	layout, err := pipeline.NewLayout(skeleton)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return layout, nil
}

// Converter turns marked-up text into a full HTML page.
// Create with NewConverter and reuse it; it holds no per-call state.
type Converter struct {
	cfg    Config
	layout *pipeline.Layout
}

// Option configures a Converter.
type Option func(*Converter)

// WithConfig replaces the whole configuration (theme, symbols, escaping).
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg
	}
}

// WithSymbols sets the line-prefix symbols.
func WithSymbols(s Symbols) Option {
	return func(c *Converter) {
		c.cfg.Symbols = s
	}
}

// WithEscapeHTML enables or disables HTML escaping of inserted text.
func WithEscapeHTML(escape bool) Option {
	return func(c *Converter) {
		c.cfg.EscapeHTML = escape
	}
}

// NewConverter creates a Converter with the default configuration.
// Returns an error if the resulting symbols are empty or shadow each other.
// The theme is carried for drivers and not validated here.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    DefaultConfig(),
		layout: defaultLayout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.Symbols.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// Link is a sidebar entry.
type Link struct {
	Text   string
	Anchor string // block id without '#', e.g. "step0"
}

// Result holds the rendered page and what the scan found.
type Result struct {
	HTML   []byte
	Title  string // main title, empty if the input had none
	Links  []Link // sidebar links in document order
	Blocks int    // subsection blocks opened; anchors run step0..step{Blocks-1}
	Lines  int    // input lines scanned
	Blanks int    // blank or whitespace-only lines skipped
}

// Convert renders input into a full HTML page. It never fails: lines that
// match no symbol become paragraphs and blank lines are skipped.
func (c *Converter) Convert(input string) *Result {
	doc := pipeline.Scan(input, pipeline.Symbols(c.cfg.Symbols))

	links := make([]Link, len(doc.Links))
	for i, l := range doc.Links {
		links[i] = Link{Text: l.Text, Anchor: l.Anchor()}
	}

	return &Result{
		HTML:   []byte(c.layout.Render(doc, c.cfg.EscapeHTML)),
		Title:  doc.Title,
		Links:  links,
		Blocks: doc.Steps,
		Lines:  doc.Lines,
		Blanks: doc.Blanks,
	}
}

// Convert renders input with cfg into a full HTML page. It is deterministic
// and total over all inputs; cfg is used as given, without validation.
func Convert(input string, cfg Config) string {
	doc := pipeline.Scan(input, pipeline.Symbols(cfg.Symbols))
	return defaultLayout.Render(doc, cfg.EscapeHTML)
}
