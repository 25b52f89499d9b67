package pipeline

import (
	"strconv"
	"strings"
	"unicode"
)

// Symbols holds the line prefixes in matching priority order.
type Symbols struct {
	MainTitle          string
	SectionTitle       string
	SubsectionTitle    string
	SubsubsectionTitle string
}

// Kind identifies how a single input line was classified.
type Kind int

// Line kinds, in the order they are tested (Blank and Paragraph are the fallbacks).
const (
	KindBlank Kind = iota
	KindMainTitle
	KindSectionTitle
	KindSubsectionTitle
	KindSubsubsectionTitle
	KindParagraph
)

var kindNames = [...]string{
	KindBlank:              "blank",
	KindMainTitle:          "main-title",
	KindSectionTitle:       "section",
	KindSubsectionTitle:    "subsection",
	KindSubsubsectionTitle: "subsubsection",
	KindParagraph:          "paragraph",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Classify returns the kind of line and its text with the prefix and
// surrounding whitespace removed. Prefixes are tested against the raw line,
// so leading whitespace before a symbol turns the line into a paragraph.
// An empty symbol never matches.
func Classify(line string, sym Symbols) (Kind, string) {
	switch {
	case hasSymbol(line, sym.MainTitle):
		return KindMainTitle, strip(line, sym.MainTitle)
	case hasSymbol(line, sym.SectionTitle):
		return KindSectionTitle, strip(line, sym.SectionTitle)
	case hasSymbol(line, sym.SubsectionTitle):
		return KindSubsectionTitle, strip(line, sym.SubsectionTitle)
	case hasSymbol(line, sym.SubsubsectionTitle):
		return KindSubsubsectionTitle, strip(line, sym.SubsubsectionTitle)
	}

	text := trimSpace(line)
	if text == "" {
		return KindBlank, ""
	}
	return KindParagraph, text
}

func hasSymbol(line, symbol string) bool {
	return symbol != "" && strings.HasPrefix(line, symbol)
}

func strip(line, symbol string) string {
	return trimSpace(line[len(symbol):])
}

// trimSpace removes Unicode white space and the ASCII separators
// \x1c-\x1f (file, group, record, unit) from both ends.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// NodeKind identifies a body node.
type NodeKind int

// Body node kinds.
const (
	NodeBlockOpen NodeKind = iota
	NodeHeading
	NodeSubheading
	NodeParagraph
	NodeBlockClose
)

// Node is one body fragment in document order.
// Step is only meaningful for NodeBlockOpen.
type Node struct {
	Kind NodeKind
	Text string
	Step int
}

// Link is a sidebar entry pointing at a block anchor.
type Link struct {
	Text string
	Step int
}

// Anchor returns the block id the link points to.
func (l Link) Anchor() string {
	return StepAnchor(l.Step)
}

// StepAnchor returns the anchor id for step n ("step0", "step1", ...).
func StepAnchor(n int) string {
	return "step" + strconv.Itoa(n)
}

// Document is the result of a scan.
type Document struct {
	Title  string // last main-title line wins, empty if none
	Links  []Link // sidebar links in scan order
	Nodes  []Node // body nodes in scan order, blocks always balanced
	Steps  int    // final step counter value, equals the number of blocks opened
	Lines  int    // number of input lines
	Blanks int    // number of blank or whitespace-only lines
}

// blockState tracks whether an article block is currently open.
type blockState int

const (
	blockClosed blockState = iota
	blockOpen
)

// scanner carries the mutable state of one scan.
type scanner struct {
	sym   Symbols
	doc   *Document
	step  int
	block blockState
}

// Scan classifies every line of text and builds the Document in a single
// forward pass. Section links and block anchors share one step counter:
// a section link takes the counter value current at the moment it is seen,
// which is the anchor of the next subsection to be opened.
func Scan(text string, sym Symbols) *Document {
	lines := strings.Split(text, "\n")
	s := &scanner{
		sym: sym,
		doc: &Document{Lines: len(lines)},
	}

	for _, line := range lines {
		s.line(line)
	}
	s.finish()

	return s.doc
}

func (s *scanner) line(line string) {
	kind, text := Classify(line, s.sym)

	switch kind {
	case KindMainTitle:
		s.doc.Title = text
	case KindSectionTitle:
		s.doc.Links = append(s.doc.Links, Link{Text: text, Step: s.step})
	case KindSubsectionTitle:
		s.openBlock(text)
	case KindSubsubsectionTitle:
		s.emit(Node{Kind: NodeSubheading, Text: text})
	case KindParagraph:
		s.emit(Node{Kind: NodeParagraph, Text: text})
	case KindBlank:
		s.doc.Blanks++
	}
}

// openBlock closes the current block if one is open, opens a new block
// anchored at the current step, emits its heading and advances the counter.
func (s *scanner) openBlock(heading string) {
	s.closeBlock()
	s.emit(Node{Kind: NodeBlockOpen, Step: s.step})
	s.block = blockOpen
	s.emit(Node{Kind: NodeHeading, Text: heading})
	s.step++
}

func (s *scanner) closeBlock() {
	if s.block == blockOpen {
		s.emit(Node{Kind: NodeBlockClose})
		s.block = blockClosed
	}
}

// finish forces the final transition to closed.
func (s *scanner) finish() {
	s.closeBlock()
	s.doc.Steps = s.step
}

func (s *scanner) emit(n Node) {
	s.doc.Nodes = append(s.doc.Nodes, n)
}
