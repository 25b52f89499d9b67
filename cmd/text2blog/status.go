package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	text2blog "github.com/stelarn/go-text2blog"
)

// statusLine prints "File saved: <path>" styled with the theme's status
// label colors, the same confirmation the desktop tool showed.
type statusLine struct {
	w     io.Writer
	style *color.RGBStyle // nil when color is disabled or the theme colors are not hex
	quiet bool
}

func newStatusLine(w io.Writer, theme text2blog.Theme, noColor, quiet bool) *statusLine {
	s := &statusLine{w: w, quiet: quiet}
	if !noColor && text2blog.IsHexColor(theme.StatusLabelFG) && text2blog.IsHexColor(theme.StatusLabelBG) {
		s.style = color.HEXStyle(theme.StatusLabelFG, theme.StatusLabelBG)
	}
	return s
}

// saved reports a written page.
func (s *statusLine) saved(path string) {
	s.print("File saved: " + path)
}

func (s *statusLine) print(msg string) {
	if s.quiet {
		return
	}
	if s.style != nil {
		msg = s.style.Sprint(msg)
	}
	fmt.Fprintln(s.w, msg)
}
