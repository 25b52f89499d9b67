// Package pipeline implements the text-to-HTML conversion stages.
//
// The conversion runs in two stages:
//   - Scan: a single forward pass over the input lines. Each line is
//     classified by prefix (main title, section, subsection, subsubsection,
//     paragraph, blank) and turned into sidebar links and body nodes.
//   - Render: the scanned Document is serialized into the sidebar block,
//     the body block and the full page skeleton.
//
// Both stages are pure: they hold no state between calls and never fail on
// user input. The root text2blog package wires them together behind the
// public Converter.
package pipeline
