// Package text2blog converts marked-up plain text into a static HTML blog page.
//
// # Quick Start
//
// Convert with the built-in symbols:
//
//	page := text2blog.Convert(text, text2blog.DefaultConfig())
//	os.WriteFile("post.html", []byte(page), 0o644)
//
// Or build a reusable converter and inspect what the scan found:
//
//	conv, err := text2blog.NewConverter(text2blog.WithEscapeHTML(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := conv.Convert(text)
//	fmt.Println(result.Title, len(result.Links), result.Blocks)
//
// # Markup
//
// Each line is classified by its prefix, tested in this order:
//
//	##### Title        main title (last one wins), shown in <title> and the sidebar
//	#### Section       sidebar link to the current step anchor
//	### Subsection     opens <article id="stepN"> with an <h2>, then N advances
//	## Detail          <h4> inside the current article
//	anything else      <p> with the trimmed line; blank lines are skipped
//
// Section links and article anchors share one step counter. A section line
// links to the counter value at the moment it is read, which is the anchor
// of the next subsection to be opened.
//
// The symbols are configurable through Symbols. A symbol tested earlier must
// not be a prefix of one tested later; Symbols.Validate enforces this.
//
// # Output
//
// The page uses a fixed skeleton: a link to ../styles/style.css, a header
// with Home, About and Contact navigation, the sidebar, the content section
// and a copyright footer. By default inserted text is not escaped, so the
// page carries the text exactly as written; WithEscapeHTML escapes it instead.
package text2blog
