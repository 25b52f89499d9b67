// Package assets provides the page skeleton and starter settings file
// embedded in the binary.
//
// # Layout
//
//	templates/
//	└── page.html                    # page skeleton with {{title}}, {{sidebar}}, {{content}}
//	settings/
//	└── text2blog_settings.json      # settings file written by "text2blog init"
//
// The page skeleton is the only page shape the converter emits: it links the
// fixed stylesheet and carries the fixed header, navigation and footer.
//
// # Security
//
// Asset names are validated to prevent path traversal: names may not be
// empty or contain path separators or dots.
package assets
