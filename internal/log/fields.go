package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldEvent     = "event"

	// Path fields
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Conversion fields
	FieldTitle    = "title"
	FieldBlocks   = "blocks"
	FieldLinks    = "links"
	FieldLines    = "lines"
	FieldDuration = "duration"
)
