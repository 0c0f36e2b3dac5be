package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML
// fragments. The writer ships two implementations: the line-oriented
// dialect processor used for published pages and a goldmark-backed
// CommonMark renderer that hosts can opt into.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags. The dialect
// processor ignores every option.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
