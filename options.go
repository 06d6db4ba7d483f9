package pretty

import "github.com/rs/zerolog"

// Config holds the spacing settings of a Renderer.
type Config struct {
	// Indent is repeated once per depth level at the start of every line.
	// An empty Indent disables indentation.
	Indent string

	// PreItemSpacing is written after an opening bracket of a non-empty
	// container, PostItemSpacing before its closing bracket.
	PreItemSpacing  string
	PostItemSpacing string

	// PreSeparatorSpacing and PostSeparatorSpacing surround the comma
	// between elements.
	PreSeparatorSpacing  string
	PostSeparatorSpacing string

	// IntraGroupSpacing is the whole body of an empty container.
	IntraGroupSpacing string
}

// DefaultConfig returns the default spacing: tab indentation with one element
// per line.
func DefaultConfig() Config {
	return Config{
		Indent:               "\t",
		PreItemSpacing:       "\n",
		PostItemSpacing:      "\n",
		PreSeparatorSpacing:  "",
		PostSeparatorSpacing: "\n",
		IntraGroupSpacing:    "",
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig replaces all spacing settings.
func WithConfig(c Config) Option {
	return func(r *Renderer) { r.cfg = c }
}

// WithIndent sets the per-level indentation string.
func WithIndent(s string) Option {
	return func(r *Renderer) { r.cfg.Indent = s }
}

// WithPreItemSpacing sets the text after an opening bracket.
func WithPreItemSpacing(s string) Option {
	return func(r *Renderer) { r.cfg.PreItemSpacing = s }
}

// WithPostItemSpacing sets the text before a closing bracket.
func WithPostItemSpacing(s string) Option {
	return func(r *Renderer) { r.cfg.PostItemSpacing = s }
}

// WithPreSeparatorSpacing sets the text before each comma.
func WithPreSeparatorSpacing(s string) Option {
	return func(r *Renderer) { r.cfg.PreSeparatorSpacing = s }
}

// WithPostSeparatorSpacing sets the text after each comma.
func WithPostSeparatorSpacing(s string) Option {
	return func(r *Renderer) { r.cfg.PostSeparatorSpacing = s }
}

// WithIntraGroupSpacing sets the body of empty containers.
func WithIntraGroupSpacing(s string) Option {
	return func(r *Renderer) { r.cfg.IntraGroupSpacing = s }
}

// WithMaxStringWidth cuts strings wider than n display columns, marking the
// cut with "…". Zero or less means no limit.
func WithMaxStringWidth(n int) Option {
	return func(r *Renderer) { r.maxWidth = n }
}

// WithLogger sets the logger used for handler registration and dispatch
// tracing. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}
