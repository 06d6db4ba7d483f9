package pretty

import (
	"bytes"
	"errors"
	"io"
	"reflect"

	"github.com/rs/zerolog"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSignatureMismatch = errors.New("handler signature mismatch")
	ErrEmptyTypeName     = errors.New("empty type name")
)

// --- Extension Interfaces ---

// Dumper is implemented by values that render themselves. Dump receives the
// renderer and the depth of the value so nested values can be rendered with
// r.Render(child, depth+1).
type Dumper interface {
	Dump(r *Renderer, depth int) string
}

// Lineage declares, in order, the built-in strategies a type descends from
// ("Array", "Hash", "List", "Map", "Pair", "Range", "Str", "Bool", "Time").
// The first ancestor able to render the value wins, and the output is
// wrapped as <TypeName>.new(...).
type Lineage interface {
	Ancestors() []string
}

// HandlerFunc is the untyped form of a registered handler.
type HandlerFunc func(r *Renderer, v any, depth int) string

// Renderer converts values to human-readable text. Its spacing configuration
// is fixed at construction; only the handler registry changes afterwards.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg      Config
	maxWidth int
	log      zerolog.Logger
	handlers registry

	// Recursion state for the render in progress.
	active   bool
	current  int
	visiting map[visit]struct{}
}

// New returns a Renderer with the default configuration adjusted by opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:      DefaultConfig(),
		log:      zerolog.Nop(),
		handlers: registry{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns a copy of the renderer's spacing configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Render returns the textual form of v indented by depth levels.
//
// Resolution order, first match wins: a registered handler for the value's
// type name, the value's own [Dumper] hook, the numeric strategy, pointer
// dereference, an exact built-in strategy, the nearest ancestor strategy,
// text conversion, and finally an "(Unhandled <TypeName>)" placeholder.
func (r *Renderer) Render(v any, depth int) string {
	return r.render(reflect.ValueOf(v), depth)
}

// Dump renders v with a transient Renderer built from opts.
func Dump(v any, opts ...Option) string {
	return New(opts...).Render(v, 0)
}

// Write renders v and writes it to w followed by a newline.
func Write(w io.Writer, v any, opts ...Option) error {
	_, err := io.WriteString(w, Dump(v, opts...)+"\n")
	return err
}

// Marshal renders v and returns the bytes, newline terminated.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
