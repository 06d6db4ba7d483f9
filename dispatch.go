package pretty

import (
	"encoding"
	"fmt"
	"reflect"
)

// rule is one step of the dispatch chain. It reports false when the value is
// not its concern.
type rule struct {
	name  string
	apply func(r *Renderer, v reflect.Value, depth int) (string, bool)
}

// rules is filled in init because the rules recurse back into dispatch.
var rules []rule

func init() {
	rules = []rule{
		{"handler", (*Renderer).viaHandler},
		{"dumper", (*Renderer).viaDumper},
		{"numeric", (*Renderer).viaNumeric},
		{"reference", (*Renderer).viaReference},
		{"exact", (*Renderer).viaExact},
		{"ancestor", (*Renderer).viaAncestor},
		{"text", (*Renderer).viaText},
		{"unhandled", (*Renderer).viaUnhandled},
	}
}

// render dispatches v and indents the result relative to the frame that
// asked for it, so text already indented by a nested call is never indented
// again.
func (r *Renderer) render(v reflect.Value, depth int) string {
	shift := depth
	if r.active {
		shift = depth - r.current
	} else {
		r.visiting = nil
	}
	prevActive, prevDepth := r.active, r.current
	r.active, r.current = true, depth
	defer func() { r.active, r.current = prevActive, prevDepth }()

	return r.Indent(r.dispatch(v, depth), max(shift, 0))
}

func (r *Renderer) dispatch(v reflect.Value, depth int) string {
	// A nil interface is a hole in its container and stays wrapped so the
	// reference rule renders it as Any.
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.IsValid() {
		switch v.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice:
			leave, ok := r.enter(v)
			if !ok {
				return r.cyclic(v)
			}
			defer leave()
		}
	}
	for _, rl := range rules {
		s, ok := rl.apply(r, v, depth)
		if !ok {
			continue
		}
		if e := r.log.Trace(); e.Enabled() {
			e.Str("type", typeNameOf(v)).Str("rule", rl.name).Int("depth", depth).Msg("rendered value")
		}
		return s
	}
	return r.unhandled(v)
}

func (r *Renderer) viaHandler(v reflect.Value, depth int) (string, bool) {
	h, ok := r.handlers[typeNameOf(v)]
	if !ok {
		return "", false
	}
	arg, ok := h.argument(v)
	if !ok {
		r.log.Debug().Str("type", typeNameOf(v)).Msg("handler cannot accept value, skipping")
		return "", false
	}
	return r.guard(v, func() string { return h.call(r, arg, depth) }), true
}

func (r *Renderer) viaDumper(v reflect.Value, depth int) (string, bool) {
	if !v.IsValid() || isNilPointer(v) {
		return "", false
	}
	d, ok := asInterface[Dumper](v)
	if !ok && v.CanAddr() {
		d, ok = asInterface[Dumper](v.Addr())
	}
	if !ok {
		return "", false
	}
	return r.guard(v, func() string { return d.Dump(r, depth) }), true
}

func (r *Renderer) viaReference(v reflect.Value, depth int) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	switch v.Kind() {
	case reflect.Interface:
		return "Any", true
	case reflect.Pointer:
		if v.IsNil() {
			return "Any", true
		}
		return r.dispatch(v.Elem(), depth), true
	}
	return "", false
}

func (r *Renderer) viaExact(v reflect.Value, depth int) (string, bool) {
	if !v.IsValid() {
		return "Nil", true
	}
	for _, b := range builtins {
		if b.exact(v.Type()) {
			return b.render(r, v, depth), true
		}
	}
	return "", false
}

func (r *Renderer) viaAncestor(v reflect.Value, depth int) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	var names []string
	if l, ok := asInterface[Lineage](v); ok {
		explicit, p := ancestors(l)
		if p != nil {
			return r.panicked(v, p), true
		}
		names = append(names, explicit...)
	}
	names = append(names, implicitAncestors(v.Type())...)
	for _, name := range names {
		b, ok := builtinsByName[name]
		if !ok || !b.accepts(v.Type()) {
			continue
		}
		if b.labeled {
			return b.render(r, v, depth), true
		}
		return typeNameOf(v) + ".new(" + b.render(r, v, depth) + ")", true
	}
	return "", false
}

func (r *Renderer) viaText(v reflect.Value, _ int) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	text, ok := textOf(v)
	if !ok && v.CanAddr() {
		text, ok = textOf(v.Addr())
	}
	if !ok {
		return "", false
	}
	return r.guard(v, func() string { return "(" + typeNameOf(v) + "): " + text() }), true
}

// textOf finds a way to convert v to text: String, Error or MarshalText.
func textOf(v reflect.Value) (func() string, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	switch t := v.Interface().(type) {
	case fmt.Stringer:
		return t.String, true
	case error:
		return t.Error, true
	case encoding.TextMarshaler:
		return func() string {
			b, err := t.MarshalText()
			if err != nil {
				return err.Error()
			}
			return string(b)
		}, true
	}
	return nil, false
}

func (r *Renderer) viaUnhandled(v reflect.Value, _ int) (string, bool) {
	return r.unhandled(v), true
}

func (r *Renderer) unhandled(v reflect.Value) string {
	return "(Unhandled " + typeNameOf(v) + ")"
}

// guard runs a user-supplied rendering function, turning a panic into a
// placeholder so rendering never fails.
func (r *Renderer) guard(v reflect.Value, fn func() string) (s string) {
	defer func() {
		if p := recover(); p != nil {
			s = r.panicked(v, p)
		}
	}()
	return fn()
}

func (r *Renderer) panicked(v reflect.Value, p any) string {
	r.log.Debug().Str("type", typeNameOf(v)).Interface("panic", p).Msg("recovered panic while rendering")
	return fmt.Sprintf("(Panic %s: %v)", typeNameOf(v), p)
}

// ancestors calls l.Ancestors, reporting a panic instead of raising it.
func ancestors(l Lineage) (names []string, p any) {
	defer func() { p = recover() }()
	return l.Ancestors(), nil
}

func asInterface[T any](v reflect.Value) (T, bool) {
	var zero T
	if !v.CanInterface() {
		return zero, false
	}
	t, ok := v.Interface().(T)
	return t, ok
}

func isNilPointer(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && v.IsNil()
}
