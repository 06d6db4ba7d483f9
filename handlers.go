package pretty

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

var errNilHandler = errors.New("nil function")

var (
	rendererType = reflect.TypeFor[*Renderer]()
	intType      = reflect.TypeFor[int]()
)

// handler is a registered rendering override. Typed handlers are called
// through reflection with their declared value parameter type.
type handler struct {
	param reflect.Type
	fn    reflect.Value
	plain HandlerFunc
}

// registry maps type names to handlers. It belongs to a single Renderer.
type registry map[string]handler

// AddHandler registers fn for values whose [TypeName] is typeName, replacing
// any previous handler for that name. fn must have the shape
//
//	func(r *Renderer, v T, depth int) string
//
// for some value type T; anything else is rejected with
// [ErrSignatureMismatch]. If a value of the registered name is not
// assignable to T the handler is skipped.
func (r *Renderer) AddHandler(typeName string, fn any) error {
	if typeName == "" {
		return ErrEmptyTypeName
	}
	h, err := newHandler(fn)
	if err != nil {
		return fmt.Errorf("%w: handler for %q: %s", ErrSignatureMismatch, typeName, err)
	}
	r.register(typeName, h)
	return nil
}

// Handle registers fn for the type name of T. A nil fn registers nothing.
func Handle[T any](r *Renderer, fn func(r *Renderer, v T, depth int) string) {
	if fn == nil {
		return
	}
	r.register(typeName(reflect.TypeFor[T]()), handler{param: reflect.TypeFor[T](), fn: reflect.ValueOf(fn)})
}

func (r *Renderer) register(typeName string, h handler) {
	if r.handlers == nil {
		r.handlers = registry{}
	}
	r.handlers[typeName] = h
	r.log.Debug().Str("type", typeName).Msg("handler added")
}

// RemoveHandler removes the handler for typeName and reports whether one was
// registered.
func (r *Renderer) RemoveHandler(typeName string) bool {
	if _, ok := r.handlers[typeName]; !ok {
		return false
	}
	delete(r.handlers, typeName)
	r.log.Debug().Str("type", typeName).Msg("handler removed")
	return true
}

// Handles reports whether a handler is registered for typeName.
func (r *Renderer) Handles(typeName string) bool {
	_, ok := r.handlers[typeName]
	return ok
}

// Handlers returns the registered type names in sorted order.
func (r *Renderer) Handlers() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}

func newHandler(fn any) (handler, error) {
	switch f := fn.(type) {
	case nil:
		return handler{}, errNilHandler
	case HandlerFunc:
		if f == nil {
			return handler{}, errNilHandler
		}
		return handler{plain: f}, nil
	case func(*Renderer, any, int) string:
		if f == nil {
			return handler{}, errNilHandler
		}
		return handler{plain: f}, nil
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	want := "want func(*pretty.Renderer, T, int) string"
	switch {
	case t.Kind() != reflect.Func:
		return handler{}, fmt.Errorf("got %s, %s", t, want)
	case v.IsNil():
		return handler{}, errNilHandler
	case t.IsVariadic() || t.NumIn() != 3 || t.NumOut() != 1:
		return handler{}, fmt.Errorf("got %s, %s", t, want)
	case t.In(0) != rendererType || t.In(2) != intType || t.Out(0).Kind() != reflect.String:
		return handler{}, fmt.Errorf("got %s, %s", t, want)
	}
	return handler{param: t.In(1), fn: v}, nil
}

// argument adapts v to the handler's value parameter.
func (h handler) argument(v reflect.Value) (reflect.Value, bool) {
	if h.plain != nil {
		if v.IsValid() && !v.CanInterface() {
			return reflect.Value{}, false
		}
		return v, true
	}
	if !v.IsValid() {
		if h.param.Kind() == reflect.Interface {
			return reflect.Zero(h.param), true
		}
		return reflect.Value{}, false
	}
	if !v.CanInterface() || !v.Type().AssignableTo(h.param) {
		return reflect.Value{}, false
	}
	return v, true
}

func (h handler) call(r *Renderer, arg reflect.Value, depth int) string {
	if h.plain != nil {
		var v any
		if arg.IsValid() {
			v = arg.Interface()
		}
		return h.plain(r, v, depth)
	}
	out := h.fn.Call([]reflect.Value{reflect.ValueOf(r), arg, reflect.ValueOf(depth)})
	return out[0].String()
}
