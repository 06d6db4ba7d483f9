package pretty

import (
	"reflect"
	"strconv"
	"time"
)

// builtin is a named rendering strategy. exact reports whether a type is the
// strategy's own type, accepts whether the strategy can render values whose
// type descends from it.
type builtin struct {
	name    string
	exact   func(t reflect.Type) bool
	accepts func(t reflect.Type) bool
	render  func(r *Renderer, v reflect.Value, depth int) string
	// labeled strategies already write <TypeName>.new( ) themselves.
	labeled bool
}

var (
	pairType   = reflect.TypeFor[Pair]()
	rangeType  = reflect.TypeFor[Range]()
	listType   = reflect.TypeFor[List]()
	muType     = reflect.TypeFor[Mu]()
	timeType   = reflect.TypeFor[time.Time]()
	stringType = reflect.TypeFor[string]()
	boolType   = reflect.TypeFor[bool]()
)

var (
	builtins       []builtin
	builtinsByName map[string]builtin
)

func init() {
	builtins = []builtin{
		{
			name:    "Mu",
			exact:   is(muType),
			accepts: is(muType),
			render:  func(*Renderer, reflect.Value, int) string { return "Mu" },
		},
		{
			name:    "Pair",
			exact:   is(pairType),
			accepts: convertible(pairType),
			render: func(r *Renderer, v reflect.Value, depth int) string {
				return r.pair(v.Convert(pairType).Interface().(Pair), depth)
			},
		},
		{
			name:    "Range",
			exact:   is(rangeType),
			accepts: convertible(rangeType),
			render: func(r *Renderer, v reflect.Value, _ int) string {
				return r.interval(v.Convert(rangeType).Interface().(Range))
			},
		},
		{
			name:    "Time",
			exact:   is(timeType),
			accepts: convertible(timeType),
			labeled: true,
			render: func(_ *Renderer, v reflect.Value, _ int) string {
				t := v.Convert(timeType).Interface().(time.Time)
				return label(v.Type(), "Time") + ".new(" + strconv.Quote(t.Format(time.RFC3339Nano)) + ")"
			},
		},
		{
			name:    "List",
			exact:   is(listType),
			accepts: kinds(reflect.Slice, reflect.Array),
			render: func(r *Renderer, v reflect.Value, depth int) string {
				return "$(" + r.sequence(v, depth) + ")"
			},
		},
		{
			name:    "Str",
			exact:   is(stringType),
			accepts: kinds(reflect.String),
			render: func(r *Renderer, v reflect.Value, _ int) string {
				return r.quote(v.String())
			},
		},
		{
			name:    "Bool",
			exact:   is(boolType),
			accepts: kinds(reflect.Bool),
			render: func(_ *Renderer, v reflect.Value, _ int) string {
				if v.Bool() {
					return "True"
				}
				return "False"
			},
		},
		{
			name:    "Array",
			exact:   unnamed(reflect.Slice, reflect.Array),
			accepts: kinds(reflect.Slice, reflect.Array),
			render: func(r *Renderer, v reflect.Value, depth int) string {
				return "$[" + r.sequence(v, depth) + "]"
			},
		},
		{
			name:    "Hash",
			exact:   unnamed(reflect.Map),
			accepts: either(kinds(reflect.Map), record),
			render: func(r *Renderer, v reflect.Value, depth int) string {
				return "${" + r.associative(v, depth) + "}"
			},
		},
		{
			name:    "Map",
			exact:   func(t reflect.Type) bool { return t.Name() == "" && record(t) },
			accepts: record,
			labeled: true,
			render: func(r *Renderer, v reflect.Value, depth int) string {
				return label(v.Type(), "Map") + ".new(" + r.associative(v, depth) + ")"
			},
		},
	}
	builtinsByName = make(map[string]builtin, len(builtins))
	for _, b := range builtins {
		builtinsByName[b.name] = b
	}
}

// implicitAncestors derives the ancestry of a named type from its underlying
// kind.
func implicitAncestors(t reflect.Type) []string {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return []string{"Array"}
	case reflect.Map:
		return []string{"Hash"}
	case reflect.String:
		return []string{"Str"}
	case reflect.Bool:
		return []string{"Bool"}
	case reflect.Struct:
		switch {
		case t.ConvertibleTo(pairType):
			return []string{"Pair", "Map"}
		case t.ConvertibleTo(rangeType):
			return []string{"Range", "Map"}
		case t.ConvertibleTo(timeType):
			return []string{"Time", "Map"}
		}
		return []string{"Map"}
	}
	return nil
}

// record reports whether t is a struct with something to show. Structs made
// only of unexported fields are opaque.
func record(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	if t.NumField() == 0 {
		return true
	}
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

func either(a, b func(reflect.Type) bool) func(reflect.Type) bool {
	return func(t reflect.Type) bool { return a(t) || b(t) }
}

func is(want reflect.Type) func(reflect.Type) bool {
	return func(t reflect.Type) bool { return t == want }
}

func convertible(want reflect.Type) func(reflect.Type) bool {
	return func(t reflect.Type) bool { return t.Kind() == want.Kind() && t.ConvertibleTo(want) }
}

func kinds(ks ...reflect.Kind) func(reflect.Type) bool {
	return func(t reflect.Type) bool {
		for _, k := range ks {
			if t.Kind() == k {
				return true
			}
		}
		return false
	}
}

func unnamed(ks ...reflect.Kind) func(reflect.Type) bool {
	match := kinds(ks...)
	return func(t reflect.Type) bool { return t.Name() == "" && match(t) }
}
