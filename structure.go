package pretty

import (
	"reflect"
	"strings"
)

// Structure renders elems with the shared container layout: elements are
// rendered at depth+1, sorted, and joined with the configured separators.
// An empty slice yields the intra-group spacing. It is meant for [Dumper]
// implementations that want the built-in look.
func (r *Renderer) Structure(elems []any, depth int) string {
	vs := make([]reflect.Value, len(elems))
	for i, e := range elems {
		vs[i] = reflect.ValueOf(e)
	}
	return r.structure(vs, depth)
}

// Bracket wraps [Renderer.Structure] in the given brackets.
func (r *Renderer) Bracket(open, close string, elems []any, depth int) string {
	return open + r.Structure(elems, depth) + close
}

func (r *Renderer) structure(elems []reflect.Value, depth int) string {
	if len(elems) == 0 {
		return r.cfg.IntraGroupSpacing
	}
	items := make([]item, len(elems))
	for i, e := range elems {
		items[i] = newItem(e, r.render(e, depth+1))
	}
	sortItems(items)

	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.text
	}
	sep := r.cfg.PreSeparatorSpacing + "," + r.cfg.PostSeparatorSpacing
	return r.cfg.PreItemSpacing + strings.Join(parts, sep) + r.cfg.PostItemSpacing
}

// sequence renders the elements of a slice or array.
func (r *Renderer) sequence(v reflect.Value, depth int) string {
	elems := make([]reflect.Value, v.Len())
	for i := range elems {
		elems[i] = v.Index(i)
	}
	return r.structure(elems, depth)
}

// associative renders map entries or exported struct fields as pairs.
func (r *Renderer) associative(v reflect.Value, depth int) string {
	var pairs []reflect.Value
	switch v.Kind() {
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			pairs = append(pairs, reflect.ValueOf(Pair{Key: iter.Key().Interface(), Value: iter.Value().Interface()}))
		}
	case reflect.Struct:
		for _, f := range fields(v) {
			pairs = append(pairs, reflect.ValueOf(f))
		}
	}
	return r.structure(pairs, depth)
}

// fields returns the exported fields of a struct as pairs. A `pretty` tag
// renames a field; "-" skips it.
func fields(v reflect.Value) []Pair {
	t := v.Type()
	var out []Pair
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("pretty"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		out = append(out, Pair{Key: name, Value: v.Field(i).Interface()})
	}
	return out
}

// pair renders :key(value). The value is rendered compactly at depth 0.
func (r *Renderer) pair(p Pair, _ int) string {
	key := r.pairKey(p.Key)
	if rv := reflect.ValueOf(p.Value); rv.Kind() == reflect.Bool {
		if rv.Bool() {
			return ":" + key
		}
		return ":!" + key
	}
	switch p.Value.(type) {
	case Mu:
		return ":" + key + "(Mu)"
	case nil:
		return ":" + key + "(Any)"
	}
	return ":" + key + "(" + r.compact(p.Value) + ")"
}

// interval renders min..max with ^ marking excluded endpoints.
func (r *Renderer) interval(rg Range) string {
	lo, hi := "-Inf", "Inf"
	if rg.Min != nil {
		lo = r.compact(rg.Min)
	}
	if rg.Max != nil {
		hi = r.compact(rg.Max)
	}
	op := ".."
	if rg.ExcludeMin {
		op = "^" + op
	}
	if rg.ExcludeMax {
		op += "^"
	}
	return lo + op + hi
}

// compact renders v at depth 0 without surrounding whitespace.
func (r *Renderer) compact(v any) string {
	return strings.TrimSpace(r.Render(v, 0))
}

// pairKey writes string keys bare and renders any other key compactly.
func (r *Renderer) pairKey(k any) string {
	if rv := reflect.ValueOf(k); rv.Kind() == reflect.String {
		return rv.String()
	}
	return r.compact(k)
}
