package pretty

import "reflect"

// TypeName returns the name handlers are registered under: the declared name
// for named types ("Point", "int", "Pair"), the type literal for unnamed types
// ("[]int", "*Point"), and "Nil" for an untyped nil.
func TypeName(v any) string {
	return typeNameOf(reflect.ValueOf(v))
}

func typeNameOf(v reflect.Value) string {
	if !v.IsValid() {
		return "Nil"
	}
	return typeName(v.Type())
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// label is the name written before .new( for record-like values. Unnamed
// structs have no useful name and fall back to the strategy name.
func label(t reflect.Type, fallback string) string {
	if name := t.Name(); name != "" {
		return name
	}
	return fallback
}
