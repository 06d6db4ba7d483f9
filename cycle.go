package pretty

import "reflect"

// visit identifies a pointer, map or slice on the current recursion path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// enter records v on the recursion path. It reports false if v is already
// being rendered further up, which means the data is cyclic.
func (r *Renderer) enter(v reflect.Value) (leave func(), ok bool) {
	if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
		return func() {}, true
	}
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.n = v.Len()
	}
	if _, seen := r.visiting[key]; seen {
		return nil, false
	}
	if r.visiting == nil {
		r.visiting = make(map[visit]struct{})
	}
	r.visiting[key] = struct{}{}
	return func() { delete(r.visiting, key) }, true
}

func (r *Renderer) cyclic(v reflect.Value) string {
	r.log.Trace().Str("type", typeNameOf(v)).Msg("cycle detected")
	return "(Cyclic " + typeNameOf(v) + ")"
}
