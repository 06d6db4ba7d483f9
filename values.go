package pretty

// Pair is a single key/value association. It renders as :key(value), or as
// :key / :!key when the value is a boolean.
type Pair struct {
	Key   any
	Value any
}

// P is shorthand for Pair{Key: key, Value: value}.
func P(key, value any) Pair { return Pair{Key: key, Value: value} }

// List is a generic list of values. It renders with $( ) brackets, as
// opposed to slices which render with $[ ].
type List []any

// Range is an interval between Min and Max. A nil endpoint is unbounded.
type Range struct {
	Min        any
	Max        any
	ExcludeMin bool
	ExcludeMax bool
}

// Mu marks an explicitly uninitialized value.
type Mu struct{}
