// Package pretty renders arbitrary Go values as human-readable text.
//
// The output is meant for people, not parsers: containers are bracketed and
// spread one element per line, elements are sorted so the same value always
// produces the same text, and anything the package does not understand is
// labeled instead of rejected. The central entry points are [Dump] and
// [Renderer.Render]:
//
//	fmt.Println(pretty.Dump(map[string]int{"a": 1}))
//	// ${
//	// 	:a(1)
//	// }
//
// # Layout
//
//   - slices and arrays → $[ ... ]
//   - [List] → $( ... )
//   - maps → ${ ... } with one [Pair] per entry
//   - structs → TypeName.new( ... ) with one pair per exported field
//   - [Pair] → :key(value), :key for true, :!key for false, :key(Mu) for [Mu]
//   - [Range] → 1..10, 1^..^10, -Inf..Inf
//   - strings are quoted, booleans are True and False, nil is Nil, a nil
//     pointer or a nil element, map value or pair value is Any
//   - *big.Rat and other numerator/denominator values → <1/3>
//
// Spacing is controlled by options on [New]: [WithIndent],
// [WithPreItemSpacing], [WithPostItemSpacing], [WithPreSeparatorSpacing],
// [WithPostSeparatorSpacing] and [WithIntraGroupSpacing]. A compact single
// line layout:
//
//	r := pretty.New(
//		pretty.WithIndent(""),
//		pretty.WithPreItemSpacing(""),
//		pretty.WithPostItemSpacing(""),
//		pretty.WithPostSeparatorSpacing(" "),
//	)
//
// # Dispatch
//
// For every value the first applicable strategy wins:
//
//  1. a handler registered for the value's [TypeName]
//  2. the value's own [Dumper] hook
//  3. the numeric strategy
//  4. pointer dereference (a nil pointer or nil interface renders Any)
//  5. a built-in strategy for the exact type
//  6. the first ancestor strategy, from [Lineage] or the underlying kind,
//     written as TypeName.new(...)
//  7. text conversion via String, Error or MarshalText, written as
//     (TypeName): text
//  8. (Unhandled TypeName)
//
// # Handlers
//
// Handlers override rendering per type name, including built-in types:
//
//	r := pretty.New()
//	pretty.Handle(r, func(r *pretty.Renderer, p Point, depth int) string {
//		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
//	})
//
// [Renderer.AddHandler] accepts any function shaped
// func(*Renderer, T, int) string and fails with [ErrSignatureMismatch]
// otherwise. Handlers, like the rest of a Renderer, are not safe for
// concurrent use.
//
// # Cycles
//
// A pointer, map or slice met again while it is still being rendered is
// written as (Cyclic TypeName) instead of recursing forever.
package pretty
