package pretty

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strings"
	"time"
)

// orderClass groups values that have a natural order among themselves.
type orderClass int

const (
	unordered orderClass = iota
	numbers
	texts
	booleans
	times
)

type sortKey struct {
	class orderClass
	num   *big.Float
	str   string
	b     bool
	t     time.Time
}

// item is a container element together with its rendered text.
type item struct {
	key  sortKey
	text string
}

func newItem(v reflect.Value, text string) item {
	return item{key: keyOf(v), text: text}
}

// sortItems orders elements naturally when they all share an order class and
// by rendered text otherwise. Ties always fall back to the rendered text.
func sortItems(items []item) {
	natural := items[0].key.class != unordered
	for _, it := range items[1:] {
		if it.key.class != items[0].key.class {
			natural = false
			break
		}
	}
	slices.SortStableFunc(items, func(a, b item) int {
		if natural {
			if c := compareKeys(a.key, b.key); c != 0 {
				return c
			}
		}
		return strings.Compare(a.text, b.text)
	})
}

func compareKeys(a, b sortKey) int {
	switch a.class {
	case numbers:
		return a.num.Cmp(b.num)
	case texts:
		return strings.Compare(a.str, b.str)
	case booleans:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	case times:
		return a.t.Compare(b.t)
	}
	return 0
}

// keyOf extracts the natural sort key of v. Pairs sort by their key. Values
// whose methods panic are unordered.
func keyOf(v reflect.Value) (key sortKey) {
	defer func() {
		if recover() != nil {
			key = sortKey{}
		}
	}()
	if v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() || isNilPointer(v) {
		return sortKey{}
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Pair:
			return keyOf(reflect.ValueOf(x.Key))
		case time.Time:
			return sortKey{class: times, t: x}
		case rational:
			num, den := x.Num(), x.Denom()
			if num == nil || den == nil || den.Sign() == 0 {
				return sortKey{}
			}
			f := newFloat().SetRat(new(big.Rat).SetFrac(num, den))
			return sortKey{class: numbers, num: f}
		case *big.Int:
			return sortKey{class: numbers, num: newFloat().SetInt(x)}
		case *big.Float:
			if x.IsInf() {
				return sortKey{class: numbers, num: newFloat().SetInf(x.Sign() < 0)}
			}
			return sortKey{class: numbers, num: newFloat().Set(x)}
		case json.Number:
			if f, ok := newFloat().SetString(x.String()); ok {
				return sortKey{class: numbers, num: f}
			}
			return sortKey{}
		}
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{class: numbers, num: newFloat().SetInt64(v.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{class: numbers, num: newFloat().SetUint64(v.Uint())}
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(v.Float()) {
			return sortKey{}
		}
		return sortKey{class: numbers, num: newFloat().SetFloat64(v.Float())}
	case reflect.String:
		return sortKey{class: texts, str: v.String()}
	case reflect.Bool:
		return sortKey{class: booleans, b: v.Bool()}
	}
	return sortKey{}
}

func newFloat() *big.Float { return new(big.Float).SetPrec(256) }
