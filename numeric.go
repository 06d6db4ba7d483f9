package pretty

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// rational is satisfied by *big.Rat and any other numerator/denominator type.
type rational interface {
	Num() *big.Int
	Denom() *big.Int
}

func (r *Renderer) viaNumeric(v reflect.Value, _ int) (string, bool) {
	if !v.IsValid() || isNilPointer(v) {
		return "", false
	}
	if v.CanInterface() {
		switch n := v.Interface().(type) {
		case rational:
			return r.guard(v, func() string {
				return "<" + n.Num().String() + "/" + n.Denom().String() + ">"
			}), true
		case *big.Int:
			return n.String(), true
		case *big.Float:
			return formatInf(n.Text('g', -1)), true
		case json.Number:
			return n.String(), true
		}
	}
	if !isNumericKind(v.Kind()) {
		return "", false
	}
	// Named numbers such as time.Duration have their own textual form.
	if v.Type().PkgPath() != "" {
		if s, ok := asInterface[fmt.Stringer](v); ok {
			return r.guard(v, s.String), true
		}
	}
	return formatNumber(v), true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatInf(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		return formatInf(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64:
		return "<" + strings.Trim(strconv.FormatComplex(v.Complex(), 'g', -1, 64), "()") + ">"
	case reflect.Complex128:
		return "<" + strings.Trim(strconv.FormatComplex(v.Complex(), 'g', -1, 128), "()") + ">"
	}
	return v.String()
}

func formatInf(s string) string {
	if s == "+Inf" {
		return "Inf"
	}
	return s
}
