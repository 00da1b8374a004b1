package attrs

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the shape of an attribute value.
type Kind uint8

const (
	Null Kind = iota
	Scalar
	List
	Composite
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case List:
		return "list"
	case Composite:
		return "composite"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// maxDepth limits list nesting, deeper values are kept as composites.
const maxDepth = 32

// Value is a normalized attribute value.
// Scalars are kept as string, bool, int64, uint64 or float64.
type Value struct {
	kind  Kind
	raw   interface{}
	items []Value
}

// ValueOf normalizes an arbitrary Go value.
func ValueOf(value interface{}) Value {
	return valueOf(value, 0)
}

func valueOf(value interface{}, depth int) Value {
	switch v := value.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case string:
		return Value{kind: Scalar, raw: v}
	case bool:
		return Value{kind: Scalar, raw: v}
	case []byte:
		return Value{kind: Scalar, raw: string(v)}
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return Value{kind: Composite, raw: value}
		}

		return valueOf(dv, depth)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return Value{kind: Scalar, raw: rv.String()}
	case reflect.Bool:
		return Value{kind: Scalar, raw: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: Scalar, raw: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return Value{kind: Scalar, raw: int64(u)}
		} else {
			return Value{kind: Scalar, raw: u}
		}
	case reflect.Float32, reflect.Float64:
		return Value{kind: Scalar, raw: rv.Float()}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}

		switch elem := rv.Elem(); elem.Kind() {
		case reflect.Struct, reflect.Map:
			return Value{kind: Composite, raw: value}
		default:
			if depth >= maxDepth {
				return Value{kind: Composite, raw: value}
			}

			return valueOf(elem.Interface(), depth+1)
		}
	case reflect.Slice, reflect.Array:
		if depth >= maxDepth {
			return Value{kind: Composite, raw: value}
		}

		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = valueOf(rv.Index(i).Interface(), depth+1)
		}

		return Value{kind: List, items: items}
	default:
		return Value{kind: Composite, raw: value}
	}
}

// Kind returns the value shape.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the underlying Go value.
// Lists are returned as []interface{}.
func (v Value) Interface() interface{} {
	if v.kind == List {
		values := make([]interface{}, len(v.items))
		for i, item := range v.items {
			values[i] = item.Interface()
		}

		return values
	}

	return v.raw
}

// Items returns a copy of list elements or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != List {
		return nil
	}

	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// String returns the text form of the value.
// Lists are joined with a single space.
func (v Value) String() string {
	text, _ := v.text()
	return text
}

func (v Value) text() (string, error) {
	return v.textAt(0)
}

func (v Value) textAt(depth int) (string, error) {
	switch v.kind {
	case Scalar:
		return formatScalar(v.raw), nil
	case List:
		return joinText(v.items, depth)
	case Composite:
		if s, ok := v.raw.(fmt.Stringer); ok {
			return s.String(), nil
		}

		if items, ok := mapItems(v.raw, depth); ok {
			if depth >= maxDepth {
				return "", errors.Errorf("map nesting exceeds %d", maxDepth)
			}

			return joinText(items, depth+1)
		}

		return v.json()
	default:
		return "", nil
	}
}

func joinText(items []Value, depth int) (string, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		text, err := item.textAt(depth)
		if err != nil {
			return "", err
		}

		parts[i] = text
	}

	return strings.Join(parts, " "), nil
}

// mapItems returns values of a map with string keys in key order.
func mapItems(raw interface{}, depth int) ([]Value, bool) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	items := make([]Value, len(keys))
	for i, key := range keys {
		items[i] = valueOf(rv.MapIndex(key).Interface(), depth)
	}

	return items, true
}

// flatten returns the value as a fresh list of elements:
// null is empty, lists are unwrapped, anything else is a single element.
func (v Value) flatten() []Value {
	switch v.kind {
	case Null:
		return nil
	case List:
		return v.Items()
	default:
		return []Value{v}
	}
}

// strictEqual requires the same kind, type and value.
func (v Value) strictEqual(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case Null:
		return true
	case Scalar:
		return v.raw == other.raw
	case List:
		if len(v.items) != len(other.items) {
			return false
		}

		for i := range v.items {
			if !v.items[i].strictEqual(other.items[i]) {
				return false
			}
		}

		return true
	default:
		return reflect.DeepEqual(v.raw, other.raw)
	}
}

// looseEqual is strictEqual except that numbers and numeric strings
// compare numerically, so 1, 1.0 and "1" are all equal.
func (v Value) looseEqual(other Value) bool {
	if v.kind == Scalar && other.kind == Scalar {
		if a, ok := number(v.raw); ok {
			if b, ok := number(other.raw); ok {
				return a == b
			}
		}
	}

	return v.strictEqual(other)
}

func number(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		return numericString(n)
	default:
		return 0, false
	}
}

// numericString parses decimal numbers only: inf, nan and hex floats
// accepted by strconv are rejected.
func numericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "iInNxXpP_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func formatScalar(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}

		return ""
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		if abs := math.Abs(v); abs == 0 || abs >= 1e-6 && abs < 1e21 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}

		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
