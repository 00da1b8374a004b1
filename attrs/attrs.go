// Package attrs contains an ordered container of HTML tag attributes
// which renders itself into an escaped attribute string.
//
// Rendering rules
//
// Every attribute is rendered as ` name="value"`. The name is passed through
// the text escaper and the value through the attribute value escaper.
// Before escaping, values are converted to text:
//
//   - non-scalar values of event-like attributes (on*, constraints) are
//     JSON-encoded with HTML-sensitive characters hex-escaped;
//   - lists and string-keyed maps of other attributes are joined
//     with a single space, maps in key order;
//   - everything else uses its plain text form.
//
// Single quotes are used instead of double ones when the escaped value
// contains a double quote.
package attrs

import (
	"strings"

	"github.com/jfk9w-go/htmlattr/escape"
	"github.com/jfk9w-go/htmlattr/internal/logx"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidArgument is returned when an attribute source is not a set of name-value pairs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSerialization is returned when a value can not be encoded.
	ErrSerialization = errors.New("serialization error")
)

// Pair is a single attribute.
type Pair struct {
	Name  string
	Value interface{}
}

// Attributes is an ordered mapping of attribute names to values.
// The zero value is ready to use and renders with escape.HTML and escape.HTMLAttr.
// Attributes is not safe for concurrent use.
type Attributes struct {
	text   escape.Func
	attr   escape.Func
	names  []string
	values map[string]Value
}

// New creates Attributes with the provided escapers and initial pairs.
// Pairs are set in order, later duplicates overwrite earlier ones.
func New(text, attr escape.Func, pairs ...Pair) *Attributes {
	a := &Attributes{text: text, attr: attr}
	for _, pair := range pairs {
		a.Set(pair.Name, pair.Value)
	}

	return a
}

// NewFrom is New with pairs collected by PairsOf.
func NewFrom(text, attr escape.Func, source interface{}) (*Attributes, error) {
	pairs, err := PairsOf(source)
	if err != nil {
		return nil, err
	}

	return New(text, attr, pairs...), nil
}

// Set stores the value overwriting the previous one.
// An existing attribute keeps its position.
func (a *Attributes) Set(name string, value interface{}) *Attributes {
	if a.values == nil {
		a.values = make(map[string]Value)
	}

	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}

	a.values[name] = ValueOf(value)
	return a
}

func (a *Attributes) Get(name string) (Value, bool) {
	value, ok := a.values[name]
	return value, ok
}

func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a *Attributes) Delete(name string) *Attributes {
	if !a.Has(name) {
		return a
	}

	delete(a.values, name)
	if i := slices.Index(a.names, name); i >= 0 {
		a.names = slices.Delete(a.names, i, i+1)
	}

	return a
}

func (a *Attributes) Len() int {
	return len(a.names)
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	return slices.Clone(a.names)
}

// Pairs returns a copy of attributes in insertion order.
func (a *Attributes) Pairs() []Pair {
	pairs := make([]Pair, len(a.names))
	for i, name := range a.names {
		pairs[i] = Pair{Name: name, Value: a.values[name]}
	}

	return pairs
}

// Clone returns an independent copy sharing the escapers.
func (a *Attributes) Clone() *Attributes {
	return New(a.text, a.attr, a.Pairs()...)
}

// Add sets the attribute if it does not exist.
// Otherwise both the stored and the new value are converted to lists
// and the new elements are appended to the stored ones.
func (a *Attributes) Add(name string, value interface{}) *Attributes {
	stored, ok := a.Get(name)
	if !ok {
		return a.Set(name, value)
	}

	items := append(stored.flatten(), ValueOf(value).flatten()...)
	return a.Set(name, Value{kind: List, items: items})
}

// Merge adds every pair in order.
func (a *Attributes) Merge(pairs ...Pair) *Attributes {
	for _, pair := range pairs {
		a.Add(pair.Name, pair.Value)
	}

	return a
}

// MergeFrom is Merge with pairs collected by PairsOf.
func (a *Attributes) MergeFrom(source interface{}) error {
	pairs, err := PairsOf(source)
	if err != nil {
		return err
	}

	a.Merge(pairs...)
	return nil
}

// HasValue checks if the attribute exists and contains the value.
// List elements are compared by value (numbers are compared numerically),
// other values must have the same type and value.
func (a *Attributes) HasValue(name string, value interface{}) bool {
	stored, ok := a.Get(name)
	if !ok {
		return false
	}

	needle := ValueOf(value)
	if stored.kind == List {
		for _, item := range stored.items {
			if item.looseEqual(needle) {
				return true
			}
		}

		return false
	}

	return stored.strictEqual(needle)
}

// Render returns the attribute string, e.g. ` id="x" class="a b"`.
// It fails with ErrSerialization if a value can not be JSON-encoded.
func (a *Attributes) Render() (string, error) {
	sb := new(strings.Builder)
	for _, name := range a.names {
		if err := a.render(sb, name, a.values[name]); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

// String is Render which skips (and logs) the attributes failing to render.
func (a *Attributes) String() string {
	sb := new(strings.Builder)
	for _, name := range a.names {
		if err := a.render(sb, name, a.values[name]); err != nil {
			logx.Get("attrs").WithError(err).Warnf("skipping attribute %s", name)
		}
	}

	return sb.String()
}

func (a *Attributes) render(sb *strings.Builder, name string, value Value) error {
	key := a.escapeText(name)

	var (
		text string
		err  error
	)

	if IsEventLike(key) && value.kind != Scalar {
		text, err = value.json()
	} else {
		text, err = value.text()
	}

	if err != nil {
		return errors.Wrapf(ErrSerialization, "attribute %s: %v", name, err)
	}

	text = a.escapeAttr(text)
	quote := `"`
	if strings.Contains(text, `"`) {
		quote = "'"
	}

	sb.WriteRune(' ')
	sb.WriteString(key)
	sb.WriteRune('=')
	sb.WriteString(quote)
	sb.WriteString(text)
	sb.WriteString(quote)
	return nil
}

func (a *Attributes) escapeText(value string) string {
	if a.text == nil {
		return escape.HTML(value)
	}

	return a.text(value)
}

func (a *Attributes) escapeAttr(value string) string {
	if a.attr == nil {
		return escape.HTMLAttr(value)
	}

	return a.attr(value)
}

// IsEventLike reports whether the (escaped) attribute name is an event handler
// (starts with "on") or the "constraints" attribute. Non-scalar values of such
// attributes are JSON-encoded instead of being joined with spaces.
func IsEventLike(name string) bool {
	return strings.HasPrefix(name, "on") || name == "constraints"
}
