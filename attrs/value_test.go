package attrs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

type label string

type point struct{ X, Y int }

func (p point) String() string { return "point" }

func Test_ValueOf_Kinds(t *testing.T) {
	text := "t"
	var nilText *string
	for _, tc := range []struct {
		value    interface{}
		kind     Kind
		expected interface{}
	}{
		{nil, Null, nil},
		{"x", Scalar, "x"},
		{label("x"), Scalar, "x"},
		{[]byte("x"), Scalar, "x"},
		{&text, Scalar, "t"},
		{nilText, Null, nil},
		{true, Scalar, true},
		{3, Scalar, int64(3)},
		{uint8(3), Scalar, int64(3)},
		{uint64(math.MaxUint64), Scalar, uint64(math.MaxUint64)},
		{float32(0.5), Scalar, 0.5},
		{null.StringFrom("x"), Scalar, "x"},
		{null.String{}, Null, nil},
		{[]string{"a"}, List, []interface{}{"a"}},
		{[2]int{1, 2}, List, []interface{}{int64(1), int64(2)}},
		{map[string]int{"a": 1}, Composite, map[string]int{"a": 1}},
		{point{1, 2}, Composite, point{1, 2}},
	} {
		value := ValueOf(tc.value)
		assert.Equal(t, tc.kind, value.Kind(), "%#v", tc.value)
		assert.Equal(t, tc.expected, value.Interface(), "%#v", tc.value)
	}
}

func Test_Value_String(t *testing.T) {
	for value, expected := range map[interface{}]string{
		true:                   "1",
		false:                  "",
		1.5:                    "1.5",
		100.0:                  "100",
		1e21:                   "1e+21",
		-42:                    "-42",
		uint64(math.MaxUint64): "18446744073709551615",
		"plain":                "plain",
		point{}:                "point",
	} {
		assert.Equal(t, expected, ValueOf(value).String(), "%#v", value)
	}

	assert.Equal(t, "a 1 b c", ValueOf([]interface{}{"a", 1, []string{"b", "c"}}).String())
	assert.Equal(t, "1 2", ValueOf(map[string]int{"b": 2, "a": 1}).String())
	assert.Equal(t, `{"1":"x"}`, ValueOf(map[int]string{1: "x"}).String())
	assert.Equal(t, "", ValueOf(nil).String())
}

func Test_Value_Items(t *testing.T) {
	value := ValueOf([]string{"a", "b"})
	items := value.Items()
	require.Len(t, items, 2)
	items[0] = ValueOf("c")
	assert.Equal(t, []interface{}{"a", "b"}, value.Interface())
	assert.Nil(t, ValueOf("a").Items())
}

func Test_ValueOf_SelfContainingList(t *testing.T) {
	list := []interface{}{nil}
	list[0] = list

	value := ValueOf(list)
	assert.Equal(t, List, value.Kind())
	_, err := value.json()
	assert.Error(t, err)
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
