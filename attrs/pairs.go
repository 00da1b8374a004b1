package attrs

import (
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PairsOf collects ordered pairs from a source. Supported sources:
// []Pair, *Attributes, YAML mapping nodes (document order) and maps
// with string keys (sorted by key).
func PairsOf(source interface{}) ([]Pair, error) {
	switch s := source.(type) {
	case []Pair:
		pairs := make([]Pair, len(s))
		copy(pairs, s)
		return pairs, nil
	case *Attributes:
		if s == nil {
			break
		}

		return s.Pairs(), nil
	case *yaml.Node:
		if s == nil {
			break
		}

		return pairsOfNode(s)
	case yaml.Node:
		return pairsOfNode(&s)
	}

	rv := reflect.ValueOf(source)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		pairs := make([]Pair, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, Pair{Name: iter.Key().String(), Value: iter.Value().Interface()})
		}

		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
		return pairs, nil
	}

	return nil, errors.Wrapf(ErrInvalidArgument, "unsupported attribute source %T", source)
}

func pairsOfNode(node *yaml.Node) ([]Pair, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return pairsOfNode(node.Content[0])
	case yaml.AliasNode:
		return pairsOfNode(node.Alias)
	case yaml.MappingNode:
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "expected mapping at line %d", node.Line)
	}

	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, errors.Wrapf(ErrInvalidArgument, "expected attribute name at line %d", key.Line)
		}

		var raw interface{}
		if err := value.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "decode attribute %s", key.Value)
		}

		pairs = append(pairs, Pair{Name: key.Value, Value: raw})
	}

	return pairs, nil
}

// UnmarshalYAML sets attributes from a YAML mapping keeping the document order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	pairs, err := pairsOfNode(node)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		a.Set(pair.Name, pair.Value)
	}

	return nil
}
