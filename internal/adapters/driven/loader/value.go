package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure ValueLoader implements the interface.
var _ driven.ValueLoader = (*ValueLoader)(nil)

// ValueLoader parses arbitrary YAML/JSON into generic values.
type ValueLoader struct{}

// NewValueLoader creates a new value loader.
func NewValueLoader() *ValueLoader {
	return &ValueLoader{}
}

// LoadValue parses tree-shaped data. An empty input yields null.
func (l *ValueLoader) LoadValue(data []byte) (domain.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Value{}, fmt.Errorf("parsing value: %w", err)
	}
	return convertValue(raw)
}

// convertValue maps the decoder's dynamic types onto the closed
// domain union.
func convertValue(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case nil:
		return domain.NullValue(), nil
	case bool:
		return domain.BoolValue(v), nil
	case int:
		return domain.NumberValue(float64(v)), nil
	case int64:
		return domain.NumberValue(float64(v)), nil
	case uint64:
		return domain.NumberValue(float64(v)), nil
	case float64:
		return domain.NumberValue(v), nil
	case string:
		return domain.StringValue(v), nil
	case []any:
		elems := make([]domain.Value, 0, len(v))
		for _, e := range v {
			converted, err := convertValue(e)
			if err != nil {
				return domain.Value{}, err
			}
			elems = append(elems, converted)
		}
		return domain.SequenceValue(elems...), nil
	case map[string]any:
		m := make(map[string]domain.Value, len(v))
		for k, e := range v {
			converted, err := convertValue(e)
			if err != nil {
				return domain.Value{}, err
			}
			m[k] = converted
		}
		return domain.MappingValue(m), nil
	case map[any]any:
		m := make(map[string]domain.Value, len(v))
		for k, e := range v {
			converted, err := convertValue(e)
			if err != nil {
				return domain.Value{}, err
			}
			m[fmt.Sprint(k)] = converted
		}
		return domain.MappingValue(m), nil
	default:
		return domain.Value{}, fmt.Errorf("%w: unsupported value type %T", domain.ErrInvalidInput, raw)
	}
}
