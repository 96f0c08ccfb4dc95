package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the closed set of generic value shapes.
type Kind uint8

// Value kinds. Null, Bool, Number and String are the scalar kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a recursive tagged union over the generic data shapes:
// a mapping with unique keys (order irrelevant), an ordered sequence,
// or a scalar. Exactly the fields implied by Kind are meaningful.
type Value struct {
	// Kind selects the active variant.
	Kind Kind

	// Bool is the value when Kind is KindBool.
	Bool bool

	// Number is the value when Kind is KindNumber.
	Number float64

	// Str is the value when Kind is KindString.
	Str string

	// Seq holds the elements when Kind is KindSequence.
	Seq []Value

	// Map holds the entries when Kind is KindMapping.
	Map map[string]Value
}

// NullValue returns the null scalar.
func NullValue() Value { return Value{Kind: KindNull} }

// BoolValue returns a boolean scalar.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue returns a numeric scalar.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// StringValue returns a string scalar.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// SequenceValue returns an ordered sequence.
func SequenceValue(elems ...Value) Value { return Value{Kind: KindSequence, Seq: elems} }

// MappingValue returns a mapping.
func MappingValue(m map[string]Value) Value { return Value{Kind: KindMapping, Map: m} }

// IsScalar reports whether the value is a scalar (null, bool, number
// or string).
func (v Value) IsScalar() bool {
	return v.Kind <= KindString
}

// Equal reports deep equality. Mapping key order is irrelevant;
// sequence order is significant.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Number == other.Number
	case KindString:
		return v.Str == other.Str
	case KindSequence:
		if len(v.Seq) != len(other.Seq) {
			return false
		}
		for i := range v.Seq {
			if !v.Seq[i].Equal(other.Seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.Map) != len(other.Map) {
			return false
		}
		for k, val := range v.Map {
			o, ok := other.Map[k]
			if !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MarshalJSON renders the value as plain JSON data rather than as the
// union struct.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindString:
		return json.Marshal(v.Str)
	case KindSequence:
		if v.Seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Seq)
	case KindMapping:
		if v.Map == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Map)
	default:
		return []byte("null"), nil
	}
}

// Canonical returns a deterministic single-line serialization of the
// value: mapping keys sorted, scalars rendered without quoting. Used
// for similarity tokenization and identity keys.
func (v Value) Canonical() string {
	var b strings.Builder
	v.writeCanonical(&b)
	return b.String()
}

// String implements fmt.Stringer via Canonical.
func (v Value) String() string {
	return v.Canonical()
}

func (v Value) writeCanonical(b *strings.Builder) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
	case KindString:
		b.WriteString(v.Str)
	case KindSequence:
		b.WriteByte('[')
		for i := range v.Seq {
			if i > 0 {
				b.WriteByte(',')
			}
			v.Seq[i].writeCanonical(b)
		}
		b.WriteByte(']')
	case KindMapping:
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte(':')
			entry := v.Map[k]
			entry.writeCanonical(b)
		}
		b.WriteByte('}')
	}
}
