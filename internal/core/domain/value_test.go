package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "nulls", a: NullValue(), b: NullValue(), want: true},
		{name: "equal strings", a: StringValue("x"), b: StringValue("x"), want: true},
		{name: "different strings", a: StringValue("x"), b: StringValue("y"), want: false},
		{name: "different kinds", a: StringValue("5"), b: NumberValue(5), want: false},
		{
			name: "mapping key order irrelevant",
			a:    MappingValue(map[string]Value{"a": NumberValue(1), "b": NumberValue(2)}),
			b:    MappingValue(map[string]Value{"b": NumberValue(2), "a": NumberValue(1)}),
			want: true,
		},
		{
			name: "sequence order significant",
			a:    SequenceValue(NumberValue(1), NumberValue(2)),
			b:    SequenceValue(NumberValue(2), NumberValue(1)),
			want: false,
		},
		{
			name: "nested",
			a: MappingValue(map[string]Value{
				"s": SequenceValue(MappingValue(map[string]Value{"k": BoolValue(true)})),
			}),
			b: MappingValue(map[string]Value{
				"s": SequenceValue(MappingValue(map[string]Value{"k": BoolValue(true)})),
			}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueCanonicalDeterministic(t *testing.T) {
	v := MappingValue(map[string]Value{
		"b":    NumberValue(2),
		"a":    NumberValue(1),
		"list": SequenceValue(StringValue("x"), NullValue(), BoolValue(false)),
	})

	assert.Equal(t, "{a:1,b:2,list:[x,null,false]}", v.Canonical())
}

func TestValueCanonicalNumbers(t *testing.T) {
	// Whole numbers render without a decimal point.
	assert.Equal(t, "8080", NumberValue(8080).Canonical())
	assert.Equal(t, "1.5", NumberValue(1.5).Canonical())
}

func TestValueIsScalar(t *testing.T) {
	assert.True(t, NullValue().IsScalar())
	assert.True(t, BoolValue(true).IsScalar())
	assert.True(t, NumberValue(1).IsScalar())
	assert.True(t, StringValue("s").IsScalar())
	assert.False(t, SequenceValue().IsScalar())
	assert.False(t, MappingValue(nil).IsScalar())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "null", KindNull.String())
}
