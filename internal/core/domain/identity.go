package domain

// IdentityRule declares which mapping key recognises "the same
// element" of a named array across versions. A rule may be
// conditional: it then applies only to elements whose WhenField
// equals WhenValue.
type IdentityRule struct {
	// Array is the key of the array the rule applies to.
	Array string `json:"array" toml:"array"`

	// IdentityField is the mapping key holding the element identity.
	IdentityField string `json:"identity_field" toml:"identity_field"`

	// WhenField, if set, restricts the rule to elements where the
	// value at WhenField equals WhenValue.
	WhenField string `json:"when_field,omitempty" toml:"when_field"`

	// WhenValue is the required value of WhenField.
	WhenValue string `json:"when_value,omitempty" toml:"when_value"`
}

// Conditional reports whether the rule only applies to elements
// matching its WhenField/WhenValue condition.
func (r IdentityRule) Conditional() bool {
	return r.WhenField != ""
}

// DiffOptions configures the generic pipeline. The zero value is
// valid: identity fields are then auto-detected.
type DiffOptions struct {
	// Rules is the ordered sequence of identity rules. Earlier rules
	// win when several apply.
	Rules []IdentityRule `json:"rules,omitempty" toml:"rules"`
}
