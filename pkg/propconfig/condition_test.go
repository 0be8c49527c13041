package propconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyConditions(t *testing.T) {
	ctx := NewPropertyContext(map[string]string{
		"env":    "production",
		"debug":  "true",
		"quiet":  "false",
		"blank":  "   ",
	}, nil)

	assert.True(t, PropertyEquals("env", "production")(ctx))
	assert.False(t, PropertyEquals("env", "staging")(ctx))
	assert.True(t, PropertyNotEquals("env", "staging")(ctx))
	assert.False(t, PropertyNotEquals("env", "production")(ctx))

	assert.True(t, PropertyIsPresent("env")(ctx))
	assert.False(t, PropertyIsPresent("blank")(ctx))
	assert.False(t, PropertyIsPresent("missing")(ctx))
	assert.True(t, PropertyIsAbsent("missing")(ctx))

	assert.True(t, PropertyIsTrue("debug")(ctx))
	assert.False(t, PropertyIsTrue("quiet")(ctx))
	assert.True(t, PropertyIsFalse("quiet")(ctx))
	assert.False(t, PropertyIsFalse("debug")(ctx))
}

func TestMetadataEquals(t *testing.T) {
	ctx := NewPropertyContext(map[string]string{}, nil).WithMetadata("trace_id", "abc")
	assert.True(t, MetadataEquals("trace_id", "abc")(ctx))
	assert.False(t, MetadataEquals("trace_id", "xyz")(ctx))
	assert.False(t, MetadataEquals("missing", "abc")(ctx))
}

func TestConditionComposition(t *testing.T) {
	ctx := NewPropertyContext(map[string]string{"a": "1", "b": "2"}, nil)

	always := PropertyEquals("a", "1")
	never := PropertyEquals("b", "x")

	assert.False(t, always.And(never)(ctx))
	assert.True(t, always.Or(never)(ctx))
	assert.True(t, never.Not()(ctx))
	assert.False(t, always.Not()(ctx))
}
