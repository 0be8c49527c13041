package propconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionAccessors(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").
		Description("listen port").
		Required(true).
		DependsOnForValidation("cpu.request").
		ValidationOrder(2).
		Category(CategoryNetwork).
		Build()

	assert.Equal(t, "server.port", d.Name())
	assert.Equal(t, "listen port", d.Description())
	assert.Equal(t, "Integer", d.TypeName())
	assert.True(t, d.Required())
	assert.Equal(t, []string{"cpu.request"}, d.DependsOn())
	assert.Equal(t, 2, d.ValidationOrder())
	assert.Equal(t, CategoryNetwork, d.Category())
}

func TestDefinitionConvertAndValidateSuccess(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").
		ValidationRule(Port[int]()).
		Build()

	ctx := NewPropertyContext(map[string]string{"server.port": "8080"}, nil)
	res := d.ConvertAndValidate("8080", ctx)
	assert.True(t, res.Valid())
}

func TestDefinitionConvertAndValidateConversionFailure(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").
		ValidationRule(Port[int]()).
		Build()

	ctx := NewPropertyContext(map[string]string{"server.port": "not a number"}, nil)
	res := d.ConvertAndValidate("not a number", ctx)
	assert.False(t, res.Valid())
	assert.Equal(t, MsgTypeConversion, res.Errors()[0].Message)
	assert.Equal(t, "Value of type Integer", res.Errors()[0].ExpectedValue)
}

func TestDefinitionConvertAndValidateRuleFailure(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").
		ValidationRule(Port[int]()).
		Build()

	ctx := NewPropertyContext(map[string]string{"server.port": "99999"}, nil)
	res := d.ConvertAndValidate("99999", ctx)
	assert.False(t, res.Valid())
}

func TestDefinitionResolveDefaultStringifies(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").
		DefaultValue(8080).
		Build()

	ctx := NewPropertyContext(map[string]string{}, nil)
	s, ok := d.ResolveDefault(ctx)
	require.True(t, ok)
	assert.Equal(t, "8080", s)
}

func TestDefinitionWithNoDefaultResolvesNothing(t *testing.T) {
	d := NewPropertyDefinition[int]("server.port", "Integer").Build()
	ctx := NewPropertyContext(map[string]string{}, nil)
	_, ok := d.ResolveDefault(ctx)
	assert.False(t, ok)
}

func TestBuilderPanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() {
		NewPropertyDefinition[int]("", "Integer").Build()
	})
}

func TestBuilderPanicsOnNegativeValidationOrder(t *testing.T) {
	assert.Panics(t, func() {
		NewPropertyDefinition[int]("x", "Integer").ValidationOrder(-1).Build()
	})
}
