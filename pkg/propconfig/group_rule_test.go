package propconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutuallyExclusive(t *testing.T) {
	names := []string{"auth.password", "auth.api_key"}

	bothPresent := NewPropertyContext(map[string]string{"auth.password": "p", "auth.api_key": "k"}, nil)
	res := MutuallyExclusive(names...)(names, bothPresent)
	assert.False(t, res.Valid())
	assert.Contains(t, res.Errors()[0].Message, "Only one of")

	onlyOne := NewPropertyContext(map[string]string{"auth.password": "p"}, nil)
	assert.True(t, MutuallyExclusive(names...)(names, onlyOne).Valid())

	neither := NewPropertyContext(map[string]string{}, nil)
	assert.True(t, MutuallyExclusive(names...)(names, neither).Valid())

	blankTreatedAsAbsent := NewPropertyContext(map[string]string{"auth.password": "p", "auth.api_key": "   "}, nil)
	assert.True(t, MutuallyExclusive(names...)(names, blankTreatedAsAbsent).Valid())
}

func TestAtLeastOneRequired(t *testing.T) {
	names := []string{"auth.password", "auth.api_key"}

	none := NewPropertyContext(map[string]string{}, nil)
	res := AtLeastOneRequired(names...)(names, none)
	assert.False(t, res.Valid())
	assert.Contains(t, res.Errors()[0].Message, "At least one of")

	one := NewPropertyContext(map[string]string{"auth.api_key": "k"}, nil)
	assert.True(t, AtLeastOneRequired(names...)(names, one).Valid())
}

func TestExactlyOneRequired(t *testing.T) {
	names := []string{"auth.password", "auth.api_key"}
	rule := ExactlyOneRequired(names...)

	none := NewPropertyContext(map[string]string{}, nil)
	assert.False(t, rule(names, none).Valid())

	both := NewPropertyContext(map[string]string{"auth.password": "p", "auth.api_key": "k"}, nil)
	assert.False(t, rule(names, both).Valid())

	exactlyOne := NewPropertyContext(map[string]string{"auth.password": "p"}, nil)
	assert.True(t, rule(names, exactlyOne).Valid())
}

func TestMutuallyExclusivePanicsBelowTwoNames(t *testing.T) {
	assert.Panics(t, func() { MutuallyExclusive("only-one") })
}

func TestGroupRuleComposition(t *testing.T) {
	names := []string{"a", "b"}
	ctx := NewPropertyContext(map[string]string{}, nil)

	pass := GroupRule(func([]string, *PropertyContext) ValidationResult { return Success() })
	fail := GroupRule(func(names []string, _ *PropertyContext) ValidationResult {
		return Failure(NewValidationError(names[0], "boom"))
	})

	assert.False(t, fail.And(pass)(names, ctx).Valid())
	assert.True(t, pass.Or(fail)(names, ctx).Valid())
	assert.True(t, fail.OnlyIf(func(*PropertyContext) bool { return false })(names, ctx).Valid())
}
