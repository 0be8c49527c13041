package propconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runString(t *testing.T, rule Rule[string], value string) ValidationResult {
	t.Helper()
	ctx := NewPropertyContext(map[string]string{"x": value}, nil)
	return rule("x", value, true, ctx)
}

func TestNotBlankAndNotEmpty(t *testing.T) {
	assert.True(t, runString(t, NotBlank(), "hi").Valid())
	assert.False(t, runString(t, NotBlank(), "   ").Valid())
	assert.False(t, runString(t, NotBlank(), "").Valid())

	assert.True(t, runString(t, NotEmpty(), " ").Valid())
	assert.False(t, runString(t, NotEmpty(), "").Valid())
}

func TestLengthRules(t *testing.T) {
	assert.False(t, runString(t, MinLength(3), "ab").Valid())
	assert.True(t, runString(t, MinLength(3), "abc").Valid())

	assert.True(t, runString(t, MaxLength(3), "abc").Valid())
	assert.False(t, runString(t, MaxLength(3), "abcd").Valid())

	between := LengthBetween(2, 4)
	assert.False(t, runString(t, between, "a").Valid())
	assert.True(t, runString(t, between, "abc").Valid())
	assert.False(t, runString(t, between, "abcde").Valid())
}

func TestMatchesRegex(t *testing.T) {
	rule := MatchesRegex(`^[a-z]+$`)
	assert.True(t, runString(t, rule, "abc").Valid())
	assert.False(t, runString(t, rule, "ABC").Valid())
}

func TestEmailAndURL(t *testing.T) {
	assert.True(t, runString(t, Email(), "user@example.com").Valid())
	assert.False(t, runString(t, Email(), "not-an-email").Valid())

	assert.True(t, runString(t, URL(), "https://example.com/path").Valid())
	assert.False(t, runString(t, URL(), "not a url").Valid())
}

func TestContainmentRules(t *testing.T) {
	assert.True(t, runString(t, StartsWith("pre"), "prefix").Valid())
	assert.False(t, runString(t, StartsWith("pre"), "suffix").Valid())

	assert.True(t, runString(t, EndsWith("fix"), "prefix").Valid())
	assert.False(t, runString(t, EndsWith("fix"), "prefab").Valid())

	assert.True(t, runString(t, Contains("efi"), "prefix").Valid())
	assert.False(t, runString(t, DoesNotContain("efi"), "prefix").Valid())
	assert.True(t, runString(t, DoesNotContain("zzz"), "prefix").Valid())
}

func TestCharacterClassRules(t *testing.T) {
	assert.True(t, runString(t, Alphanumeric(), "abc123").Valid())
	assert.False(t, runString(t, Alphanumeric(), "abc-123").Valid())

	assert.True(t, runString(t, Alphabetic(), "abc").Valid())
	assert.False(t, runString(t, Alphabetic(), "abc1").Valid())

	assert.True(t, runString(t, Numeric(), "123").Valid())
	assert.False(t, runString(t, Numeric(), "12a").Valid())

	assert.True(t, runString(t, Lowercase(), "abc").Valid())
	assert.False(t, runString(t, Lowercase(), "Abc").Valid())

	assert.True(t, runString(t, Uppercase(), "ABC").Valid())
	assert.False(t, runString(t, Uppercase(), "ABc").Valid())
}

func TestStringRuleComposition(t *testing.T) {
	rule := NotBlank().And(MinLength(3)).And(MaxLength(50))
	assert.True(t, runString(t, rule, "My App").Valid())
	assert.False(t, runString(t, rule, "X").Valid())
}
