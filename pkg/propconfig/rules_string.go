package propconfig

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// NotBlank fails unless value is non-null and non-empty after trimming.
func NotBlank() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if strings.TrimSpace(value) == "" {
			return Failure(NewValidationError(name, "Value must not be blank").WithActual(value))
		}
		return Success()
	}
}

// NotEmpty fails unless value is non-null and has length greater than zero.
func NotEmpty() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if len(value) == 0 {
			return Failure(NewValidationError(name, "Value must not be empty"))
		}
		return Success()
	}
}

// MinLength fails when a present value's length is less than n.
func MinLength(n int) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if len(value) < n {
			return Failure(NewValidationError(name, fmt.Sprintf("Value length %d is less than minimum %d", len(value), n)).
				WithActual(value).WithExpected(fmt.Sprintf("length >= %d", n)))
		}
		return Success()
	}
}

// MaxLength fails when a present value's length exceeds n.
func MaxLength(n int) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if len(value) > n {
			return Failure(NewValidationError(name, fmt.Sprintf("Value length %d exceeds maximum %d", len(value), n)).
				WithActual(value).WithExpected(fmt.Sprintf("length <= %d", n)))
		}
		return Success()
	}
}

// LengthBetween fails unless a present value's length is within [lo, hi].
func LengthBetween(lo, hi int) Rule[string] {
	return MinLength(lo).And(MaxLength(hi))
}

// MatchesRegex fails when a present value does not match pat.
func MatchesRegex(pat string) Rule[string] {
	re := regexp.MustCompile(pat)
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !re.MatchString(value) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value does not match pattern %s", pat)).
				WithActual(value))
		}
		return Success()
	}
}

// Email fails when a present value is not a syntactically valid email
// address.
func Email() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if _, err := mail.ParseAddress(value); err != nil {
			return Failure(NewValidationError(name, "Value must be a valid email address").WithActual(value))
		}
		return Success()
	}
}

// URL fails when a present value is not a syntactically valid, absolute
// URL.
func URL() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Failure(NewValidationError(name, "Value must be a valid URL").WithActual(value))
		}
		return Success()
	}
}

// StartsWith fails when a present value does not start with prefix.
func StartsWith(prefix string) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !strings.HasPrefix(value, prefix) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must start with %q", prefix)).WithActual(value))
		}
		return Success()
	}
}

// EndsWith fails when a present value does not end with suffix.
func EndsWith(suffix string) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !strings.HasSuffix(value, suffix) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must end with %q", suffix)).WithActual(value))
		}
		return Success()
	}
}

// Contains fails when a present value does not contain substr.
func Contains(substr string) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !strings.Contains(value, substr) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must contain %q", substr)).WithActual(value))
		}
		return Success()
	}
}

// DoesNotContain fails when a present value contains substr.
func DoesNotContain(substr string) Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if strings.Contains(value, substr) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must not contain %q", substr)).WithActual(value))
		}
		return Success()
	}
}

// Alphanumeric fails when a present value contains any rune that is not a
// letter or digit.
func Alphanumeric() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		for _, r := range value {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return Failure(NewValidationError(name, "Value must be alphanumeric").WithActual(value))
			}
		}
		return Success()
	}
}

// Alphabetic fails when a present value contains any non-letter rune.
func Alphabetic() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		for _, r := range value {
			if !unicode.IsLetter(r) {
				return Failure(NewValidationError(name, "Value must be alphabetic").WithActual(value))
			}
		}
		return Success()
	}
}

// Numeric fails when a present value contains any non-digit rune.
func Numeric() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		for _, r := range value {
			if !unicode.IsDigit(r) {
				return Failure(NewValidationError(name, "Value must be numeric").WithActual(value))
			}
		}
		return Success()
	}
}

// Lowercase fails when a present value contains any upper-cased letter.
func Lowercase() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value != strings.ToLower(value) {
			return Failure(NewValidationError(name, "Value must be lowercase").WithActual(value))
		}
		return Success()
	}
}

// Uppercase fails when a present value contains any lower-cased letter.
func Uppercase() Rule[string] {
	return func(name string, value string, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value != strings.ToUpper(value) {
			return Failure(NewValidationError(name, "Value must be uppercase").WithActual(value))
		}
		return Success()
	}
}
