package propconfig

import "fmt"

// Required fails when the value is absent. Unlike every other built-in
// rule, Required does not pass on absence — enforcing required-ness is its
// entire purpose. The Validator enforces required-ness through the
// definition's Required flag and runs a definition's validation rule only
// for a present value, so inside a definition this rule never fails; it
// fails only when a rule is invoked directly with present == false.
func Required[T any]() Rule[T] {
	return func(name string, _ T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Failure(NewValidationError(name, MsgRequiredMissing).WithExpected(ExpectedNonNull))
		}
		return Success()
	}
}

// NotNull is an alias of Required, named to match the catalogue's separate
// entry for the same predicate.
func NotNull[T any]() Rule[T] {
	return Required[T]()
}

// OneOf fails when a present value is not equal to one of set.
func OneOf[T comparable](set ...T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		for _, s := range set {
			if s == value {
				return Success()
			}
		}
		return Failure(NewValidationError(name, fmt.Sprintf("Value is not one of the allowed values: %v", set)).
			WithActual(fmt.Sprint(value)))
	}
}

// NoneOf fails when a present value equals any member of set.
func NoneOf[T comparable](set ...T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		for _, s := range set {
			if s == value {
				return Failure(NewValidationError(name, fmt.Sprintf("Value must not be one of: %v", set)).
					WithActual(fmt.Sprint(value)))
			}
		}
		return Success()
	}
}

// EqualTo fails when a present value does not equal want.
func EqualTo[T comparable](want T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value != want {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must equal %v", want)).WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// NotEqualTo fails when a present value equals avoid.
func NotEqualTo[T comparable](avoid T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value == avoid {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must not equal %v", avoid)).WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Custom fails when a present value does not satisfy pred, reporting msg
// (and, if expected is non-empty, an expected-value description).
func Custom[T any](pred func(T) bool, msg string, expected ...string) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if pred(value) {
			return Success()
		}
		err := NewValidationError(name, msg).WithActual(fmt.Sprint(value))
		if len(expected) > 0 {
			err = err.WithExpected(expected[0])
		}
		return Failure(err)
	}
}

// CustomWithContext is like Custom but the predicate also receives the
// context, for rules that need a sibling lookup without a full cross-
// property group.
func CustomWithContext[T any](pred func(T, *PropertyContext) bool, msg string) Rule[T] {
	return func(name string, value T, present bool, ctx *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if pred(value, ctx) {
			return Success()
		}
		return Failure(NewValidationError(name, msg).WithActual(fmt.Sprint(value)))
	}
}
