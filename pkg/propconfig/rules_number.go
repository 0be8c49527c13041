package propconfig

import "fmt"

// Number constrains the built-in numeric rules to Go's ordered numeric
// kinds; the target type itself is chosen by the PropertyDefinition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Positive fails when a present value is not greater than zero.
func Positive[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !(value > 0) {
			return Failure(NewValidationError(name, "Value must be positive").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Negative fails when a present value is not less than zero.
func Negative[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !(value < 0) {
			return Failure(NewValidationError(name, "Value must be negative").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// NonNegative fails when a present value is less than zero.
func NonNegative[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value < 0 {
			return Failure(NewValidationError(name, "Value must be non-negative").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// NonPositive fails when a present value is greater than zero.
func NonPositive[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value > 0 {
			return Failure(NewValidationError(name, "Value must be non-positive").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Zero fails when a present value is not exactly zero.
func Zero[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value != 0 {
			return Failure(NewValidationError(name, "Value must be zero").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Min fails when a present value is less than lo.
func Min[T Number](lo T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value < lo {
			return Failure(NewValidationError(name, fmt.Sprintf("Value %v is less than minimum %v", value, lo)).
				WithActual(fmt.Sprint(value)).WithExpected(fmt.Sprintf(">= %v", lo)))
		}
		return Success()
	}
}

// Max fails when a present value exceeds hi.
func Max[T Number](hi T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if value > hi {
			return Failure(NewValidationError(name, fmt.Sprintf("Value %v exceeds maximum %v", value, hi)).
				WithActual(fmt.Sprint(value)).WithExpected(fmt.Sprintf("<= %v", hi)))
		}
		return Success()
	}
}

// Between fails unless a present value is within [lo, hi] inclusive. Also
// serves as integer_between/long_between for integer target types.
func Between[T Number](lo, hi T) Rule[T] {
	return Min(lo).And(Max(hi))
}

// GreaterThan fails unless a present value is strictly greater than lo.
func GreaterThan[T Number](lo T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !(value > lo) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value %v must be greater than %v", value, lo)).
				WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// LessThan fails unless a present value is strictly less than hi.
func LessThan[T Number](hi T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !(value < hi) {
			return Failure(NewValidationError(name, fmt.Sprintf("Value %v must be less than %v", value, hi)).
				WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Port fails unless a present value is within the valid TCP/UDP port
// range, 1 through 65535 inclusive.
func Port[T Number]() Rule[T] {
	return Between[T](1, 65535)
}

// Even fails when a present integral value is odd. Intended for integer
// target types; non-integral values are compared via their integer
// remainder.
func Even[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if int64(value)%2 != 0 {
			return Failure(NewValidationError(name, "Value must be even").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// Odd fails when a present integral value is even.
func Odd[T Number]() Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if int64(value)%2 == 0 {
			return Failure(NewValidationError(name, "Value must be odd").WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}

// MultipleOf fails when a present value is not an integral multiple of k.
func MultipleOf[T Number](k T) Rule[T] {
	return func(name string, value T, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if k == 0 || int64(value)%int64(k) != 0 {
			return Failure(NewValidationError(name, fmt.Sprintf("Value must be a multiple of %v", k)).
				WithActual(fmt.Sprint(value)))
		}
		return Success()
	}
}
