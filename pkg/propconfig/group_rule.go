package propconfig

import (
	"fmt"
	"strings"
)

// GroupRule is a multi-property validation predicate over a set of named
// properties, evaluated against the raw caller map.
type GroupRule func(names []string, ctx *PropertyContext) ValidationResult

// And short-circuits: if r fails, its errors are returned without
// evaluating other.
func (r GroupRule) And(other GroupRule) GroupRule {
	return func(names []string, ctx *PropertyContext) ValidationResult {
		res := r(names, ctx)
		if !res.Valid() {
			return res
		}
		return other(names, ctx)
	}
}

// Or succeeds if either r or other passes, otherwise concatenates both
// error lists.
func (r GroupRule) Or(other GroupRule) GroupRule {
	return func(names []string, ctx *PropertyContext) ValidationResult {
		first := r(names, ctx)
		if first.Valid() {
			return first
		}
		second := other(names, ctx)
		if second.Valid() {
			return second
		}
		return first.Combine(second)
	}
}

// OnlyIf gates r behind predicate.
func (r GroupRule) OnlyIf(predicate Condition) GroupRule {
	return func(names []string, ctx *PropertyContext) ValidationResult {
		if !predicate(ctx) {
			return Success()
		}
		return r(names, ctx)
	}
}

func presentNames(names []string, ctx *PropertyContext) []string {
	present := make([]string, 0, len(names))
	for _, n := range names {
		if ctx.IsPresent(n) {
			present = append(present, n)
		}
	}
	return present
}

func quotedJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

// MutuallyExclusive fails if two or more of names are present with a
// non-blank value. Requires at least two names.
func MutuallyExclusive(names ...string) GroupRule {
	if len(names) < 2 {
		panic("propconfig: MutuallyExclusive requires at least two names")
	}
	return func(_ []string, ctx *PropertyContext) ValidationResult {
		present := presentNames(names, ctx)
		if len(present) <= 1 {
			return Success()
		}
		return Failure(NewValidationError(present[0],
			fmt.Sprintf("Only one of %s may be set", quotedJoin(names))).
			WithActual(quotedJoin(present)))
	}
}

// AtLeastOneRequired fails if none of names are present with a non-blank
// value.
func AtLeastOneRequired(names ...string) GroupRule {
	if len(names) == 0 {
		panic("propconfig: AtLeastOneRequired requires at least one name")
	}
	return func(_ []string, ctx *PropertyContext) ValidationResult {
		if len(presentNames(names, ctx)) > 0 {
			return Success()
		}
		return Failure(NewValidationError(names[0],
			fmt.Sprintf("At least one of %s is required", quotedJoin(names))))
	}
}

// ExactlyOneRequired is the conjunction of MutuallyExclusive and
// AtLeastOneRequired; the failure message reflects whichever clause failed.
// Requires at least two names.
func ExactlyOneRequired(names ...string) GroupRule {
	if len(names) < 2 {
		panic("propconfig: ExactlyOneRequired requires at least two names")
	}
	return AtLeastOneRequired(names...).And(MutuallyExclusive(names...))
}
