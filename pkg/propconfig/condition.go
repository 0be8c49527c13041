package propconfig

// Condition is a predicate over a PropertyContext, used with Rule.OnlyIf
// and GroupRule.OnlyIf to gate a rule's evaluation.
type Condition func(ctx *PropertyContext) bool

// PropertyEquals reports whether the named property's raw value equals val.
func PropertyEquals(name, val string) Condition {
	return func(ctx *PropertyContext) bool {
		raw, ok := ctx.Raw(name)
		return ok && raw == val
	}
}

// PropertyNotEquals is the negation of PropertyEquals.
func PropertyNotEquals(name, val string) Condition {
	return func(ctx *PropertyContext) bool {
		raw, ok := ctx.Raw(name)
		return !ok || raw != val
	}
}

// PropertyIsPresent reports whether the named property is present with a
// non-blank value.
func PropertyIsPresent(name string) Condition {
	return func(ctx *PropertyContext) bool {
		return ctx.IsPresent(name)
	}
}

// PropertyIsAbsent is the negation of PropertyIsPresent.
func PropertyIsAbsent(name string) Condition {
	return func(ctx *PropertyContext) bool {
		return !ctx.IsPresent(name)
	}
}

// PropertyIsTrue reports whether the named property converts to the
// boolean true.
func PropertyIsTrue(name string) Condition {
	return func(ctx *PropertyContext) bool {
		v, ok := Typed[bool](ctx, name)
		return ok && v
	}
}

// PropertyIsFalse reports whether the named property converts to the
// boolean false.
func PropertyIsFalse(name string) Condition {
	return func(ctx *PropertyContext) bool {
		v, ok := Typed[bool](ctx, name)
		return ok && !v
	}
}

// MetadataEquals reports whether the context's metadata tag key equals val.
func MetadataEquals(key, val string) Condition {
	return func(ctx *PropertyContext) bool {
		v, ok := ctx.Metadata(key)
		return ok && v == val
	}
}

// And combines conditions, true only when every condition is true.
func (c Condition) And(other Condition) Condition {
	return func(ctx *PropertyContext) bool {
		return c(ctx) && other(ctx)
	}
}

// Or combines conditions, true when either condition is true.
func (c Condition) Or(other Condition) Condition {
	return func(ctx *PropertyContext) bool {
		return c(ctx) || other(ctx)
	}
}

// Not negates the condition.
func (c Condition) Not() Condition {
	return func(ctx *PropertyContext) bool {
		return !c(ctx)
	}
}
