package propconfig

import "reflect"

// Definition is the type-erased handle the registry and validator operate
// on. It owns a convert-and-validate closure that captures its target type
// T internally, so a registry can hold definitions of heterogeneous types
// behind one non-generic iteration surface.
type Definition struct {
	name            string
	description     string
	typeName        string
	targetType      reflect.Type
	required        bool
	dependsOn       []string
	validationOrder int
	category        Category

	convertAndValidate func(raw string, ctx *PropertyContext) ValidationResult
	resolveDefault     func(ctx *PropertyContext) (string, bool)
}

// Name is the property's unique, registry-scoped identifier.
func (d *Definition) Name() string { return d.name }

// Description is the optional human-readable description supplied by the
// builder.
func (d *Definition) Description() string { return d.description }

// TypeName is a human-readable name of the target type, used in
// type-conversion error messages.
func (d *Definition) TypeName() string { return d.typeName }

// Required reports whether the property must be present with a non-empty
// value. A whitespace-only value counts as present and goes on to type
// conversion and the validation rule.
func (d *Definition) Required() bool { return d.required }

// DependsOn lists the names of properties this one depends on for
// validation ordering. Names that are not registered are ignored at
// validate time rather than causing an error.
func (d *Definition) DependsOn() []string { return append([]string(nil), d.dependsOn...) }

// ValidationOrder is the explicit tie-breaker used when building the
// topological validation plan.
func (d *Definition) ValidationOrder() int { return d.validationOrder }

// Category is the display grouping for this property.
func (d *Definition) Category() Category { return d.category }

// ConvertAndValidate converts raw to the definition's target type and, on
// success, evaluates its validation rule (if any) against the typed value.
// Callers must only invoke this when raw is known to be present and
// non-blank; required-ness and absence are the Validator's concern.
func (d *Definition) ConvertAndValidate(raw string, ctx *PropertyContext) ValidationResult {
	return d.convertAndValidate(raw, ctx)
}

// ResolveDefault evaluates the definition's default provider, if any,
// against ctx. ok is false when there is no default provider or it
// produced no value for this context.
func (d *Definition) ResolveDefault(ctx *PropertyContext) (string, bool) {
	if d.resolveDefault == nil {
		return "", false
	}
	return d.resolveDefault(ctx)
}

// PropertyDefinitionBuilder builds one typed PropertyDefinition[T], erased
// into a Definition by Build.
type PropertyDefinitionBuilder[T any] struct {
	name            string
	description     string
	typeName        string
	required        bool
	dependsOn       []string
	validationOrder int
	category        Category
	rule            Rule[T]
	def             *ConditionalDefault[T]
	converters      *ConverterRegistry
}

// NewPropertyDefinition starts a builder for a property named name whose
// target type is T. typeName is a human-readable label for that type (for
// example "Integer") used in type-conversion error messages.
func NewPropertyDefinition[T any](name, typeName string) *PropertyDefinitionBuilder[T] {
	return &PropertyDefinitionBuilder[T]{name: name, typeName: typeName}
}

// Description sets the optional human-readable description.
func (b *PropertyDefinitionBuilder[T]) Description(desc string) *PropertyDefinitionBuilder[T] {
	b.description = desc
	return b
}

// Required marks the property as required.
func (b *PropertyDefinitionBuilder[T]) Required(required bool) *PropertyDefinitionBuilder[T] {
	b.required = required
	return b
}

// DependsOnForValidation records the names of sibling properties this one
// depends on for validation ordering.
func (b *PropertyDefinitionBuilder[T]) DependsOnForValidation(names ...string) *PropertyDefinitionBuilder[T] {
	b.dependsOn = append(b.dependsOn, names...)
	return b
}

// ValidationOrder sets the explicit tie-breaker for the validation plan.
func (b *PropertyDefinitionBuilder[T]) ValidationOrder(order int) *PropertyDefinitionBuilder[T] {
	b.validationOrder = order
	return b
}

// Category sets the display grouping.
func (b *PropertyDefinitionBuilder[T]) Category(c Category) *PropertyDefinitionBuilder[T] {
	b.category = c
	return b
}

// ValidationRule sets the single-property rule evaluated after successful
// type conversion.
func (b *PropertyDefinitionBuilder[T]) ValidationRule(rule Rule[T]) *PropertyDefinitionBuilder[T] {
	b.rule = rule
	return b
}

// DefaultValue sets a constant default.
func (b *PropertyDefinitionBuilder[T]) DefaultValue(v T) *PropertyDefinitionBuilder[T] {
	b.def = ConstantDefault(v)
	return b
}

// ConditionalDefaultValue sets a conditional or computed default.
func (b *PropertyDefinitionBuilder[T]) ConditionalDefaultValue(d *ConditionalDefault[T]) *PropertyDefinitionBuilder[T] {
	b.def = d
	return b
}

// Converters overrides the converter registry used to convert this
// property's raw values; when unset, the registry of the context passed to
// ConvertAndValidate is used. Defaults are stringified with Stringify,
// which does not consult any registry.
func (b *PropertyDefinitionBuilder[T]) Converters(r *ConverterRegistry) *PropertyDefinitionBuilder[T] {
	b.converters = r
	return b
}

// Build erases the typed builder into a non-generic Definition.
func (b *PropertyDefinitionBuilder[T]) Build() *Definition {
	if b.name == "" {
		panic("propconfig: property name must not be empty")
	}
	if b.validationOrder < 0 {
		panic("propconfig: validation_order must be >= 0")
	}
	targetType := reflect.TypeOf((*T)(nil)).Elem()

	d := &Definition{
		name:            b.name,
		description:     b.description,
		typeName:        b.typeName,
		targetType:      targetType,
		required:        b.required,
		dependsOn:       append([]string(nil), b.dependsOn...),
		validationOrder: b.validationOrder,
		category:        b.category,
	}

	rule := b.rule
	typeName := b.typeName
	overrideConverters := b.converters

	d.convertAndValidate = func(raw string, ctx *PropertyContext) ValidationResult {
		converters := ctx.Converters()
		if overrideConverters != nil {
			converters = overrideConverters
		}
		value, ok := Convert[T](converters, raw)
		if !ok {
			return Failure(NewValidationError(d.name, MsgTypeConversion).
				WithActual(raw).
				WithExpected("Value of type " + typeName))
		}
		if rule == nil {
			return Success()
		}
		return rule(d.name, value, true, ctx)
	}

	def := b.def
	d.resolveDefault = func(ctx *PropertyContext) (string, bool) {
		if def == nil {
			return "", false
		}
		v, ok := def.Resolve(ctx)
		if !ok {
			return "", false
		}
		return Stringify(any(v)), true
	}

	return d
}
