package propconfig

import "sort"

// PropertyValidator is a dependency-order evaluator: it converts,
// rule-checks, reports unknown keys, and enforces multi-property rules,
// yielding one ValidationResult per call. It is stateless aside from its
// precomputed plan and is safe to share across goroutines.
type PropertyValidator struct {
	registry   *PropertyRegistry
	converters *ConverterRegistry
}

// NewPropertyValidator builds a validator over registry, using the
// registry's own converter registry unless converters overrides it.
func NewPropertyValidator(registry *PropertyRegistry, converters *ConverterRegistry) (*PropertyValidator, error) {
	if registry == nil {
		return nil, &ArgumentError{Message: "registry must not be nil"}
	}
	if converters == nil {
		converters = registry.Converters()
	}
	return &PropertyValidator{registry: registry, converters: converters}, nil
}

// Validate runs the full validation plan against caller: dependency-ordered
// per-property checks, unknown-key detection, and every multi-property
// group's rules. caller is never mutated.
func (v *PropertyValidator) Validate(caller map[string]string) (ValidationResult, error) {
	if caller == nil {
		return ValidationResult{}, &ArgumentError{Message: "properties map must not be nil"}
	}

	ctx := WithTraceID(NewPropertyContext(caller, v.converters))
	result := Success()

	for _, name := range v.registry.ValidationPlan() {
		def, _ := v.registry.Get(name)
		result = result.Combine(v.validateOne(def, caller, ctx))
	}

	result = result.Combine(v.unknownKeyErrors(caller))

	for _, group := range v.registry.Groups() {
		for _, rule := range group.Rules {
			result = result.Combine(rule(group.Props, ctx))
		}
	}

	return result, nil
}

func (v *PropertyValidator) validateOne(def *Definition, caller map[string]string, ctx *PropertyContext) ValidationResult {
	raw, present := caller[def.Name()]
	absent := !present || raw == ""

	if absent && def.Required() {
		return Failure(NewValidationError(def.Name(), MsgRequiredMissing).
			WithActual(raw).WithExpected(ExpectedNonNull))
	}
	if absent {
		return Success()
	}
	return def.ConvertAndValidate(raw, ctx)
}

func (v *PropertyValidator) unknownKeyErrors(caller map[string]string) ValidationResult {
	var unknown []string
	for key := range caller {
		if !v.registry.Has(key) {
			unknown = append(unknown, key)
		}
	}
	// Go map iteration order is randomized; sort so repeated calls on the
	// same input are byte-identical, per the determinism contract.
	sort.Strings(unknown)

	if len(unknown) == 0 {
		return Success()
	}
	errs := make([]ValidationError, len(unknown))
	for i, key := range unknown {
		errs[i] = NewValidationError(key, MsgUnknownProperty).
			WithActual(caller[key]).WithExpected(ExpectedNotDefined)
	}
	return Failure(errs...)
}

// ValidateProperty skips ordering and unknown-key handling and runs exactly
// the per-property pipeline for the named definition against value,
// observing the rest of caller for any cross-property lookups. Reports
// "Unknown property" if name is not registered.
func (v *PropertyValidator) ValidateProperty(name, value string, caller map[string]string) (ValidationResult, error) {
	if caller == nil {
		return ValidationResult{}, &ArgumentError{Message: "properties map must not be nil"}
	}
	def, ok := v.registry.Get(name)
	if !ok {
		return Failure(NewValidationError(name, MsgUnknownProperty).
			WithActual(value).WithExpected(ExpectedNotDefined)), nil
	}

	merged := make(map[string]string, len(caller)+1)
	for k, val := range caller {
		merged[k] = val
	}
	merged[name] = value

	ctx := NewPropertyContext(merged, v.converters)
	return v.validateOne(def, merged, ctx), nil
}

// ValidateGroup runs only the named group's rules against caller.
func (v *PropertyValidator) ValidateGroup(group PropertyGroup, caller map[string]string) (ValidationResult, error) {
	if caller == nil {
		return ValidationResult{}, &ArgumentError{Message: "properties map must not be nil"}
	}
	ctx := NewPropertyContext(caller, v.converters)
	result := Success()
	for _, rule := range group.Rules {
		result = result.Combine(rule(group.Props, ctx))
	}
	return result, nil
}
