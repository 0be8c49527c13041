package propconfig

// DefaultApplicationResult is the output of DefaultValueApplier.ApplyDefaults:
// the union of the caller's properties and the resolved defaults, plus a
// record of exactly which defaults were materialized.
type DefaultApplicationResult struct {
	PropertiesWithDefaults map[string]string
	AppliedDefaults        map[string]string
}

// DefaultValueApplier is a pure function object: ApplyDefaults never
// mutates the caller's map and never performs I/O.
type DefaultValueApplier struct {
	registry *PropertyRegistry
}

// NewDefaultValueApplier builds an applier over registry.
func NewDefaultValueApplier(registry *PropertyRegistry) (*DefaultValueApplier, error) {
	if registry == nil {
		return nil, &ArgumentError{Message: "registry must not be nil"}
	}
	return &DefaultValueApplier{registry: registry}, nil
}

// ApplyDefaults iterates definitions in registry (insertion) order. Caller
// keys are never overwritten: applied_defaults ∩ caller_keys == ∅. Later
// defaults observe earlier ones already materialized into the working map
// within the same call, in registration order.
func (a *DefaultValueApplier) ApplyDefaults(caller map[string]string) (*DefaultApplicationResult, error) {
	if caller == nil {
		return nil, &ArgumentError{Message: "properties map must not be nil"}
	}

	working := make(map[string]string, len(caller))
	for k, v := range caller {
		working[k] = v
	}
	applied := make(map[string]string)

	for _, def := range a.registry.Definitions() {
		if _, present := caller[def.Name()]; present {
			continue
		}
		ctx := NewPropertyContext(working, a.registry.Converters())
		stringified, ok := def.ResolveDefault(ctx)
		if !ok {
			continue
		}
		working[def.Name()] = stringified
		applied[def.Name()] = stringified
	}

	return &DefaultApplicationResult{PropertiesWithDefaults: working, AppliedDefaults: applied}, nil
}
