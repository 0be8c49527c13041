package main

import "github.com/fieldguard/propconfig/pkg/propconfig"

// buildRegistry assembles the demo's sample schema: a handful of properties
// spanning the built-in rule categories, plus one dependent pair and one
// mutually-exclusive group, to exercise every corner of the validation
// pipeline behind the HTTP endpoint.
func buildRegistry() (*propconfig.PropertyRegistry, error) {
	b := propconfig.NewRegistryBuilder(propconfig.DefaultConverterRegistry())

	serverPort := propconfig.NewPropertyDefinition[int]("server.port", "Integer").
		Description("TCP port the demo server listens on").
		DefaultValue(8080).
		ValidationRule(propconfig.Port[int]()).
		Category(propconfig.CategoryNetwork).
		Build()

	appName := propconfig.NewPropertyDefinition[string]("app.name", "String").
		Description("Human-readable application name").
		Required(true).
		ValidationRule(propconfig.NotBlank().And(propconfig.MinLength(3)).And(propconfig.MaxLength(50))).
		Category(propconfig.CategoryGeneral).
		Build()

	cpuRequest := propconfig.NewPropertyDefinition[int]("cpu.request", "Integer").
		Description("Requested CPU shares").
		ValidationRule(propconfig.Positive[int]()).
		Category(propconfig.CategoryPerformance).
		Build()

	cpuLimit := propconfig.NewPropertyDefinition[int]("cpu.limit", "Integer").
		Description("CPU shares limit; must be >= cpu.request").
		DependsOnForValidation("cpu.request").
		ValidationRule(propconfig.CustomWithContext(func(limit int, ctx *propconfig.PropertyContext) bool {
			request, ok := propconfig.Typed[int](ctx, "cpu.request")
			if !ok {
				return true
			}
			return limit >= request
		}, "cpu.limit must be greater than or equal to cpu.request")).
		Category(propconfig.CategoryPerformance).
		Build()

	authPassword := propconfig.NewPropertyDefinition[string]("auth.password", "String").
		Description("Static password credential").
		Category(propconfig.CategorySecurity).
		Build()

	authAPIKey := propconfig.NewPropertyDefinition[string]("auth.api_key", "String").
		Description("API key credential").
		Category(propconfig.CategorySecurity).
		Build()

	for _, d := range []*propconfig.Definition{serverPort, appName, cpuRequest, cpuLimit, authPassword, authAPIKey} {
		if err := b.Register(d); err != nil {
			return nil, err
		}
	}

	b.RegisterGroup(propconfig.NewPropertyGroup(
		"auth-credential",
		[]string{"auth.password", "auth.api_key"},
		propconfig.MutuallyExclusive("auth.password", "auth.api_key"),
	))

	return b.Build()
}
