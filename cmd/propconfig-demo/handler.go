package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/fieldguard/propconfig/pkg/propconfig"
	"github.com/fieldguard/propconfig/pkg/response"
)

// validateRequest is the body accepted by POST /validate: a flat,
// string-keyed property map to default-apply and validate against the
// demo's fixed registry.
type validateRequest struct {
	Properties map[string]string `json:"properties"`
}

// validateResponse carries both the applied-defaults view and the
// structured validation outcome.
type validateResponse struct {
	TraceID         string            `json:"traceId"`
	Valid           bool              `json:"valid"`
	Properties      map[string]string `json:"properties"`
	AppliedDefaults map[string]string `json:"appliedDefaults"`
	Errors          []errorView       `json:"errors"`
}

type errorView struct {
	PropertyName  string `json:"propertyName"`
	Message       string `json:"message"`
	ActualValue   string `json:"actualValue,omitempty"`
	ExpectedValue string `json:"expectedValue,omitempty"`
}

// api bundles the demo's fixed collaborators, built once at startup.
type api struct {
	logger  *slog.Logger
	applier *propconfig.DefaultValueApplier
	cache   *propconfig.CachingPropertyValidator
}

func newAPI(logger *slog.Logger, registry *propconfig.PropertyRegistry, cacheMaxSize int, cacheTTL time.Duration) (*api, error) {
	applier, err := propconfig.NewDefaultValueApplier(registry)
	if err != nil {
		return nil, err
	}
	validator, err := propconfig.NewPropertyValidator(registry, nil)
	if err != nil {
		return nil, err
	}
	cache, err := propconfig.NewCachingPropertyValidator(validator, cacheMaxSize, cacheTTL)
	if err != nil {
		return nil, err
	}
	return &api{logger: logger, applier: applier, cache: cache}, nil
}

func (a *api) handleValidate(w http.ResponseWriter, r *http.Request) {
	traceID := propconfig.NewTraceID()
	logger := a.logger.With("trace_id", traceID)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, response.ErrInvalidRequest(err))
		return
	}
	if req.Properties == nil {
		req.Properties = map[string]string{}
	}

	applied, err := a.applier.ApplyDefaults(req.Properties)
	if err != nil {
		render.Render(w, r, response.ErrInternal(err))
		return
	}

	if diff, err := propconfig.DefaultDiff(req.Properties, applied.PropertiesWithDefaults); err == nil {
		logger.Debug("defaults applied", "patch", diff)
	}

	result, err := a.cache.Validate(applied.PropertiesWithDefaults)
	if err != nil {
		render.Render(w, r, response.ErrInternal(err))
		return
	}

	errs := result.Errors()
	views := make([]errorView, len(errs))
	for i, e := range errs {
		views[i] = errorView{
			PropertyName:  e.PropertyName,
			Message:       e.Message,
			ActualValue:   e.ActualValue,
			ExpectedValue: e.ExpectedValue,
		}
	}

	render.JSON(w, r, validateResponse{
		TraceID:         traceID,
		Valid:           result.Valid(),
		Properties:      applied.PropertiesWithDefaults,
		AppliedDefaults: applied.AppliedDefaults,
		Errors:          views,
	})
}
