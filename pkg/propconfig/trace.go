package propconfig

import "github.com/google/uuid"

// MetadataTraceID is the PropertyContext metadata key a correlation id is
// stored under.
const MetadataTraceID = "trace_id"

// NewTraceID returns a new UUIDv7 correlation id, for tagging a
// PropertyContext (see WithTraceID) or correlating log lines. The
// formatters do not include it in their output.
func NewTraceID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// WithTraceID returns a copy of ctx carrying a fresh correlation id under
// MetadataTraceID.
func WithTraceID(ctx *PropertyContext) *PropertyContext {
	return ctx.WithMetadata(MetadataTraceID, NewTraceID())
}
