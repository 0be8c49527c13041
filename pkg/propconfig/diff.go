package propconfig

import (
	"encoding/json"

	"github.com/wI2L/jsondiff"
)

// DefaultDiff computes an RFC 6902 JSON patch describing what
// DefaultValueApplier.ApplyDefaults changed: the operations needed to turn
// the caller-supplied map into the default-applied map. This is purely
// diagnostic — no component in the core consumes it — useful for logging
// "what defaulting changed" alongside applied_defaults.
func DefaultDiff(before, after map[string]string) (jsondiff.Patch, error) {
	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	patch, err := jsondiff.CompareJSON(beforeJSON, afterJSON, jsondiff.Invertible())
	if err != nil {
		return nil, err
	}
	return patch, nil
}
