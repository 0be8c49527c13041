// Package propconfig defines, validates, and materializes typed application
// configuration from a string-keyed property map. Callers declare a schema
// of PropertyDefinitions (target type, optional default, optional validation
// rule, optional cross-property dependencies) and hand the registry a raw
// map; the Validator produces either a defaulted, validated map or a
// structured report of every defect it found.
//
// The package performs no disk or environment I/O, owns no process-wide
// state beyond a lazily-initialized default type-conversion registry, and
// never mutates caller-supplied maps.
package propconfig
