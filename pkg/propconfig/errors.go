package propconfig

import "fmt"

// Error message templates shared by the Validator. Keeping them as named
// constants lets callers match on exact text in tests without restating
// the strings.
const (
	MsgRequiredMissing  = "Required property is missing"
	ExpectedNonNull     = "Non-null value"
	MsgTypeConversion   = "Type conversion failed"
	MsgUnknownProperty  = "Unknown property"
	ExpectedNotDefined  = "Property is not defined in the registry"
)

// ArgumentError signals caller misuse (a nil map, a nil registry) at a
// public entry point. It is distinct from ValidationError: it is never
// collected, only ever returned immediately.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return "propconfig: " + e.Message
}

// CycleError is returned by RegistryBuilder.Build when the in-registry
// depends_on graph contains a cycle. Participants lists one offending
// cycle, in traversal order.
type CycleError struct {
	Participants []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("propconfig: dependency cycle detected among properties: %v", e.Participants)
}

// DuplicateNameError is returned by RegistryBuilder.Register when a
// definition's name is already registered.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("propconfig: duplicate property name %q", e.Name)
}

// MissingGroupMemberError is returned by RegistryBuilder.Build when a
// PropertyGroup references a property name that was never registered.
type MissingGroupMemberError struct {
	Group    string
	Property string
}

func (e *MissingGroupMemberError) Error() string {
	return fmt.Sprintf("propconfig: group %q references unregistered property %q", e.Group, e.Property)
}
