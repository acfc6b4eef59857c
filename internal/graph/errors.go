package graph

import "fmt"

// The error taxonomy below separates lifecycle violations (StateError) from
// wiring bugs (InvalidArityError, ConfigurationError) and defensive
// unreachable cases (UnsupportedOperationError). None of these are retryable:
// all indicate the host graph drove the vertex incorrectly. Call sites wrap
// them with github.com/pkg/errors to attach vertex identity and a stack;
// match with errors.As.

// StateError indicates an operation was invoked before its required
// precondition state: forward without inputs, or backward without a
// completed forward pass.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return "invalid vertex state: " + e.Reason
}

// InvalidArityError indicates a vertex received an input count its operator
// cannot combine. The host graph wiring must be corrected; retrying is
// pointless.
type InvalidArityError struct {
	Op   Op
	Want int
	Got  int
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("%s requires exactly %d inputs, got %d", e.Op, e.Want, e.Got)
}

// UnsupportedOperationError indicates an operator value outside the closed
// enumeration. Unreachable through the exported constructors; hitting it is a
// programming defect.
type UnsupportedOperationError struct {
	Op Op
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unknown op: %s (%d)", e.Op, int(e.Op))
}

// ConfigurationError indicates a graph-construction bug, such as attaching a
// gradient-accumulation view to a parameter-free vertex.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "vertex misconfigured: " + e.Reason
}
