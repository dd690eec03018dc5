package injector

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is. The concrete error types below carry the
// offending name or reason.
var (
	ErrUnknownDependency    = errors.New("unknown dependency")
	ErrInvalidSpecification = errors.New("invalid dependency specification")
)

// UnknownDependencyError reports a resolution request for a name with no
// registered provider.
//
//	// AngularJS: Error: [$injector:unpr] Unknown provider: userId
type UnknownDependencyError struct {
	Name string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("injector: provider for [%s] failed: no provider registered", e.Name)
}

func (e *UnknownDependencyError) Is(target error) bool {
	return target == ErrUnknownDependency
}

// InvalidSpecificationError reports a dependency specification that is
// neither an explicit []any{"name", ..., fn} annotation nor a bare
// function with readable parameter names.
type InvalidSpecificationError struct {
	Reason string
}

func (e *InvalidSpecificationError) Error() string {
	return "injector: invalid dependency specification: " + e.Reason
}

func (e *InvalidSpecificationError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

func invalidSpec(format string, args ...any) *InvalidSpecificationError {
	return &InvalidSpecificationError{Reason: fmt.Sprintf(format, args...)}
}
