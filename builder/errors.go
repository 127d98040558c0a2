package builder

import (
	"errors"
	"strconv"
)

var (
	// ErrNoBuilder is the configuration error returned when a Director has no
	// active builder, or is handed a nil one.
	ErrNoBuilder = errors.New("builder: no active builder configured")

	// ErrUnknownVariant is returned when a Registry has no builder under a name.
	// Lookup returns the more specific UnknownVariantError, which matches it via errors.Is.
	ErrUnknownVariant = errors.New("builder: unknown variant")
)

// ConfigError reports a Director operation attempted without a usable builder.
//
// It unwraps to ErrNoBuilder.
type ConfigError struct {
	// Op is the Director operation that failed ("new director", "set builder", "construct").
	Op string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	// Example: builder: construct: no active builder configured
	return "builder: " + e.Op + ": no active builder configured"
}

// Unwrap returns ErrNoBuilder.
func (e *ConfigError) Unwrap() error { return ErrNoBuilder }

// UnknownVariantError carries the name that was not found in a Registry.
type UnknownVariantError struct{ Name string }

// Error implements the error interface.
func (e *UnknownVariantError) Error() string {
	// Example: builder: unknown variant "sport"
	return "builder: unknown variant " + strconv.Quote(e.Name)
}

// Is makes errors.Is(err, ErrUnknownVariant) hold.
func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }
