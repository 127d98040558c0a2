package builder

import (
	"fmt"
	"sync"

	"github.com/sghaida/carbuilder/internal/logger"
)

// Director sequences builder steps and returns finished cars.
//
// A Director holds exactly one active builder. The zero value is an
// unconfigured Director: Construct fails with a *ConfigError until SetBuilder
// is called with a non-nil builder.
//
// Director is safe for concurrent use; a single mutex guards the active
// builder across SetBuilder and Construct.
type Director struct {
	mu      sync.Mutex
	builder Builder
	log     logger.Logger
}

// Option configures a Director at construction time.
type Option func(*Director)

// WithLogger makes the Director emit debug records for swaps and constructions.
// A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDirector returns a Director with b as its active builder.
//
// A nil b is a configuration error and no Director is returned.
func NewDirector(b Builder, opts ...Option) (*Director, error) {
	if b == nil {
		return nil, &ConfigError{Op: "new director"}
	}
	d := &Director{builder: b, log: logger.NewNopLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// SetBuilder replaces the active builder. It takes effect on the next
// Construct call and never touches cars already returned.
//
// A nil b is rejected and the previous builder stays active.
func (d *Director) SetBuilder(b Builder) error {
	if b == nil {
		return &ConfigError{Op: "set builder"}
	}

	d.mu.Lock()
	prev := d.builder
	d.builder = b
	d.mu.Unlock()

	d.logger().Debug("builder swapped", "from", builderName(prev), "to", builderName(b))
	return nil
}

// Builder returns the active builder, or nil for an unconfigured Director.
func (d *Director) Builder() Builder {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.builder
}

// Construct creates a new Car and runs BuildSeat, BuildEngine and BuildWheel
// on the active builder, in that order.
//
// The returned car is owned by the caller; the Director keeps no reference to it.
func (d *Director) Construct() (*Car, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.builder == nil {
		return nil, &ConfigError{Op: "construct"}
	}

	car := &Car{}
	d.builder.BuildSeat(car)
	d.builder.BuildEngine(car)
	d.builder.BuildWheel(car)

	d.logger().Debug("car constructed", "builder", builderName(d.builder), "complete", car.Complete())
	return car, nil
}

func (d *Director) logger() logger.Logger {
	if d.log == nil {
		return logger.NewNopLogger()
	}
	return d.log
}

// builderName is the name used in log records: Variant names win over type names.
func builderName(b Builder) string {
	switch v := b.(type) {
	case nil:
		return "<none>"
	case Variant:
		return v.Name
	case *Variant:
		if v != nil {
			return v.Name
		}
	}
	return fmt.Sprintf("%T", b)
}
