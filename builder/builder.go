package builder

// Builder declares the steps needed to populate a Car.
//
// Each step writes exactly one part of the passed car and returns nothing.
// Implementations must not keep a reference to the car after the call returns.
type Builder interface {
	BuildSeat(car *Car)
	BuildEngine(car *Car)
	BuildWheel(car *Car)
}

// Luxury builds cars from luxury parts.
type Luxury struct{}

func (Luxury) BuildSeat(car *Car)   { car.SetSeat("Luxury Seat") }
func (Luxury) BuildEngine(car *Car) { car.SetEngine("Luxury Engine") }
func (Luxury) BuildWheel(car *Car)  { car.SetWheel("Luxury Wheel") }

// Basic builds cars from basic parts.
type Basic struct{}

func (Basic) BuildSeat(car *Car)   { car.SetSeat("Basic Seat") }
func (Basic) BuildEngine(car *Car) { car.SetEngine("Basic Engine") }
func (Basic) BuildWheel(car *Car)  { car.SetWheel("Basic Wheel") }

// Variant is a data-driven builder for arbitrary named variants.
//
// It lets callers add a variant without declaring a new type:
//
//	sport := builder.NewVariant("Sport") // Sport Seat / Sport Engine / Sport Wheel
//
// Variant is a plain value; copies are independent.
type Variant struct {
	Name   string
	Seat   string
	Engine string
	Wheel  string
}

// NewVariant returns a Variant whose labels are "<name> Seat", "<name> Engine"
// and "<name> Wheel".
func NewVariant(name string) Variant {
	return Variant{
		Name:   name,
		Seat:   name + " Seat",
		Engine: name + " Engine",
		Wheel:  name + " Wheel",
	}
}

func (v Variant) BuildSeat(car *Car)   { car.SetSeat(v.Seat) }
func (v Variant) BuildEngine(car *Car) { car.SetEngine(v.Engine) }
func (v Variant) BuildWheel(car *Car)  { car.SetWheel(v.Wheel) }

var (
	_ Builder = Luxury{}
	_ Builder = Basic{}
	_ Builder = Variant{}
)
