package builder

// Car is the product assembled by a Director.
//
// The zero value is a valid, empty car. Setters overwrite unconditionally;
// nothing enforces that every part has been set before rendering.
type Car struct {
	seat   string
	engine string
	wheel  string
}

// SetSeat overwrites the seat part.
func (c *Car) SetSeat(part string) { c.seat = part }

// SetEngine overwrites the engine part.
func (c *Car) SetEngine(part string) { c.engine = part }

// SetWheel overwrites the wheel part.
func (c *Car) SetWheel(part string) { c.wheel = part }

func (c *Car) Seat() string {
	if c == nil {
		return ""
	}
	return c.seat
}

func (c *Car) Engine() string {
	if c == nil {
		return ""
	}
	return c.engine
}

func (c *Car) Wheel() string {
	if c == nil {
		return ""
	}
	return c.wheel
}

// Complete reports whether every part has a non-empty value.
func (c *Car) Complete() bool {
	return c.Seat() != "" && c.Engine() != "" && c.Wheel() != ""
}

// String renders the car as " Seat : <seat> , Engine : <engine> and Wheel : <wheel>".
//
// Unset parts render as empty segments. A nil *Car renders like a zero Car.
func (c *Car) String() string {
	// Example:  Seat : Basic Seat , Engine : Basic Engine and Wheel : Basic Wheel
	return " Seat : " + c.Seat() + " , Engine : " + c.Engine() + " and Wheel : " + c.Wheel()
}
