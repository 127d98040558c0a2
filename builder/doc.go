// Package builder implements the Builder creational pattern around a Car.
//
// The pieces are deliberately small:
//
//   - Car is the product: three string parts (seat, engine, wheel) filled in step by step.
//   - Builder declares the steps: BuildSeat, BuildEngine, BuildWheel.
//   - Luxury, Basic and Variant are concrete builders writing fixed labels.
//   - Director owns the construction order and hands back a finished Car.
//   - Registry maps variant names ("luxury", "basic", ...) to builders.
//
// A Director is always configured with exactly one active builder. Swapping it
// with SetBuilder only affects later Construct calls; cars already returned are
// never touched again.
//
// Quick start
//
//	d, err := builder.NewDirector(builder.Luxury{})
//	if err != nil {
//		// nil builder: configuration error
//	}
//	car, _ := d.Construct()
//	fmt.Println(car) //  Seat : Luxury Seat , Engine : Luxury Engine and Wheel : Luxury Wheel
//
// Import
//
//	"github.com/sghaida/carbuilder/builder"
package builder
