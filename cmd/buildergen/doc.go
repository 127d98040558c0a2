// Command buildergen generates concrete car builders from a small YAML spec.
//
// Adding a builder variant by hand means writing one empty struct plus the
// three Builder methods with fixed labels. buildergen writes that boilerplate
// for you, together with a registration helper:
//
//   - You write a *.variants.yaml (or JSON) spec next to your package.
//   - You add a //go:generate directive in one Go file of that package.
//   - buildergen emits one stateless type per variant and RegisterVariants.
//
// Spec format
//
// Minimal example:
//
//	package: custom
//	variants:
//	  - name: Sport
//	  - name: Offroad
//	    seat: Bucket Seat
//
// Fields:
//
//   - package (required): Go package name of the generated file.
//   - builderImport (optional): import path of the builder package,
//     defaults to github.com/sghaida/carbuilder/builder.
//   - variants (required, at least 1): name must be an exported Go identifier;
//     seat/engine/wheel default to "<name> Seat", "<name> Engine", "<name> Wheel".
//
// Typical go:generate usage
//
//	//go:generate go run ../../cmd/buildergen --spec ./variants.yaml --out ./variants.gen.go
//
// Flags may also come from BUILDERGEN_SPEC and BUILDERGEN_OUT.
//
// Generated API (summary)
//
//   - type <Name> struct{} with BuildSeat/BuildEngine/BuildWheel
//   - RegisterVariants(reg *builder.Registry) *builder.Registry
//
// Example wiring
//
//	reg := custom.RegisterVariants(builder.DefaultRegistry())
//	d, _ := builder.NewDirector(reg.MustLookup("sport"))
//	car, _ := d.Construct()
package main
