// Package carbuilder is a small, explicit walk through the Builder creational pattern.
//
// A Director asks a Builder to fill in the parts of a Car in a fixed order and
// hands the finished Car back. Builders are interchangeable: the same Director
// can be switched from a Luxury builder to a Basic one between constructions.
//
// Layout:
//   - builder: Car, Builder, Luxury/Basic/Variant, Director, Registry
//   - cmd/builderdemo: the two-car demonstration (Luxury, then Basic)
//   - cmd/buildergen: code generator for new builder variants
//   - examples/custom: generated variants wired through a Registry
//
// The goal is to keep the pattern visible: no reflection, no container, and
// construction failures surface as explicit configuration errors.
package carbuilder
