// Command builderdemo walks through the Builder pattern once.
//
// It builds a car with the Luxury builder, swaps the same Director over to the
// Basic builder, builds a second car, and prints both:
//
//	Product car1  Seat : Luxury Seat , Engine : Luxury Engine and Wheel : Luxury Wheel
//	Product car2  Seat : Basic Seat , Engine : Basic Engine and Wheel : Basic Wheel
//
// No flags, arguments or environment variables are read.
//
// Running:
//
//	go run ./cmd/builderdemo
package main
