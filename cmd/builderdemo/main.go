// cmd/builderdemo/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sghaida/carbuilder/builder"
	"github.com/sghaida/carbuilder/internal/logger"
)

// run executes the demonstration and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(stdout, stderr io.Writer) int {
	log := logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Output: stderr})

	// -------------------------------------------------------------------------
	// Step 1: Luxury builder injected into a new Director
	// -------------------------------------------------------------------------
	director, err := builder.NewDirector(builder.Luxury{}, builder.WithLogger(log))
	if err != nil {
		log.Error("director setup failed", "err", err)
		return 1
	}

	carLuxury, err := director.Construct()
	if err != nil {
		log.Error("construct failed", "builder", "luxury", "err", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, "Product car1", carLuxury)

	// -------------------------------------------------------------------------
	// Step 2: swap to Basic on the same Director and build again
	// -------------------------------------------------------------------------
	if err := director.SetBuilder(builder.Basic{}); err != nil {
		log.Error("builder swap failed", "err", err)
		return 1
	}

	carBasic, err := director.Construct()
	if err != nil {
		log.Error("construct failed", "builder", "basic", "err", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, "Product car2", carBasic)

	return 0
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}
