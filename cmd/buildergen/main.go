// cmd/buildergen/main.go
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sghaida/carbuilder/internal/logger"
)

// cli holds the generator flags.
type cli struct {
	Spec    string `help:"Path to the variants spec (YAML or JSON)." env:"BUILDERGEN_SPEC" type:"path"`
	Out     string `help:"Output .gen.go file path." env:"BUILDERGEN_OUT" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
//
// Exit codes: 0 success, 1 spec or IO failure, 2 usage error.
func run(args []string, stderr io.Writer) int {
	var flags cli
	parser, err := kong.New(&flags,
		kong.Name("buildergen"),
		kong.Description("Generate concrete car builders from a variants spec."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		_, _ = io.WriteString(stderr, "buildergen: "+err.Error()+"\n")
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		_, _ = io.WriteString(stderr, "buildergen: "+err.Error()+"\n")
		return 2
	}

	if strings.TrimSpace(flags.Spec) == "" || strings.TrimSpace(flags.Out) == "" {
		_, _ = io.WriteString(stderr, "usage: buildergen --spec <variants.yaml> --out <file.gen.go>\n")
		return 2
	}

	level := logger.InfoLevel
	if flags.Verbose {
		level = logger.DebugLevel
	}
	log := logger.NewLogger(&logger.Config{Level: level, Output: stderr})

	spec, err := loadSpec(flags.Spec)
	if err != nil {
		log.Error("invalid spec", "path", flags.Spec, "err", err)
		return 1
	}
	log.Debug("spec loaded", "package", spec.Package, "variants", len(spec.Variants))

	src, err := render(spec)
	if err != nil {
		log.Error("render failed", "err", err)
		return 1
	}

	outPath := filepath.Clean(flags.Out)
	if err := writeFileAtomic(outPath, src, 0o644); err != nil {
		log.Error("write failed", "path", outPath, "err", err)
		return 1
	}
	log.Debug("generated", "path", outPath)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
