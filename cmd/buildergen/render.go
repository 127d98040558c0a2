package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// render executes the template and gofmts the result.
func render(spec *Spec) ([]byte, error) {
	var out bytes.Buffer
	if err := genTemplate.Execute(&out, spec); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// genTemplate is the Go source template for generated variants.
var genTemplate = template.Must(
	template.New("buildergen").Parse(`// Code generated by buildergen; DO NOT EDIT.

package {{.Package}}

import (
	builder "{{.BuilderImport}}"
)
{{range .Variants}}
// {{.Name}} builds cars from {{.Name}} parts.
type {{.Name}} struct{}

func ({{.Name}}) BuildSeat(car *builder.Car) { car.SetSeat({{printf "%q" .Seat}}) }
func ({{.Name}}) BuildEngine(car *builder.Car) { car.SetEngine({{printf "%q" .Engine}}) }
func ({{.Name}}) BuildWheel(car *builder.Car) { car.SetWheel({{printf "%q" .Wheel}}) }
{{end}}
var (
{{- range .Variants}}
	_ builder.Builder = {{.Name}}{}
{{- end}}
)

// RegisterVariants adds the generated variants to reg under their lower-cased names.
func RegisterVariants(reg *builder.Registry) *builder.Registry {
	return reg{{range .Variants}}.
		Provide({{printf "%q" .Key}}, {{.Name}}{}){{end}}
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temporary file in the target directory and
// renames it over targetPath, so readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
