// Package tuplegen generates the per-arity code of the tuple, hlist
// and tuple/tuplefunc packages.
//
// Go has no way to abstract over the number of type parameters,
// so each tuple arity gets its own type and functions, produced
// from the templates in this package up to a configurable
// maximum arity.
package tuplegen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// File holds the contents of a generated file.
type File struct {
	// Path holds the slash-separated path of the file
	// relative to the module root.
	Path    string
	Content []byte
}

// FormatError is returned by Generate when the generated
// source for a file cannot be formatted.
type FormatError struct {
	Path string
	// Source holds the unformatted source.
	Source []byte
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type output struct {
	path string
	tmpl *template.Template
	// minArity holds the smallest arity the template is executed for.
	// Smaller arities are written by hand.
	minArity int
}

var outputs = []output{{
	path:     "tuple/tuple_gen.go",
	tmpl:     tupleTemplate,
	minArity: 1,
}, {
	path:     "hlist/hlist_gen.go",
	tmpl:     hlistTemplate,
	minArity: 1,
}, {
	path:     "tuple/tuplefunc/tuplefunc_gen.go",
	tmpl:     tuplefuncTemplate,
	minArity: 0,
}}

type templateParams struct {
	Module  string
	Arities []arity
}

// Generate returns the generated files for the given configuration.
func Generate(cfg Config) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	arities := make([]arity, 0, cfg.MaxArity+1)
	for n := 0; n <= cfg.MaxArity; n++ {
		arities = append(arities, newArity(n))
	}
	files := make([]File, 0, len(outputs))
	for _, out := range outputs {
		var buf bytes.Buffer
		err := out.tmpl.Execute(&buf, templateParams{
			Module:  cfg.Module,
			Arities: arities[out.minArity:],
		})
		if err != nil {
			return nil, fmt.Errorf("executing template for %s: %w", out.path, err)
		}
		src, err := imports.Process(out.path, buf.Bytes(), &imports.Options{
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
			FormatOnly: true,
		})
		if err != nil {
			return nil, &FormatError{
				Path:   out.path,
				Source: buf.Bytes(),
				Err:    err,
			}
		}
		files = append(files, File{
			Path:    out.path,
			Content: src,
		})
	}
	return files, nil
}
