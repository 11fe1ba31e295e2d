package tuplegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestGenerateDefault(t *testing.T) {
	files, err := Generate(DefaultConfig())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(files, 3))

	tupleDecls := declNames(t, files[0])
	qt.Assert(t, qt.Equals(files[0].Path, "tuple/tuple_gen.go"))
	qt.Assert(t, qt.IsTrue(tupleDecls["T12"]))
	qt.Assert(t, qt.IsTrue(tupleDecls["FromList12"]))
	qt.Assert(t, qt.IsTrue(tupleDecls["Cons11"]))
	qt.Assert(t, qt.IsFalse(tupleDecls["T13"]))
	qt.Assert(t, qt.IsFalse(tupleDecls["Cons12"]))
	// T0 is written by hand.
	qt.Assert(t, qt.IsFalse(tupleDecls["T0"]))

	hlistDecls := declNames(t, files[1])
	qt.Assert(t, qt.Equals(files[1].Path, "hlist/hlist_gen.go"))
	qt.Assert(t, qt.IsTrue(hlistDecls["List12"]))
	qt.Assert(t, qt.IsTrue(hlistDecls["Mk1"]))
	qt.Assert(t, qt.IsFalse(hlistDecls["Mk0"]))

	funcDecls := declNames(t, files[2])
	qt.Assert(t, qt.Equals(files[2].Path, "tuple/tuplefunc/tuplefunc_gen.go"))
	for _, name := range []string{"ToA_0_1", "FromA_0_1", "ToR_1_0", "FromR_1_0", "ToA_12_1", "FromR_1_12"} {
		qt.Assert(t, qt.IsTrue(funcDecls[name]), qt.Commentf("%s", name))
	}

	for _, f := range files {
		qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(f.Content), "// Code generated by tuplegen; DO NOT EDIT.\n")))
	}
}

func TestGenerateSmallArity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArity = 3
	files, err := Generate(cfg)
	qt.Assert(t, qt.IsNil(err))

	tupleDecls := declNames(t, files[0])
	qt.Assert(t, qt.IsTrue(tupleDecls["T3"]))
	qt.Assert(t, qt.IsTrue(tupleDecls["Cons2"]))
	qt.Assert(t, qt.IsFalse(tupleDecls["T4"]))
	qt.Assert(t, qt.IsFalse(tupleDecls["Cons3"]))
}

func TestGenerateModule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Module = "example.com/mytuples"
	files, err := Generate(cfg)
	qt.Assert(t, qt.IsNil(err))

	f := parseFile(t, files[0])
	qt.Assert(t, qt.HasLen(f.Imports, 1))
	qt.Assert(t, qt.Equals(f.Imports[0].Path.Value, `"example.com/mytuples/hlist"`))

	f = parseFile(t, files[2])
	qt.Assert(t, qt.Equals(f.Imports[0].Path.Value, `"example.com/mytuples/tuple"`))
}

// tupleLiteral matches composite literals of tuple types
// from the tuple package.
var tupleLiteral = regexp.MustCompile(`tuple\.T[0-9]+(\[[^\]]*\])?\{`)

func TestGenerateTuplefuncBodies(t *testing.T) {
	files, err := Generate(DefaultConfig())
	qt.Assert(t, qt.IsNil(err))
	src := string(files[2].Content)

	// Tuples from another package are built with MkTN.
	qt.Assert(t, qt.IsFalse(tupleLiteral.MatchString(src)))
	qt.Assert(t, qt.StringContains(src, "return f(tuple.MkT3(a0, a1, a2))"))
	qt.Assert(t, qt.StringContains(src, "return tuple.MkT2(r0, r1)"))
	qt.Assert(t, qt.StringContains(src, "return tuple.MkT0()"))

	qt.Assert(t, qt.StringContains(src, "// ToA_1_1 converts a function with 1 argument\n"))
	qt.Assert(t, qt.StringContains(src, "// ToR_1_1 converts a function with 1 result\n"))
	qt.Assert(t, qt.StringContains(src, "// ToA_2_1 converts a function with 2 arguments\n"))
	qt.Assert(t, qt.StringContains(src, "// ToR_1_0 converts a function with 0 results\n"))
}

func TestGenerateRefsPtrsFunctions(t *testing.T) {
	files, err := Generate(DefaultConfig())
	qt.Assert(t, qt.IsNil(err))
	decls := declNames(t, files[0])
	qt.Assert(t, qt.IsTrue(decls["Refs1"]))
	qt.Assert(t, qt.IsTrue(decls["Ptrs12"]))
	qt.Assert(t, qt.IsFalse(decls["T3.Refs"]))
	qt.Assert(t, qt.IsFalse(decls["T3.Ptrs"]))
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArity = 0
	_, err := Generate(cfg)
	qt.Assert(t, qt.ErrorMatches(err, `max arity 0 out of range \[1, 64\]`))
}

// TestGeneratedFilesUpToDate checks that the checked-in generated
// files are identical to freshly generated ones.
// Run go generate ./tuple if it fails.
func TestGeneratedFilesUpToDate(t *testing.T) {
	files, err := Generate(DefaultConfig())
	qt.Assert(t, qt.IsNil(err))
	for _, f := range files {
		t.Run(f.Path, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(f.Path)))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(data), string(f.Content)))
		})
	}
}

// TestGeneratedCodeTypeChecks type-checks the generated files
// together with the hand-written files of each package.
func TestGeneratedCodeTypeChecks(t *testing.T) {
	for _, maxArity := range []int{1, 3, DefaultMaxArity} {
		t.Run(fmt.Sprint(maxArity), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MaxArity = maxArity
			files, err := Generate(cfg)
			qt.Assert(t, qt.IsNil(err))
			generated := make(map[string]File)
			for _, f := range files {
				generated[path.Dir(f.Path)] = f
			}

			fset := token.NewFileSet()
			imp := &localImporter{
				pkgs:     make(map[string]*types.Package),
				fallback: importer.ForCompiler(fset, "source", nil),
			}
			// Packages are listed in dependency order.
			for _, dir := range []string{"hlist", "tuple", "tuple/tuplefunc"} {
				var syntax []*ast.File
				for _, name := range handWrittenFiles(t, dir) {
					f, err := parser.ParseFile(fset, name, nil, 0)
					qt.Assert(t, qt.IsNil(err))
					syntax = append(syntax, f)
				}
				gf, ok := generated[dir]
				qt.Assert(t, qt.IsTrue(ok), qt.Commentf("no generated file for %s", dir))
				f, err := parser.ParseFile(fset, gf.Path, gf.Content, 0)
				qt.Assert(t, qt.IsNil(err))
				syntax = append(syntax, f)

				conf := types.Config{
					Importer:  imp,
					GoVersion: "go1.24",
				}
				pkg, err := conf.Check(cfg.Module+"/"+dir, fset, syntax, nil)
				qt.Assert(t, qt.IsNil(err), qt.Commentf("package %s", dir))
				imp.pkgs[pkg.Path()] = pkg
			}
		})
	}
}

// localImporter resolves the packages checked so far
// and defers everything else to fallback.
type localImporter struct {
	pkgs     map[string]*types.Package
	fallback types.Importer
}

func (imp *localImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := imp.pkgs[path]; ok {
		return pkg, nil
	}
	return imp.fallback.Import(path)
}

// handWrittenFiles returns the non-test, non-generated Go files
// in the given module directory.
func handWrittenFiles(t *testing.T, dir string) []string {
	t.Helper()
	names, err := filepath.Glob(filepath.Join("..", "..", filepath.FromSlash(dir), "*.go"))
	qt.Assert(t, qt.IsNil(err))
	var files []string
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, "_gen.go") {
			continue
		}
		files = append(files, name)
	}
	return files
}

func TestNewArity(t *testing.T) {
	a := newArity(3)
	qt.Assert(t, qt.Equals(a.Decl, "[A0, A1, A2 any]"))
	qt.Assert(t, qt.Equals(a.Inst, "[A0, A1, A2]"))
	qt.Assert(t, qt.Equals(a.Params, "a0 A0, a1 A1, a2 A2"))
	qt.Assert(t, qt.Equals(a.ListSels, "l.Head, l.Tail.Head, l.Tail.Tail.Head"))
	qt.Assert(t, qt.Equals(a.TailType, "T2[A1, A2]"))
	qt.Assert(t, qt.Equals(a.ConsDecl, "[H, A0, A1 any]"))
	qt.Assert(t, qt.Equals(a.ConsTail, "T2[A0, A1]"))
	qt.Assert(t, qt.Equals(a.ConsResult, "T3[H, A0, A1]"))
	qt.Assert(t, qt.Equals(a.ConsVals, "h, t.A0, t.A1"))
	qt.Assert(t, qt.Equals(a.ListTail, "List2[A1, A2]"))
	qt.Assert(t, qt.Equals(a.ListTailMk, "Mk2(a1, a2)"))
	qt.Assert(t, qt.Equals(a.RDecl, "[A, R0, R1, R2 any]"))
	qt.Assert(t, qt.Equals(a.Results, "(R0, R1, R2)"))

	a = newArity(1)
	qt.Assert(t, qt.Equals(a.TailType, "T0"))
	qt.Assert(t, qt.Equals(a.TailVals, ""))
	qt.Assert(t, qt.Equals(a.TResults, "A0"))
	qt.Assert(t, qt.Equals(a.ListTail, "List0"))
	qt.Assert(t, qt.Equals(a.ListTailMk, "Mk0()"))

	a = newArity(0)
	qt.Assert(t, qt.Equals(a.Decl, ""))
	qt.Assert(t, qt.Equals(a.ADecl, "[R any]"))
	qt.Assert(t, qt.Equals(a.RDecl, "[A any]"))
	qt.Assert(t, qt.Equals(a.Results, ""))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	err := WriteFiles(dir, []File{{
		Path:    "a/b/c.go",
		Content: []byte("package b\n"),
	}, {
		Path:    "d.go",
		Content: []byte("package d\n"),
	}})
	qt.Assert(t, qt.IsNil(err))

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.go"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), "package b\n"))
	data, err = os.ReadFile(filepath.Join(dir, "d.go"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), "package d\n"))
}

func TestWriteUnformatted(t *testing.T) {
	dir := t.TempDir()
	ferr := &FormatError{
		Path:   "tuple/tuple_gen.go",
		Source: []byte("package tuple\nfunc {\n"),
		Err:    errors.New("syntax error"),
	}
	qt.Assert(t, qt.ErrorIs(ferr, ferr.Err))
	qt.Assert(t, qt.ErrorMatches(ferr, `formatting tuple/tuple_gen.go: syntax error`))

	p, err := WriteUnformatted(dir, ferr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p, filepath.Join(dir, "tuple", "tuple_gen.unformatted.go")))
	data, err := os.ReadFile(p)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), "package tuple\nfunc {\n"))
}

func parseFile(t *testing.T, f File) *ast.File {
	t.Helper()
	af, err := parser.ParseFile(token.NewFileSet(), f.Path, f.Content, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	return af
}

// declList returns the names of the top level declarations in f,
// in order. Methods are named Type.Method.
func declList(t *testing.T, f File) []string {
	var names []string
	for _, d := range parseFile(t, f).Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				name = recvName(d.Recv.List[0].Type) + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	return names
}

func declNames(t *testing.T, f File) map[string]bool {
	m := make(map[string]bool)
	for _, name := range declList(t, f) {
		m[name] = true
	}
	return m
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.IndexListExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return "?"
}
