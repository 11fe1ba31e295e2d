package tuplegen

import "text/template"

const header = `// Code generated by tuplegen; DO NOT EDIT.
`

var tupleTemplate = template.Must(template.New("tuple").Parse(header + `
package tuple

import (
	"{{.Module}}/hlist"
)
{{range .Arities}}
// T{{.N}} is a tuple with arity {{.N}}.
type T{{.N}}{{.Decl}} struct {
{{- range .Fields}}
	{{.}} {{.}}
{{- end}}
}

// MkT{{.N}} returns a T{{.N}} holding the given values.
func MkT{{.N}}{{.Decl}}({{.Params}}) T{{.N}}{{.Inst}} {
	return T{{.N}}{{.Inst}}{{"{"}}{{.Args}}}
}

// T returns the values held in t.
func (t T{{.N}}{{.Inst}}) T() {{.TResults}} {
	return {{.Sels}}
}

func (T{{.N}}{{.Inst}}) Len() int {
	return {{.N}}
}

func (t T{{.N}}{{.Inst}}) Values() []any {
	return []any{{"{"}}{{.Sels}}}
}

func (t T{{.N}}{{.Inst}}) String() string {
	return format({{.Sels}})
}

// List returns the list form of t.
func (t T{{.N}}{{.Inst}}) List() hlist.List{{.N}}{{.Inst}} {
	return hlist.Mk{{.N}}({{.Sels}})
}

// FromList{{.N}} returns the tuple form of l.
func FromList{{.N}}{{.Decl}}(l hlist.List{{.N}}{{.Inst}}) T{{.N}}{{.Inst}} {
	return T{{.N}}{{.Inst}}{{"{"}}{{.ListSels}}}
}

// Uncons returns the first value in t and
// a tuple holding the rest.
func (t T{{.N}}{{.Inst}}) Uncons() (A0, {{.TailType}}) {
	return t.A0, {{.TailType}}{{"{"}}{{.TailVals}}}
}

// Head returns the first value in t.
func (t T{{.N}}{{.Inst}}) Head() A0 {
	h, _ := t.Uncons()
	return h
}

// Tail returns all but the first value in t.
func (t T{{.N}}{{.Inst}}) Tail() {{.TailType}} {
	_, tail := t.Uncons()
	return tail
}

// Refs{{.N}} returns read-only views of the values in t.
func Refs{{.N}}{{.Decl}}(t *T{{.N}}{{.Inst}}) T{{.N}}{{.RefInst}} {
	return T{{.N}}{{.RefInst}}{{"{"}}{{.RefVals}}}
}

// Ptrs{{.N}} returns pointers to the values in t.
func Ptrs{{.N}}{{.Decl}}(t *T{{.N}}{{.Inst}}) T{{.N}}{{.PtrInst}} {
	return T{{.N}}{{.PtrInst}}{{"{"}}{{.PtrVals}}}
}

// Cons{{.TailN}} returns a T{{.N}} holding h followed by the values in t.
func Cons{{.TailN}}{{.ConsDecl}}(h H, t {{.ConsTail}}) {{.ConsResult}} {
	return {{.ConsResult}}{{"{"}}{{.ConsVals}}}
}
{{end -}}
`))

var hlistTemplate = template.Must(template.New("hlist").Parse(header + `
package hlist
{{range .Arities}}
// List{{.N}} is the list form of a tuple with arity {{.N}}.
type List{{.N}}{{.Decl}} = Cons[A0, {{.ListTail}}]

// Mk{{.N}} returns a list holding the given values in order.
func Mk{{.N}}{{.Decl}}({{.Params}}) List{{.N}}{{.Inst}} {
	return List{{.N}}{{.Inst}}{a0, {{.ListTailMk}}}
}
{{end -}}
`))

var tuplefuncTemplate = template.Must(template.New("tuplefunc").Parse(header + `
package tuplefunc

import (
	"{{.Module}}/tuple"
)
{{range .Arities}}
// ToA_{{.N}}_1 converts a function with {{.N}} argument{{if ne .N 1}}s{{end}}
// to a function that takes them as a single tuple.
func ToA_{{.N}}_1{{.ADecl}}(f func({{.AParams}}) R) func(tuple.T{{.N}}{{.Inst}}) R {
	return func(a tuple.T{{.N}}{{.Inst}}) R {
		return f({{.ASels}})
	}
}

// FromA_{{.N}}_1 is the inverse of ToA_{{.N}}_1.
func FromA_{{.N}}_1{{.ADecl}}(f func(tuple.T{{.N}}{{.Inst}}) R) func({{.AParams}}) R {
	return func({{.Params}}) R {
		return f(tuple.MkT{{.N}}({{.Args}}))
	}
}

// ToR_1_{{.N}} converts a function with {{.N}} result{{if ne .N 1}}s{{end}}
// to a function that returns them as a single tuple.
func ToR_1_{{.N}}{{.RDecl}}(f func(A) {{.Results}}) func(A) tuple.T{{.N}}{{.RInst}} {
	return func(a A) tuple.T{{.N}}{{.RInst}} {
{{- if eq .N 0}}
		f(a)
		return tuple.MkT0()
{{- else}}
		{{.ResultVars}} := f(a)
		return tuple.MkT{{.N}}({{.ResultVars}})
{{- end}}
	}
}

// FromR_1_{{.N}} is the inverse of ToR_1_{{.N}}.
func FromR_1_{{.N}}{{.RDecl}}(f func(A) tuple.T{{.N}}{{.RInst}}) func(A) {{.Results}} {
	return func(a A) {{.Results}} {
{{- if eq .N 0}}
		f(a)
{{- else}}
		return f(a).T()
{{- end}}
	}
}
{{end -}}
`))
