package tuplegen

import (
	"fmt"
	"strings"
)

// arity holds the pieces of source text needed to generate
// the code for tuples with N elements. Type parameters
// are named A0, A1, ...; the corresponding value parameters
// are named a0, a1, ....
type arity struct {
	N int

	// Decl holds the type parameter declaration, "[A0, A1 any]".
	Decl string
	// Inst holds the type arguments, "[A0, A1]".
	Inst string
	// Fields holds the field names, which are also the type parameter names.
	Fields []string
	// Params holds the value parameters, "a0 A0, a1 A1".
	Params string
	// Args holds the value arguments, "a0, a1".
	Args string
	// TResults holds the result list of the T method, "(A0, A1)".
	TResults string
	// Sels holds the field selectors on t, "t.A0, t.A1".
	Sels string
	// ListSels holds the head selectors on a list l, "l.Head, l.Tail.Head".
	ListSels string

	RefInst string
	RefVals string
	PtrInst string
	PtrVals string

	// TailN, TailType and TailVals describe the tuple left by Uncons.
	TailN    int
	TailType string
	TailVals string

	// ConsDecl, ConsTail, ConsResult and ConsVals describe ConsN-1,
	// which prepends a value to a tuple with N-1 elements.
	ConsDecl   string
	ConsTail   string
	ConsResult string
	ConsVals   string

	// ListTail and ListTailMk hold the type and constructor
	// call for the tail of the list form.
	ListTail   string
	ListTailMk string

	// The remaining fields are used by the tuplefunc package.
	ADecl      string
	AParams    string
	ASels      string
	RDecl      string
	RInst      string
	Results    string
	ResultVars string
}

func newArity(n int) arity {
	a := arity{
		N:      n,
		Fields: names("A", 0, n),
	}
	a.Decl = decl(a.Fields)
	a.Inst = inst(a.Fields)
	a.Args = join(names("a", 0, n))
	params := make([]string, n)
	sels := make([]string, n)
	listSels := make([]string, n)
	refs := make([]string, n)
	refVals := make([]string, n)
	ptrs := make([]string, n)
	ptrVals := make([]string, n)
	aSels := make([]string, n)
	path := "l"
	for i, f := range a.Fields {
		params[i] = fmt.Sprintf("a%d %s", i, f)
		sels[i] = "t." + f
		aSels[i] = "a." + f
		listSels[i] = path + ".Head"
		path += ".Tail"
		refs[i] = "Ref[" + f + "]"
		refVals[i] = "Ref[" + f + "]{&t." + f + "}"
		ptrs[i] = "*" + f
		ptrVals[i] = "&t." + f
	}
	a.Params = join(params)
	a.Sels = join(sels)
	a.ListSels = join(listSels)
	a.TResults = results(a.Fields)
	a.RefInst = inst(refs)
	a.RefVals = join(refVals)
	a.PtrInst = inst(ptrs)
	a.PtrVals = join(ptrVals)

	a.ADecl = decl(append(names("A", 0, n), "R"))
	a.AParams = join(a.Fields)
	a.ASels = join(aSels)
	rs := names("R", 0, n)
	a.RDecl = decl(append([]string{"A"}, rs...))
	a.RInst = inst(rs)
	a.Results = results(rs)
	a.ResultVars = join(names("r", 0, n))

	if n == 0 {
		return a
	}
	tail := a.Fields[1:]
	a.TailN = n - 1
	a.TailType = fmt.Sprintf("T%d%s", n-1, inst(tail))
	a.TailVals = join(sels[1:])

	consTail := names("A", 0, n-1)
	consSels := make([]string, 0, n)
	consSels = append(consSels, "h")
	for _, f := range consTail {
		consSels = append(consSels, "t."+f)
	}
	a.ConsDecl = decl(append([]string{"H"}, consTail...))
	a.ConsTail = fmt.Sprintf("T%d%s", n-1, inst(consTail))
	a.ConsResult = fmt.Sprintf("T%d%s", n, inst(append([]string{"H"}, consTail...)))
	a.ConsVals = join(consSels)

	a.ListTail = fmt.Sprintf("List%d%s", n-1, inst(tail))
	a.ListTailMk = fmt.Sprintf("Mk%d(%s)", n-1, join(names("a", 1, n)))
	return a
}

// names returns prefix+i for i in [from, to).
func names(prefix string, from, to int) []string {
	ns := make([]string, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		ns = append(ns, fmt.Sprintf("%s%d", prefix, i))
	}
	return ns
}

func join(ss []string) string {
	return strings.Join(ss, ", ")
}

func decl(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + join(params) + " any]"
}

func inst(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return "[" + join(args) + "]"
}

func results(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	if len(types) == 0 {
		return ""
	}
	return "(" + join(types) + ")"
}
