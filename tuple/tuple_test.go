package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplelist/hlist"
	"github.com/rogpeppe/tuplelist/tuple"
)

func TestToList(t *testing.T) {
	l := tuple.MkT3(42, 3.14, 'A').List()
	qt.Assert(t, qt.Equals(l, hlist.Push(42, hlist.Push(3.14, hlist.Push('A', hlist.Nil{})))))
	qt.Assert(t, qt.Equals(l.Head, 42))
	qt.Assert(t, qt.Equals(l.Tail.Head, 3.14))
	qt.Assert(t, qt.Equals(l.Tail.Tail.Head, 'A'))
	qt.Assert(t, qt.Equals(l.String(), "(42, (3.14, (65, ())))"))
}

func TestFromList(t *testing.T) {
	tu := tuple.FromList3(hlist.Mk3(1, "hello", 3.14))
	qt.Assert(t, qt.Equals(tu, tuple.MkT3(1, "hello", 3.14)))
	a, b, c := tu.T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "hello"))
	qt.Assert(t, qt.Equals(c, 3.14))
}

func TestZeroArity(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.T0{}.List(), hlist.Nil{}))
	qt.Assert(t, qt.Equals(tuple.FromList0(hlist.Nil{}), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.MkT0().Len(), 0))
	qt.Assert(t, qt.Equals(tuple.MkT0().String(), "()"))
}

func TestRoundTrip(t *testing.T) {
	t1 := tuple.MkT1("x")
	qt.Assert(t, qt.Equals(tuple.FromList1(t1.List()), t1))

	t2 := tuple.MkT2(1, false)
	qt.Assert(t, qt.Equals(tuple.FromList2(t2.List()), t2))

	t3 := tuple.MkT3(42, 3.14, 'A')
	qt.Assert(t, qt.Equals(tuple.FromList3(t3.List()), t3))

	t12 := tuple.MkT12(0, "1", 2.0, '3', int8(4), uint16(5), true, []byte("7"), 8, "9", 10, struct{}{})
	back := tuple.FromList12(t12.List())
	qt.Assert(t, qt.DeepEquals(back, t12))

	l3 := hlist.Mk3("a", 2, 3.0)
	qt.Assert(t, qt.Equals(tuple.FromList3(l3).List(), l3))

	l12 := hlist.Mk12(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, "twelve")
	qt.Assert(t, qt.Equals(tuple.FromList12(l12).List(), l12))
}

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MkT1(1).Len(), 1))
	qt.Assert(t, qt.Equals(tuple.MkT2(1, 2).Len(), 2))
	qt.Assert(t, qt.Equals(tuple.MkT3(1, 2, 3).Len(), 3))
	var t12 tuple.T12[int, int, int, int, int, int, int, int, int, int, int, int]
	qt.Assert(t, qt.Equals(t12.Len(), 12))
	qt.Assert(t, qt.Equals(t12.List().Len(), 12))
	qt.Assert(t, qt.Equals(hlist.Size[hlist.List3[int, int, int]](), tuple.MkT3(1, 2, 3).Len()))
}

func TestCons(t *testing.T) {
	tu := tuple.Cons3("world", tuple.MkT3(42, 3.14, 'A'))
	qt.Assert(t, qt.Equals(tu, tuple.MkT4("world", 42, 3.14, 'A')))

	qt.Assert(t, qt.Equals(tuple.Cons0(1, tuple.T0{}), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(tuple.Cons1("a", tuple.MkT1(2)), tuple.MkT2("a", 2)))
}

func TestUncons(t *testing.T) {
	h, tail := tuple.MkT4("world", 42, 3.14, 'A').Uncons()
	qt.Assert(t, qt.Equals(h, "world"))
	qt.Assert(t, qt.Equals(tail, tuple.MkT3(42, 3.14, 'A')))

	h1, tail1 := tuple.MkT1(99).Uncons()
	qt.Assert(t, qt.Equals(h1, 99))
	qt.Assert(t, qt.Equals(tail1, tuple.T0{}))
}

func TestConsUnconsInverse(t *testing.T) {
	tail := tuple.MkT2("b", 3)
	h, got := tuple.Cons2(true, tail).Uncons()
	qt.Assert(t, qt.IsTrue(h))
	qt.Assert(t, qt.Equals(got, tail))

	t11 := tuple.MkT11(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	h12, got11 := tuple.Cons11("head", t11).Uncons()
	qt.Assert(t, qt.Equals(h12, "head"))
	qt.Assert(t, qt.Equals(got11, t11))
}

func TestHeadTail(t *testing.T) {
	tu := tuple.MkT3(42, 3.14, 'A')
	qt.Assert(t, qt.Equals(tu.Head(), 42))
	qt.Assert(t, qt.Equals(tu.Tail(), tuple.MkT2(3.14, 'A')))
	qt.Assert(t, qt.Equals(tu.Tail().Tail().Tail(), tuple.T0{}))
}

func TestRefs(t *testing.T) {
	tu := tuple.MkT3(42, 3.14, 'A')
	refs := tuple.Refs3(&tu)
	qt.Assert(t, qt.Equals(refs.A0.Get(), 42))
	qt.Assert(t, qt.Equals(refs.A1.Get(), 3.14))
	qt.Assert(t, qt.Equals(refs.A2.Get(), 'A'))
	qt.Assert(t, qt.Equals(refs.String(), "(42, 3.14, 65)"))

	// The views see changes to the original.
	tu.A0 = 43
	qt.Assert(t, qt.Equals(refs.A0.Get(), 43))
}

func TestPtrs(t *testing.T) {
	tu := tuple.MkT3(1, "two", []int{3})
	ptrs := tuple.Ptrs3(&tu)
	qt.Assert(t, qt.Equals(ptrs.A0, &tu.A0))
	*ptrs.A0 += 1
	*ptrs.A1 += "1"
	*ptrs.A2 = append(*ptrs.A2, 4)
	qt.Assert(t, qt.DeepEquals(tu, tuple.MkT3(2, "two1", []int{3, 4})))
}

func TestRefsPtrsEmpty(t *testing.T) {
	var tu tuple.T0
	qt.Assert(t, qt.Equals(tuple.Refs0(&tu), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.Ptrs0(&tu), tuple.T0{}))
}

func TestRefsPtrsLargest(t *testing.T) {
	tu := tuple.MkT12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, "eleven")
	*tuple.Ptrs12(&tu).A11 = "changed"
	qt.Assert(t, qt.Equals(tuple.Refs12(&tu).A11.Get(), "changed"))
	qt.Assert(t, qt.Equals(tuple.Refs12(&tu).A0.Get(), 0))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MkT3(42, 3.14, "A").String(), "(42, 3.14, A)"))
	qt.Assert(t, qt.Equals(fmt.Sprint(tuple.MkT1("x")), "(x)"))
	qt.Assert(t, qt.Equals(fmt.Sprint(tuple.MkT2(tuple.MkT0(), tuple.MkT1(1))), "((), (1))"))
}

// describe formats any tuple through its values.
func describe(tu tuple.Tuple) string {
	return fmt.Sprintf("%d:%v", tu.Len(), tu.Values())
}

func TestTupleInterface(t *testing.T) {
	qt.Assert(t, qt.Equals(describe(tuple.T0{}), "0:[]"))
	qt.Assert(t, qt.Equals(describe(tuple.MkT2("a", 1)), "2:[a 1]"))
	qt.Assert(t, qt.Equals(describe(tuple.MkT4(1, 2, 3, 4)), "4:[1 2 3 4]"))
}

// plusOne increments every int and appends "1" to every string
// in the tuple, leaving other values alone.
func plusOne(fields ...any) {
	for _, f := range fields {
		switch f := f.(type) {
		case *int:
			*f += 1
		case *string:
			*f += "1"
		}
	}
}

func TestMutateThroughPtrs(t *testing.T) {
	tu := tuple.MkT4(1, "2", 3, "4")
	plusOne(tuple.Ptrs4(&tu).Values()...)
	qt.Assert(t, qt.Equals(tu, tuple.MkT4(2, "21", 4, "41")))
}
