package tuplefunc_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplelist/tuple"
	"github.com/rogpeppe/tuplelist/tuple/tuplefunc"
)

// mapSlice is an example of a generic operation that
// only knows about single-argument functions.
func mapSlice[T, R any](xs []T, f func(T) R) []R {
	rs := make([]R, len(xs))
	for i, x := range xs {
		rs[i] = f(x)
	}
	return rs
}

func TestToA(t *testing.T) {
	repeat := tuplefunc.ToA_2_1(strings.Repeat)
	got := mapSlice([]tuple.T2[string, int]{
		tuple.MkT2("a", 1),
		tuple.MkT2("b", 3),
	}, repeat)
	qt.Assert(t, qt.DeepEquals(got, []string{"a", "bbb"}))

	called := false
	f := tuplefunc.ToA_0_1(func() bool {
		called = true
		return true
	})
	qt.Assert(t, qt.IsTrue(f(tuple.T0{})))
	qt.Assert(t, qt.IsTrue(called))
}

func TestFromA(t *testing.T) {
	join := tuplefunc.FromA_3_1(func(a tuple.T3[string, int, bool]) string {
		return a.String()
	})
	qt.Assert(t, qt.Equals(join("x", 1, true), "(x, 1, true)"))

	f := tuplefunc.FromA_2_1(tuplefunc.ToA_2_1(strings.Repeat))
	qt.Assert(t, qt.Equals(f("ab", 2), "abab"))
}

func TestToR(t *testing.T) {
	atoi := tuplefunc.ToR_1_2(strconv.Atoi)
	r := atoi("123")
	qt.Assert(t, qt.Equals(r.A0, 123))
	qt.Assert(t, qt.IsNil(r.A1))

	r = atoi("x")
	qt.Assert(t, qt.ErrorMatches(r.A1, `strconv.Atoi: parsing "x": invalid syntax`))

	var got []string
	record := tuplefunc.ToR_1_0(func(s string) {
		got = append(got, s)
	})
	qt.Assert(t, qt.Equals(record("a"), tuple.T0{}))
	qt.Assert(t, qt.DeepEquals(got, []string{"a"}))
}

func TestFromR(t *testing.T) {
	split := tuplefunc.FromR_1_2(func(s string) tuple.T2[string, string] {
		before, after, _ := strings.Cut(s, "=")
		return tuple.MkT2(before, after)
	})
	k, v := split("key=value")
	qt.Assert(t, qt.Equals(k, "key"))
	qt.Assert(t, qt.Equals(v, "value"))

	n, err := tuplefunc.FromR_1_2(tuplefunc.ToR_1_2(strconv.Atoi))("42")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 42))

	itoa := tuplefunc.FromR_1_1(tuplefunc.ToR_1_1(strconv.Itoa))
	qt.Assert(t, qt.Equals(itoa(3), "3"))
}
