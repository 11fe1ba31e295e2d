// Package hlist implements heterogeneous lists: right-nested chains of
// [Cons] links terminated by [Nil], where each link may hold a value
// of a different type.
//
// The list form of the tuple (a, b, c) is
//
//	Cons[A, Cons[B, Cons[C, Nil]]]
//
// which can also be written List3[A, B, C]. The length of a list
// is a property of its type, not of its value; see [Size].
//
// See the tuple package for conversions to and from the flat
// tuple representation.
package hlist

import (
	"fmt"
	"reflect"
)

// List is implemented by [Nil] and by every [Cons] instantiation.
// It cannot be implemented outside this package.
type List interface {
	// Len returns the number of elements in the list.
	// It depends only on the type of the list.
	Len() int

	appendValues(vs []any) []any
}

// Nil is the empty list. It terminates every chain of Cons links.
type Nil struct{}

// List0 is the list form of the zero-length tuple.
type List0 = Nil

// Mk0 returns the empty list.
func Mk0() Nil {
	return Nil{}
}

func (Nil) Len() int {
	return 0
}

func (Nil) String() string {
	return "()"
}

func (Nil) appendValues(vs []any) []any {
	return vs
}

// Cons is a single link in a list: a head value followed
// by the rest of the list.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

// Push returns a list with h prepended to t.
func Push[H any, T List](h H, t T) Cons[H, T] {
	return Cons[H, T]{h, t}
}

// Uncons returns the head and the tail of the list.
// It is the inverse of [Push].
func (l Cons[H, T]) Uncons() (H, T) {
	return l.Head, l.Tail
}

// Len returns the length of the list. When the tail is a
// chain of Cons ending in Nil, the tail itself is never
// inspected: the zero value of its type gives the same answer.
// Tails of interface or pointer type are asked directly,
// a nil tail counting as empty.
func (l Cons[H, T]) Len() int {
	var t T
	if isNil(t) {
		return 1 + listLen(l.Tail)
	}
	return 1 + t.Len()
}

// String formats the list in its nested form,
// for example "(1, (hello, ()))".
func (l Cons[H, T]) String() string {
	return fmt.Sprintf("(%v, %v)", l.Head, l.Tail)
}

func (l Cons[H, T]) appendValues(vs []any) []any {
	vs = append(vs, l.Head)
	if isNil(l.Tail) {
		return vs
	}
	return l.Tail.appendValues(vs)
}

// Size returns the length of lists of type L.
// L should be a chain of Cons ending in Nil, such as List3[A, B, C].
// When the length cannot be known from the type alone,
// because L or the end of its chain is an interface or
// pointer type, those parts count as empty.
func Size[L List]() int {
	var l L
	return listLen(l)
}

// Values returns the elements of l in order.
func Values(l List) []any {
	n := listLen(l)
	if n == 0 {
		return []any{}
	}
	return l.appendValues(make([]any, 0, n))
}

func listLen(l List) int {
	if isNil(l) {
		return 0
	}
	return l.Len()
}

// isNil reports whether l is a nil interface or holds a nil pointer.
func isNil(l List) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
