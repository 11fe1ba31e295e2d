package tuple

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/tuplelist/hlist"
)

// Tuple is implemented by all the tuple types.
type Tuple interface {
	// Len returns the number of values in the tuple.
	Len() int
	// Values returns the values held in the tuple, in order.
	Values() []any
}

// T0 is the empty tuple.
type T0 struct{}

// MkT0 returns the empty tuple.
func MkT0() T0 {
	return T0{}
}

// T returns nothing: the tuple holds no values.
func (T0) T() {}

func (T0) Len() int {
	return 0
}

func (T0) Values() []any {
	return nil
}

func (T0) String() string {
	return "()"
}

// List returns the empty list.
func (T0) List() hlist.Nil {
	return hlist.Nil{}
}

// FromList0 returns the empty tuple.
func FromList0(hlist.Nil) T0 {
	return T0{}
}

// Refs0 returns the empty tuple.
func Refs0(*T0) T0 {
	return T0{}
}

// Ptrs0 returns the empty tuple.
func Ptrs0(*T0) T0 {
	return T0{}
}

func format(vs ...any) string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, v)
	}
	buf.WriteByte(')')
	return buf.String()
}
