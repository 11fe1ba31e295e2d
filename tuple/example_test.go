package tuple_test

import (
	"fmt"

	"github.com/rogpeppe/tuplelist/hlist"
	"github.com/rogpeppe/tuplelist/tuple"
)

func Example() {
	t := tuple.MkT3(42, 3.14, "A")
	fmt.Println(t.List())

	fmt.Println(tuple.FromList3(hlist.Mk3(1, "hello", 3.14)))

	t4 := tuple.Cons3("world", t)
	fmt.Println(t4)

	head, tail := t4.Uncons()
	fmt.Println(head, tail)

	refs := tuple.Refs3(&t)
	fmt.Println(refs.A0.Get(), refs)

	// Output:
	// (42, (3.14, (A, ())))
	// (1, hello, 3.14)
	// (world, 42, 3.14, A)
	// world (42, 3.14, A)
	// 42 (42, 3.14, A)
}
