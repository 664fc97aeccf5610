package core_test

import (
	"fmt"

	"github.com/katalvlaran/cellcomplex/core"
)

// ExampleCellComplex_Add builds a triangle bottom-up and walks one switch.
func ExampleCellComplex_Add() {
	cx, _ := core.NewCellComplex(2)
	a, _ := cx.Add()
	b, _ := cx.Add()
	c, _ := cx.Add()
	ab, _ := cx.Add(a, b)
	bc, _ := cx.Add(b, c)
	ca, _ := cx.Add(c, a)
	tri, _ := cx.Add(ab, bc, ca)

	fmt.Println("counts:", cx.Counts())

	tu, _ := cx.Tuple(tri)
	fmt.Println("flag:", tu.At(0) == a, tu.At(1) == ab)

	next, ok, _ := cx.Switch(1, tu)
	fmt.Println("switch 1:", ok, next.At(1) == ca)

	_, ok, _ = cx.Switch(2, tu)
	fmt.Println("switch 2:", ok)
	// Output:
	// counts: [3 3 1]
	// flag: true true
	// switch 1: true true
	// switch 2: false
}

// ExampleCellComplex_Delete shows that deleting a vertex takes its star with it.
func ExampleCellComplex_Delete() {
	cx, _ := core.NewCellComplex(2)
	a, _ := cx.Add()
	b, _ := cx.Add()
	c, _ := cx.Add()
	ab, _ := cx.Add(a, b)
	bc, _ := cx.Add(b, c)
	ca, _ := cx.Add(c, a)
	_, _ = cx.Add(ab, bc, ca)

	_ = cx.Delete(a)
	fmt.Println(cx.Counts(), cx.Validate() == nil)
	// Output:
	// [2 1 0] true
}

// ExampleCellComplex_Transact rolls back a failed edit.
func ExampleCellComplex_Transact() {
	cx, _ := core.NewCellComplex(1)
	a, _ := cx.Add()

	err := cx.Transact(func() error {
		b, _ := cx.Add()
		if _, err := cx.Add(a, b); err != nil {
			return err
		}
		return fmt.Errorf("changed my mind")
	})
	fmt.Println(err, cx.Counts())
	// Output:
	// changed my mind [1 0]
}
