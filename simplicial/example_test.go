package simplicial_test

import (
	"fmt"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

// triangle returns a 2-complex with a single right triangle.
func triangle() (*simplicial.Complex, core.Cell) {
	sc, _ := simplicial.New(2)
	a, _ := sc.AddVertex([]float64{0, 0})
	b, _ := sc.AddVertex([]float64{4, 0})
	c, _ := sc.AddVertex([]float64{0, 4})
	ab, _ := sc.Add(a, b)
	bc, _ := sc.Add(b, c)
	ca, _ := sc.Add(c, a)
	t, _ := sc.Add(ab, bc, ca)

	return sc, t
}

func ExampleComplex_Locate() {
	sc, t := triangle()

	s, ok, _ := sc.Locate([]float64{1, 1})
	fmt.Println(ok, s == t)

	_, ok, _ = sc.Locate([]float64{5, 5})
	fmt.Println(ok)
	// Output:
	// true true
	// false
}

func ExampleComplex_AddStar() {
	sc, t := triangle()
	v, _ := sc.AddVertex([]float64{1, 1})

	_ = sc.AddStar(v, t)
	fmt.Println(sc.Counts())
	// Output:
	// [4 6 3]
}

func ExampleComplex_Flip() {
	sc, t := triangle()
	v, _ := sc.AddVertex([]float64{4, 4})

	// Glue a second triangle onto edge bc, then swap the diagonal.
	bc := sc.Facets(t)[1]
	ends := sc.Facets(bc)
	bv, _ := sc.Add(ends[0], v)
	cv, _ := sc.Add(ends[1], v)
	_, _ = sc.Add(bc, bv, cv)

	_ = sc.Flip(bc)
	fmt.Println(sc.Counts(), sc.Has(bc))
	// Output:
	// [4 5 2] false
}
