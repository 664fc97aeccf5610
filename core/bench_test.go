package core_test

import (
	"testing"

	"github.com/katalvlaran/cellcomplex/core"
)

// strip builds a 2-complex of n triangles glued in a row.
func strip(b *testing.B, n int) *core.CellComplex {
	b.Helper()
	cx, err := core.NewCellComplex(2)
	if err != nil {
		b.Fatal(err)
	}
	must := func(c core.Cell, err error) core.Cell {
		if err != nil {
			b.Fatal(err)
		}
		return c
	}
	top := []core.Cell{must(cx.Add()), must(cx.Add())}
	shared := must(cx.Add(top[0], top[1]))
	for i := 0; i < n; i++ {
		v := must(cx.Add())
		e0 := must(cx.Add(top[0], v))
		e1 := must(cx.Add(top[1], v))
		must(cx.Add(shared, e0, e1))
		top[0], shared = v, e1
	}

	return cx
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		strip(b, 200)
	}
}

func BenchmarkTupleAndSwitch(b *testing.B) {
	cx := strip(b, 200)
	tu, ok := cx.Tuple()
	if !ok {
		b.Fatal("no flag")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur := tu
		for {
			next, ok, _ := cx.SwitchPath(cur, 0, 1, 2)
			if !ok {
				break
			}
			cur = next
			if cur.Equal(tu) {
				break
			}
		}
	}
}

func BenchmarkDeleteAll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		cx := strip(b, 200)
		b.StartTimer()
		if err := cx.Delete(cx.EmptyFace()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	cx := strip(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cx.Validate(); err != nil {
			b.Fatal(err)
		}
	}
}
