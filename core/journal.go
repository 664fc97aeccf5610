package core

// record remembers enough about a removed cell to recreate it with the same handle.
type record struct {
	cell   Cell
	facets []Cell
}

// journal collects the mutations made inside a transaction.
type journal struct {
	added   []Cell
	removed []record
}

// Transact runs fn and, if fn returns an error, undoes every Add and Delete
// fn performed before returning that error. Deleted cells come back with
// their original handles. A Transact inside fn joins the outer transaction.
//
// Inside a transaction the OnRemove hook is deferred: it fires for every
// removed cell when fn succeeds, and after a rollback only for cells that
// fn created, so restored cells never lose their payloads.
func (cx *CellComplex) Transact(fn func() error) error {
	if cx.journal != nil {
		return fn()
	}
	cx.journal = &journal{}
	err := fn()
	j := cx.journal
	cx.journal = nil
	if err != nil {
		cx.rollback(j)
		return err
	}
	if cx.onRemove != nil {
		for _, r := range j.removed {
			cx.onRemove(r.cell)
		}
	}

	return nil
}

// InTransaction reports whether a Transact call is running.
func (cx *CellComplex) InTransaction() bool { return cx.journal != nil }

// rollback reverts j. Added cells are removed newest first, so each has no
// cofaces left when it goes. Removed cells are restored in reverse removal
// order, which recreates faces before their cofaces.
func (cx *CellComplex) rollback(j *journal) {
	fresh := make(map[Cell]struct{}, len(j.added))
	for i := len(j.added) - 1; i >= 0; i-- {
		c := j.added[i]
		fresh[c] = struct{}{}
		if cx.Has(c) {
			cx.remove(c)
		}
	}
	for i := len(j.removed) - 1; i >= 0; i-- {
		r := j.removed[i]
		if _, ok := fresh[r.cell]; ok {
			if cx.onRemove != nil {
				cx.onRemove(r.cell)
			}
			continue
		}
		cx.commit(r.cell, r.facets)
	}
}
