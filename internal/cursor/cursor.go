// Package cursor implements the optional selection index used by the TUI panes.
//
// A Cursor is either unset or points at a position in a sequence whose length is
// passed to every operation. Operations never produce an index outside [0, n).
package cursor

type Cursor struct {
	idx int
	set bool
}

func None() Cursor { return Cursor{} }

// At returns a cursor at i. Negative values yield an unset cursor.
func At(i int) Cursor {
	if i < 0 {
		return Cursor{}
	}
	return Cursor{idx: i, set: true}
}

func (c Cursor) Index() (int, bool) { return c.idx, c.set }
func (c Cursor) IsSet() bool        { return c.set }

// Up moves towards the start, stopping at 0. An unset cursor lands on 0.
func (c Cursor) Up(n int) Cursor {
	if n <= 0 {
		return None()
	}
	if !c.set {
		return At(0)
	}
	c = c.Clamp(n)
	if c.idx > 0 {
		c.idx--
	}
	return c
}

// Down moves towards the end, stopping at n-1. An unset cursor lands on 0.
func (c Cursor) Down(n int) Cursor {
	if n <= 0 {
		return None()
	}
	if !c.set {
		return At(0)
	}
	c = c.Clamp(n)
	if c.idx < n-1 {
		c.idx++
	}
	return c
}

// Clamp re-derives the cursor against a sequence of length n.
func (c Cursor) Clamp(n int) Cursor {
	if !c.set {
		return c
	}
	if n <= 0 {
		return None()
	}
	if c.idx >= n {
		c.idx = n - 1
	}
	return c
}

// Get returns the element under the cursor, if any.
func Get[T any](c Cursor, xs []T) (T, bool) {
	var zero T
	i, ok := c.Index()
	if !ok || i >= len(xs) {
		return zero, false
	}
	return xs[i], true
}
