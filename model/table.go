package model

// Table is an ordered, column-uniform collection of records of one kind.
// Every row is a complete record, so all columns have equal length.
type Table[T any] struct {
	rows []T
}

// NewTable wraps rows without copying them.
func NewTable[T any](rows []T) Table[T] {
	return Table[T]{rows: rows}
}

// Len returns the number of rows.
func (t Table[T]) Len() int { return len(t.rows) }

// Rows returns the rows in table order. Callers must not modify the result.
func (t Table[T]) Rows() []T { return t.rows }

// Row returns row i.
func (t Table[T]) Row(i int) T { return t.rows[i] }

// Filter returns a new table with the rows for which keep returns true.
func (t Table[T]) Filter(keep func(T) bool) Table[T] {
	var out []T
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table[T]{rows: out}
}

// Column projects one column out of the table.
func Column[T, V any](t Table[T], get func(T) V) []V {
	out := make([]V, len(t.rows))
	for i, r := range t.rows {
		out[i] = get(r)
	}
	return out
}

// Builder accumulates one record per row and materializes a Table.
type Builder[T any] struct {
	rows []T
}

// NewBuilder returns a builder with room for capacity rows.
func NewBuilder[T any](capacity int) *Builder[T] {
	return &Builder[T]{rows: make([]T, 0, capacity)}
}

// Add appends one row.
func (b *Builder[T]) Add(row T) { b.rows = append(b.rows, row) }

// Len returns the number of rows added so far.
func (b *Builder[T]) Len() int { return len(b.rows) }

// Build returns the table. The builder must not be reused afterwards.
func (b *Builder[T]) Build() Table[T] {
	return Table[T]{rows: b.rows}
}
