package table

// SimpleTable is a reference Table: a name plus an ordered slice of
// columns. It does not validate that every column shares the same row
// count; callers that need that invariant enforce it themselves.
type SimpleTable struct {
	name    string
	columns []Column
}

// New builds a SimpleTable from a name and columns, in the given order.
func New(name string, columns ...Column) *SimpleTable {
	return &SimpleTable{name: name, columns: columns}
}

func (t *SimpleTable) Name() string { return t.name }

func (t *SimpleTable) Columns() []Column { return t.columns }

func (t *SimpleTable) ColumnCount() int { return len(t.columns) }

// RowCount returns the row count of the first column, or 0 for a
// columnless table.
func (t *SimpleTable) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Size()
}
