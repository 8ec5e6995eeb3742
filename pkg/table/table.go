package table

import "fmt"

// Table is a rectangular grid of columns sharing a common row count,
// with optional row labels.
//
// Every column holds exactly RowCount() cells after any method returns.
// Row labels are stored lazily: the label slice is never longer than the
// row count and rows beyond its end are unlabeled.
//
// A Table is not safe for concurrent use.
type Table struct {
	columns   []Column
	rowLabels []string
	rowCount  int
	kind      Kind
}

// New creates an empty table whose own columns accept any value.
func New() *Table {
	return NewOfKind(KindAny)
}

// NewOfKind creates an empty table whose own columns hold the given kind.
// Columns of other kinds can still be added with AddColumn.
func NewOfKind(kind Kind) *Table {
	return &Table{kind: kind}
}

// NewWithDimensions creates a table of the given kind and size.
func NewWithDimensions(kind Kind, columns, rows int) (*Table, error) {
	t := NewOfKind(kind)
	if err := t.SetDimensions(columns, rows); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns the kind of the columns the table creates itself.
func (t *Table) Kind() Kind {
	return t.kind
}

// ============================================================================
// Dimensions
// ============================================================================

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return t.rowCount
}

// IsEmpty reports whether the table has no columns.
func (t *Table) IsEmpty() bool {
	return len(t.columns) == 0
}

// SetColumnCount grows the table with fresh columns or drops trailing
// columns. Row count and row labels are preserved.
func (t *Table) SetColumnCount(n int) error {
	if n < 0 {
		return fmt.Errorf("column count %d: %w", n, ErrInvalidCount)
	}
	t.setColumnCount(n)
	return nil
}

func (t *Table) setColumnCount(n int) {
	if n <= len(t.columns) {
		for i := n; i < len(t.columns); i++ {
			t.columns[i] = nil
		}
		t.columns = t.columns[:n]
		return
	}
	for len(t.columns) < n {
		t.columns = append(t.columns, t.newColumn(""))
	}
}

// SetRowCount grows every column with absent cells or truncates all
// columns. Truncated data and labels are discarded.
func (t *Table) SetRowCount(n int) error {
	if n < 0 {
		return fmt.Errorf("row count %d: %w", n, ErrInvalidCount)
	}
	t.setRowCount(n)
	return nil
}

func (t *Table) setRowCount(n int) {
	t.rowCount = n
	if len(t.rowLabels) > n {
		t.rowLabels = t.rowLabels[:n]
	}
	t.scaleColumns()
}

// SetDimensions sets both the column count and the row count.
func (t *Table) SetDimensions(columns, rows int) error {
	if columns < 0 {
		return fmt.Errorf("column count %d: %w", columns, ErrInvalidCount)
	}
	if rows < 0 {
		return fmt.Errorf("row count %d: %w", rows, ErrInvalidCount)
	}
	t.setColumnCount(columns)
	t.setRowCount(rows)
	return nil
}

// Clear removes all columns, rows and labels.
func (t *Table) Clear() {
	t.columns = nil
	t.rowLabels = nil
	t.rowCount = 0
}

// ============================================================================
// Columns
// ============================================================================

// Column returns the column at index i. The column is still owned by the
// table; resizing it directly is undone by the next row operation.
func (t *Table) Column(i int) (Column, error) {
	if err := t.checkColumn(i, 1); err != nil {
		return nil, err
	}
	return t.columns[i], nil
}

// ColumnByHeader returns the first column whose header equals header.
func (t *Table) ColumnByHeader(header string) (Column, error) {
	i, err := t.columnIndex(header)
	if err != nil {
		return nil, err
	}
	return t.columns[i], nil
}

// Columns returns the columns in order. The slice is a copy; the columns
// are still owned by the table.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// AppendColumn adds a new column with the given header at the end.
func (t *Table) AppendColumn(header string) Column {
	cols, _ := t.InsertColumnsWithHeaders(len(t.columns), header)
	return cols[0]
}

// AppendColumns adds one new column per header at the end.
func (t *Table) AppendColumns(headers ...string) []Column {
	cols, _ := t.InsertColumnsWithHeaders(len(t.columns), headers...)
	return cols
}

// AppendColumnCount adds count unlabeled columns at the end.
func (t *Table) AppendColumnCount(count int) ([]Column, error) {
	return t.InsertColumns(len(t.columns), count)
}

// InsertColumn inserts a new column with the given header at index at.
func (t *Table) InsertColumn(at int, header string) (Column, error) {
	cols, err := t.InsertColumnsWithHeaders(at, header)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// InsertColumns inserts count new columns at index at. Columns from at
// onward shift right by count. The new columns are sized to the row count.
func (t *Table) InsertColumns(at, count int) ([]Column, error) {
	if err := t.checkColumn(at, 0); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("column count %d: %w", count, ErrInvalidCount)
	}
	oldCount := len(t.columns)
	t.setColumnCount(oldCount + count)

	// NB: backwards so no column is overwritten before it has moved.
	for oldC := oldCount - 1; oldC >= at; oldC-- {
		t.columns[oldC+count] = t.columns[oldC]
	}

	result := make([]Column, count)
	for c := 0; c < count; c++ {
		col := t.newColumn("")
		result[c] = col
		t.columns[at+c] = col
	}
	return result, nil
}

// InsertColumnsWithHeaders inserts one new column per header at index at.
func (t *Table) InsertColumnsWithHeaders(at int, headers ...string) ([]Column, error) {
	cols, err := t.InsertColumns(at, len(headers))
	if err != nil {
		return nil, err
	}
	for i, h := range headers {
		cols[i].SetHeader(h)
	}
	return cols, nil
}

// AddColumn appends an existing column and takes ownership of it.
// A column longer than the table grows the row count; a shorter one
// is padded with absent cells. The caller must not resize col afterwards;
// row operations rescale it to the row count if it drifts.
func (t *Table) AddColumn(col Column) error {
	return t.InsertColumnAt(len(t.columns), col)
}

// InsertColumnAt inserts an existing column at index at and takes
// ownership of it.
func (t *Table) InsertColumnAt(at int, col Column) error {
	if col == nil {
		return fmt.Errorf("insert column: nil column")
	}
	if err := t.checkColumn(at, 0); err != nil {
		return err
	}
	t.columns = append(t.columns, nil)
	copy(t.columns[at+1:], t.columns[at:])
	t.columns[at] = col
	if col.Len() > t.rowCount {
		t.rowCount = col.Len()
	}
	t.scaleColumns()
	return nil
}

// RemoveColumn removes and returns the column at index at.
func (t *Table) RemoveColumn(at int) (Column, error) {
	cols, err := t.RemoveColumns(at, 1)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// RemoveColumns removes and returns count columns starting at index at.
// Columns after the range shift left by count.
func (t *Table) RemoveColumns(at, count int) ([]Column, error) {
	if err := t.checkColumn(at, count); err != nil {
		return nil, err
	}
	result := make([]Column, count)
	copy(result, t.columns[at:at+count])

	oldCount := len(t.columns)
	for oldC := at + count; oldC < oldCount; oldC++ {
		t.columns[oldC-count] = t.columns[oldC]
	}
	t.setColumnCount(oldCount - count)
	return result, nil
}

// RemoveColumnByHeader removes and returns the first column with the
// given header.
func (t *Table) RemoveColumnByHeader(header string) (Column, error) {
	i, err := t.columnIndex(header)
	if err != nil {
		return nil, err
	}
	return t.RemoveColumn(i)
}

// RemoveColumnsByHeader removes the first column matching each header in
// turn. It stops at the first header that does not match.
func (t *Table) RemoveColumnsByHeader(headers ...string) ([]Column, error) {
	result := make([]Column, 0, len(headers))
	for _, h := range headers {
		col, err := t.RemoveColumnByHeader(h)
		if err != nil {
			return result, err
		}
		result = append(result, col)
	}
	return result, nil
}

// ============================================================================
// Rows
// ============================================================================

// AppendRow adds a row with the given label ("" for none) at the end.
func (t *Table) AppendRow(label string) {
	_ = t.InsertRow(t.rowCount, label)
}

// AppendRows adds count unlabeled rows at the end.
func (t *Table) AppendRows(count int) error {
	return t.InsertRows(t.rowCount, count)
}

// AppendRowsWithLabels adds one row per label at the end.
func (t *Table) AppendRowsWithLabels(labels ...string) {
	_ = t.InsertRowsWithLabels(t.rowCount, labels...)
}

// InsertRow inserts a row with the given label at index at.
func (t *Table) InsertRow(at int, label string) error {
	return t.InsertRowsWithLabels(at, label)
}

// InsertRowsWithLabels inserts one row per label at index at.
func (t *Table) InsertRowsWithLabels(at int, labels ...string) error {
	if err := t.InsertRows(at, len(labels)); err != nil {
		return err
	}
	for i, label := range labels {
		if label != "" {
			t.setRowLabel(at+i, label)
		}
	}
	return nil
}

// InsertRows inserts count absent rows at index at. Rows from at onward
// shift down by count, and so do their labels.
func (t *Table) InsertRows(at, count int) error {
	if err := t.checkRow(at, 0); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("row count %d: %w", count, ErrInvalidCount)
	}
	if count == 0 {
		return nil
	}
	t.scaleColumns()
	oldCount := t.rowCount
	t.setRowCount(oldCount + count)

	// NB: This loop goes backwards to prevent the same row from being
	// copied over and over again.
	for _, col := range t.columns {
		for oldR := oldCount - 1; oldR >= at; oldR-- {
			col.Move(oldR+count, oldR)
		}
		for r := at; r < at+count; r++ {
			_ = col.Set(r, nil)
		}
	}

	// Labels only need shifting when the label slice reaches into the
	// moved range; the slice grows at most once.
	if oldLen := len(t.rowLabels); oldLen > at {
		t.rowLabels = append(t.rowLabels, make([]string, count)...)
		for oldR := oldLen - 1; oldR >= at; oldR-- {
			t.rowLabels[oldR+count] = t.rowLabels[oldR]
		}
		for r := at; r < at+count; r++ {
			t.rowLabels[r] = ""
		}
	}
	return nil
}

// RemoveRow removes the row at index at.
func (t *Table) RemoveRow(at int) error {
	return t.RemoveRows(at, 1)
}

// RemoveRows removes count rows starting at index at. Rows after the
// range shift up by count, and so do their labels.
func (t *Table) RemoveRows(at, count int) error {
	if err := t.checkRow(at, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	t.scaleColumns()
	oldCount := t.rowCount

	// Forward copy: every source index is above its destination.
	for _, col := range t.columns {
		for oldR := at + count; oldR < oldCount; oldR++ {
			col.Move(oldR-count, oldR)
		}
	}
	if oldLen := len(t.rowLabels); oldLen > at {
		for oldR := at + count; oldR < oldLen; oldR++ {
			t.rowLabels[oldR-count] = t.rowLabels[oldR]
		}
		t.rowLabels = t.rowLabels[:max(at, oldLen-count)]
	}
	t.setRowCount(oldCount - count)
	return nil
}

// RemoveRowByLabel removes the first row with the given label.
func (t *Table) RemoveRowByLabel(label string) error {
	r := t.RowIndex(label)
	if r < 0 {
		return fmt.Errorf("row %q: %w", label, ErrNotFound)
	}
	return t.RemoveRow(r)
}

// RemoveRowsByLabel removes the first row matching each label in turn.
// It stops at the first label that does not match.
func (t *Table) RemoveRowsByLabel(labels ...string) error {
	for _, label := range labels {
		if err := t.RemoveRowByLabel(label); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Headers
// ============================================================================

// ColumnHeader returns the header of the column at index i.
func (t *Table) ColumnHeader(i int) (string, error) {
	if err := t.checkColumn(i, 1); err != nil {
		return "", err
	}
	return t.columns[i].Header(), nil
}

// SetColumnHeader replaces the header of the column at index i.
func (t *Table) SetColumnHeader(i int, header string) error {
	if err := t.checkColumn(i, 1); err != nil {
		return err
	}
	t.columns[i].SetHeader(header)
	return nil
}

// ColumnHeaders returns the headers of all columns in order.
func (t *Table) ColumnHeaders() []string {
	out := make([]string, len(t.columns))
	for i, col := range t.columns {
		out[i] = col.Header()
	}
	return out
}

// ColumnIndex returns the index of the first column whose header equals
// header, or -1.
func (t *Table) ColumnIndex(header string) int {
	for i, col := range t.columns {
		if col.Header() == header {
			return i
		}
	}
	return -1
}

// RowHeader returns the label of row i ("" when unlabeled).
func (t *Table) RowHeader(i int) (string, error) {
	if err := t.checkRow(i, 1); err != nil {
		return "", err
	}
	return t.rowLabel(i), nil
}

// SetRowHeader sets the label of row i, growing the label slice as needed.
func (t *Table) SetRowHeader(i int, label string) error {
	if err := t.checkRow(i, 1); err != nil {
		return err
	}
	t.setRowLabel(i, label)
	return nil
}

// RowHeaders returns the labels of all rows in order.
func (t *Table) RowHeaders() []string {
	out := make([]string, t.rowCount)
	copy(out, t.rowLabels)
	return out
}

// RowIndex returns the index of the first row whose label equals label,
// or -1. Unlabeled rows match the empty string.
func (t *Table) RowIndex(label string) int {
	for r := 0; r < t.rowCount; r++ {
		if t.rowLabel(r) == label {
			return r
		}
	}
	return -1
}

// ============================================================================
// Cells
// ============================================================================

// Get returns the cell at (col, row), or nil when it is absent.
func (t *Table) Get(col, row int) (any, error) {
	if err := t.checkColumn(col, 1); err != nil {
		return nil, err
	}
	if err := t.checkRow(row, 1); err != nil {
		return nil, err
	}
	return t.columns[col].Get(row)
}

// Set stores v at (col, row). v must match the column kind or be nil.
func (t *Table) Set(col, row int, v any) error {
	if err := t.checkColumn(col, 1); err != nil {
		return err
	}
	if err := t.checkRow(row, 1); err != nil {
		return err
	}
	return t.columns[col].Set(row, v)
}

// GetByHeader returns the cell in the first column named header.
func (t *Table) GetByHeader(header string, row int) (any, error) {
	col, err := t.columnIndex(header)
	if err != nil {
		return nil, err
	}
	return t.Get(col, row)
}

// SetByHeader stores v in the first column named header.
func (t *Table) SetByHeader(header string, row int, v any) error {
	col, err := t.columnIndex(header)
	if err != nil {
		return err
	}
	return t.Set(col, row, v)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		columns:  make([]Column, len(t.columns)),
		rowCount: t.rowCount,
		kind:     t.kind,
	}
	for i, col := range t.columns {
		out.columns[i] = col.Clone()
	}
	if len(t.rowLabels) > 0 {
		out.rowLabels = make([]string, len(t.rowLabels))
		copy(out.rowLabels, t.rowLabels)
	}
	return out
}

// ============================================================================
// Helpers
// ============================================================================

func (t *Table) newColumn(header string) Column {
	col := NewColumn(t.kind, header)
	col.Resize(t.rowCount)
	return col
}

// scaleColumns resizes every column to the row count.
func (t *Table) scaleColumns() {
	for i, col := range t.columns {
		if col == nil {
			t.columns[i] = t.newColumn("")
			continue
		}
		if col.Len() != t.rowCount {
			col.Resize(t.rowCount)
		}
	}
}

func (t *Table) rowLabel(r int) string {
	if r >= len(t.rowLabels) {
		return ""
	}
	return t.rowLabels[r]
}

func (t *Table) setRowLabel(r int, label string) {
	if r >= len(t.rowLabels) {
		if label == "" {
			return
		}
		t.rowLabels = append(t.rowLabels, make([]string, r+1-len(t.rowLabels))...)
	}
	t.rowLabels[r] = label
}

func (t *Table) columnIndex(header string) (int, error) {
	i := t.ColumnIndex(header)
	if i < 0 {
		return -1, fmt.Errorf("column %q: %w", header, ErrNotFound)
	}
	return i, nil
}

func (t *Table) checkColumn(i, count int) error {
	return checkRange("column", i, count, len(t.columns))
}

func (t *Table) checkRow(i, count int) error {
	return checkRange("row", i, count, t.rowCount)
}
