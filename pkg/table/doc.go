// Package table provides an in-memory, column-oriented table with
// heterogeneous typed columns.
//
// A Table is an ordered list of columns plus an explicit row count and a
// lazily populated list of row labels. Each column holds a single Kind of
// value; different columns of one table may hold different kinds.
//
// # Structure
//
// Every column always holds exactly RowCount() cells. Structural edits
// (InsertRows, RemoveRows, InsertColumns, RemoveColumns, SetRowCount,
// SetColumnCount) keep the columns scaled to the row count:
//
//	t := table.New()
//	t.AppendColumns("name", "score")
//	t.AppendRow("first")
//	_ = t.Set(0, 0, "Alice")
//	_ = t.Set(1, 0, 92.5)
//
// Inserting rows moves existing cells away from the opened gap, starting
// from the last row; removing rows moves cells toward the closed gap,
// starting from the first row after it. New cells are absent (nil).
//
// # Labels
//
// Column headers and row labels are plain strings; the empty string means
// unlabeled. Headers are not required to be unique: lookups by header or
// label resolve to the first match.
//
// # Typed Access
//
// Set checks the dynamic type of the value against the column kind and
// returns a *TypeError on mismatch. Kind-specific column types give typed
// access without assertions on the values:
//
//	scores := table.NewFloatColumn("score")
//	scores.Append(1.5, 2.5)
//	_ = t.AddColumn(scores)
//	v, ok, _ := scores.Value(0)
//
// # Errors
//
// Index errors wrap ErrIndexOutOfRange, type errors wrap ErrTypeMismatch and
// failed lookups wrap ErrNotFound; use errors.Is to match them. A failed
// structural call leaves the table unchanged.
package table
