// Package preview turns a cleaned dataset into a printable table model.
package preview

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// DefaultRows is the number of rows shown when no limit is configured.
const DefaultRows = 10

// Table is a rendered slice of a dataset.
type Table struct {
	Columns   []string
	Rows      [][]string
	Total     int
	Remaining int
	Errors    []string
}

// Empty reports whether there is nothing to show at all.
func (t Table) Empty() bool {
	return t.Total == 0 && len(t.Errors) == 0
}

// Caption summarizes how much of the dataset is displayed.
func (t Table) Caption() string {
	if t.Remaining > 0 {
		return fmt.Sprintf("Showing first %d of %d rows (%d more not shown).", len(t.Rows), t.Total, t.Remaining)
	}
	return fmt.Sprintf("Showing all %d rows.", t.Total)
}

// Build lays out at most limit rows of ds. Columns come from the first record;
// cells of later records are aligned to them and missing cells are empty.
// A limit <= 0 means DefaultRows.
func Build(ds *models.CleanedDataset, limit int) Table {
	if limit <= 0 {
		limit = DefaultRows
	}
	if ds == nil {
		return Table{}
	}

	t := Table{
		Columns: ds.Columns(),
		Total:   ds.Len(),
		Errors:  slices.Clone(ds.Errors),
	}

	n := min(limit, t.Total)
	t.Rows = make([][]string, 0, n)
	for _, rec := range ds.Records[:n] {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			if v, ok := rec.Get(col); ok {
				row[i] = FormatValue(v)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	t.Remaining = t.Total - n

	return t
}

// FormatValue renders one cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
