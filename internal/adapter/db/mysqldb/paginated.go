package mysqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/JacobNatural/task-manager/internal/core/filter"
)

// pageRow is one row of pageQuery: the total is always set, the record
// columns are NULL when the page is empty.
type pageRow[T any] interface {
	count() int64
	record() (T, bool)
}

// pageQuery counts every match and fetches one page in a single statement.
// The count side always yields one row and the page is LEFT JOINed onto it,
// so the total survives a page past the end.
func pageQuery(table string, columns []string, where string) string {
	return fmt.Sprintf(`
SELECT c.total, p.*
FROM (SELECT COUNT(*) AS total FROM %[1]s WHERE %[3]s) c
LEFT JOIN (
  SELECT %[2]s FROM %[1]s WHERE %[3]s ORDER BY seq LIMIT ? OFFSET ?
) p ON TRUE
ORDER BY p.seq`, table, strings.Join(columns, ", "), where)
}

// pagedTable runs paged, filtered reads over one table. R is the scanned
// row type and T the domain type it maps to.
type pagedTable[R pageRow[T], T any] struct {
	db      *sqlx.DB
	table   string
	columns []string
	fields  map[string]string
}

func (p pagedTable[R, T]) FindPage(ctx context.Context, predicate filter.Predicate, page, size int64) ([]T, int64, error) {
	where, args, err := renderWhere(predicate, p.fields)
	if err != nil {
		return nil, 0, err
	}

	queryArgs := make([]any, 0, 2*len(args)+2)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, size, page*size)

	var rows []R
	if err := p.db.SelectContext(ctx, &rows, pageQuery(p.table, p.columns, where), queryArgs...); err != nil {
		return nil, 0, fmt.Errorf("select %s page: %w", p.table, err)
	}

	items, total := collectPage[R, T](rows)
	return items, total, nil
}

// collectPage maps the joined rows to records. An empty page still carries
// the total on its single row.
func collectPage[R pageRow[T], T any](rows []R) ([]T, int64) {
	items := make([]T, 0, len(rows))
	if len(rows) == 0 {
		return items, 0
	}

	for _, row := range rows {
		if item, ok := row.record(); ok {
			items = append(items, item)
		}
	}
	return items, rows[0].count()
}
