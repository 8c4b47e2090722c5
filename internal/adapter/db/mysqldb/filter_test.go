package mysqldb

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
)

func TestRenderWhere_Empty(t *testing.T) {
	where, args, err := renderWhere(filter.Predicate{}, taskColumns)

	require.NoError(t, err)
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestRenderWhere_Clauses(t *testing.T) {
	predicate, err := filter.TaskSchema.Compile(domain.FilterSet{
		{Key: "status", Operation: domain.OperationIs, Value: "IN_PROGRESS"},
		{Key: "creationDate", Operation: domain.OperationGt, Value: "2026-01-01T10:00:00Z"},
		{Key: "description", Operation: domain.OperationRegex, Value: "urgent|asap"},
		{Key: "userId", Operation: domain.OperationIs, Value: nil},
	})
	require.NoError(t, err)

	where, args, err := renderWhere(predicate, taskColumns)

	require.NoError(t, err)
	assert.Equal(t, "status = ? AND creation_date > ? AND description REGEXP ? AND user_id IS NULL", where)
	assert.Equal(t, []any{
		"IN_PROGRESS",
		time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		"urgent|asap",
	}, args)
}

func TestRenderWhere_UnmappedKey(t *testing.T) {
	predicate := filter.Predicate{Clauses: []filter.Clause{{Key: "userId", Kind: filter.KindString, Operation: domain.OperationIs, Value: "u1"}}}

	_, _, err := renderWhere(predicate, userColumns)

	require.Error(t, err)
}

func TestPageQuery_KeepsCountForEmptyPage(t *testing.T) {
	query := pageQuery("users", []string{"id", "seq", "name"}, "name = ?")

	assert.Contains(t, query, "(SELECT COUNT(*) AS total FROM users WHERE name = ?) c")
	assert.Contains(t, query, "LEFT JOIN (")
	assert.Contains(t, query, "SELECT id, seq, name FROM users WHERE name = ? ORDER BY seq LIMIT ? OFFSET ?")
	assert.Contains(t, query, ") p ON TRUE")
	assert.Equal(t, 4, strings.Count(query, "?"))
}

func TestTaskPageRow_EmptyPageRow(t *testing.T) {
	row := taskPageRow{Total: 7}

	_, ok := row.record()

	assert.False(t, ok)
	assert.Equal(t, int64(7), row.count())
}

func TestTaskRowMapping(t *testing.T) {
	owner := "9b2f0d1c-6f5e-4a3b-8c7d-1e2f3a4b5c6d"
	task := domain.Task{
		Title:        "Fix bug",
		Description:  "Critical fix",
		CreationDate: time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC),
		Status:       domain.TaskStatusInProgress,
		UserID:       &owner,
	}

	row := mapDomainTaskToTaskRow(task)
	require.Len(t, row.ID, 36)
	assert.Equal(t, sql.NullString{String: owner, Valid: true}, row.UserID)

	task.ID = row.ID
	assert.Equal(t, task, mapTaskRowToDomainTask(row))

	unowned := mapTaskRowToDomainTask(taskRow{ID: "x", Status: "TO_DO"})
	assert.Nil(t, unowned.UserID)
}
