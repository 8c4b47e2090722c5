package mysqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

const selectTaskColumns = `id, seq, title, description, creation_date, status, user_id`

const upsertTaskQuery = `
INSERT INTO tasks (id, title, description, creation_date, status, user_id)
VALUES (:id, :title, :description, :creation_date, :status, :user_id) AS new
ON DUPLICATE KEY UPDATE
  title = new.title,
  description = new.description,
  creation_date = new.creation_date,
  status = new.status,
  user_id = new.user_id
`

type taskRow struct {
	ID           string         `db:"id"`
	Seq          uint64         `db:"seq"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	CreationDate time.Time      `db:"creation_date"`
	Status       string         `db:"status"`
	UserID       sql.NullString `db:"user_id"`
}

type taskPageRow struct {
	Total        int64          `db:"total"`
	ID           sql.NullString `db:"id"`
	Seq          sql.NullInt64  `db:"seq"`
	Title        sql.NullString `db:"title"`
	Description  sql.NullString `db:"description"`
	CreationDate sql.NullTime   `db:"creation_date"`
	Status       sql.NullString `db:"status"`
	UserID       sql.NullString `db:"user_id"`
}

func (r taskPageRow) count() int64 { return r.Total }

func (r taskPageRow) record() (domain.Task, bool) {
	if !r.ID.Valid {
		return domain.Task{}, false
	}
	return mapTaskRowToDomainTask(taskRow{
		ID:           r.ID.String,
		Title:        r.Title.String,
		Description:  r.Description.String,
		CreationDate: r.CreationDate.Time,
		Status:       r.Status.String,
		UserID:       r.UserID,
	}), true
}

type TaskRepository struct {
	pagedTable[taskPageRow, domain.Task]
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{
		pagedTable: pagedTable[taskPageRow, domain.Task]{
			db:      db,
			table:   "tasks",
			columns: []string{"id", "seq", "title", "description", "creation_date", "status", "user_id"},
			fields:  taskColumns,
		},
	}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT `+selectTaskColumns+` FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) FindAllByID(ctx context.Context, ids []string) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(ids))
	if len(ids) == 0 {
		return tasks, nil
	}

	query, args, err := sqlx.In(`SELECT `+selectTaskColumns+` FROM tasks WHERE id IN (?) ORDER BY seq`, ids)
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	row := mapDomainTaskToTaskRow(task)
	if _, err := r.db.NamedExecContext(ctx, upsertTaskQuery, row); err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

// SaveAll writes every task inside one transaction.
func (r *TaskRepository) SaveAll(ctx context.Context, tasks []domain.Task) (saved []domain.Task, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	saved = make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		row := mapDomainTaskToTaskRow(task)
		if _, err = tx.NamedExecContext(ctx, upsertTaskQuery, row); err != nil {
			return nil, fmt.Errorf("save task %s: %w", row.ID, err)
		}
		saved = append(saved, mapTaskRowToDomainTask(row))
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

// UnassignAll and UnassignOne only touch rows whose owner is userID, so every
// matched row is also a modified row.
func (r *TaskRepository) UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE tasks SET user_id = NULL WHERE user_id = ?`, userID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(result)
}

func (r *TaskRepository) UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE tasks SET user_id = NULL WHERE id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(result)
}

func updateResult(result sql.Result) (domain.UpdateResult, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{Matched: affected, Modified: affected}, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CreationDate: row.CreationDate.UTC(),
		Status:       domain.TaskStatus(row.Status),
	}

	if row.UserID.Valid {
		value := row.UserID.String
		task.UserID = &value
	}

	return task
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreationDate,
		Status:       string(task.Status),
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if task.UserID != nil {
		row.UserID = sql.NullString{String: *task.UserID, Valid: true}
	}
	return row
}
