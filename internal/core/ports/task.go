package ports

import (
	"context"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
)

// PaginatedStore runs a compiled filter against one collection and returns
// the requested page plus the total number of matches in a single round trip.
type PaginatedStore[T any] interface {
	FindPage(ctx context.Context, predicate filter.Predicate, page, size int64) ([]T, int64, error)
}

type TaskRepository interface {
	PaginatedStore[domain.Task]

	FindByID(ctx context.Context, id string) (domain.Task, error)
	// FindAllByID returns the tasks that exist among ids; missing ids are
	// simply absent from the result.
	FindAllByID(ctx context.Context, ids []string) ([]domain.Task, error)
	// Save inserts the task when its ID is empty and replaces it otherwise.
	Save(ctx context.Context, task domain.Task) (domain.Task, error)
	SaveAll(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
	DeleteByID(ctx context.Context, id string) error
	// UnassignAll clears the owner of every task owned by userID.
	UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error)
	// UnassignOne clears the owner of taskID only if userID owns it.
	UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error)
}

type TaskService interface {
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.Task], error)
	Create(ctx context.Context, input domain.CreateTaskInput) (string, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (string, error)
	AssignBatch(ctx context.Context, userID string, taskIDs []string) ([]string, error)
	Complete(ctx context.Context, userID, taskID string) (string, error)
	UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error)
	UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (string, error)
}
