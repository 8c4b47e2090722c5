package ports

import (
	"context"

	"github.com/JacobNatural/task-manager/internal/core/domain"
)

type UserRepository interface {
	PaginatedStore[domain.User]

	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserService interface {
	Create(ctx context.Context, input domain.CreateUserInput) (string, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.User], error)
	AddTasks(ctx context.Context, userID string, taskIDs []string) ([]string, error)
	RemoveAssignedTask(ctx context.Context, userID, taskID string) (domain.UpdateResult, error)
	CompleteTask(ctx context.Context, userID, taskID string) (string, error)
	Delete(ctx context.Context, userID string) (string, error)
}
