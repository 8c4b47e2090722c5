package service_test

import (
	"context"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) FindPage(ctx context.Context, predicate filter.Predicate, page, size int64) ([]domain.Task, int64, error) {
	args := m.Called(ctx, predicate, page, size)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Get(1).(int64), args.Error(2)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) FindAllByID(ctx context.Context, ids []string) ([]domain.Task, error) {
	args := m.Called(ctx, ids)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) SaveAll(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	args := m.Called(ctx, tasks)

	var saved []domain.Task
	if value := args.Get(0); value != nil {
		saved = value.([]domain.Task)
	}
	return saved, args.Error(1)
}

func (m *taskRepositoryMock) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *taskRepositoryMock) UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindPage(ctx context.Context, predicate filter.Predicate, page, size int64) ([]domain.User, int64, error) {
	args := m.Called(ctx, predicate, page, size)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) FindByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, page, size, filters)
	return args.Get(0).(domain.Page[domain.Task]), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (string, error) {
	args := m.Called(ctx, id, input)
	return args.String(0), args.Error(1)
}

func (m *taskServiceMock) AssignBatch(ctx context.Context, userID string, taskIDs []string) ([]string, error) {
	args := m.Called(ctx, userID, taskIDs)

	var ids []string
	if value := args.Get(0); value != nil {
		ids = value.([]string)
	}
	return ids, args.Error(1)
}

func (m *taskServiceMock) Complete(ctx context.Context, userID, taskID string) (string, error) {
	args := m.Called(ctx, userID, taskID)
	return args.String(0), args.Error(1)
}

func (m *taskServiceMock) UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *taskServiceMock) UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
