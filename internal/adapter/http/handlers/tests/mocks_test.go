package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/JacobNatural/task-manager/internal/core/domain"
)

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

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Create(ctx context.Context, input domain.CreateUserInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *userServiceMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.User], error) {
	args := m.Called(ctx, page, size, filters)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}

func (m *userServiceMock) AddTasks(ctx context.Context, userID string, taskIDs []string) ([]string, error) {
	args := m.Called(ctx, userID, taskIDs)

	var ids []string
	if value := args.Get(0); value != nil {
		ids = value.([]string)
	}
	return ids, args.Error(1)
}

func (m *userServiceMock) RemoveAssignedTask(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *userServiceMock) CompleteTask(ctx context.Context, userID, taskID string) (string, error) {
	args := m.Called(ctx, userID, taskID)
	return args.String(0), args.Error(1)
}

func (m *userServiceMock) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
