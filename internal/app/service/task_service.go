package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, now: time.Now}
}

// WithClock replaces the clock used to stamp new tasks.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) FindByID(ctx context.Context, id string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.Task], error) {
	predicate, err := filter.TaskSchema.Compile(filters)
	if err != nil {
		return domain.Page[domain.Task]{}, err
	}

	tasks, total, err := s.taskRepository.FindPage(ctx, predicate, page, size)
	if err != nil {
		return domain.Page[domain.Task]{}, fmt.Errorf("find task page: %w", err)
	}

	return domain.Page[domain.Task]{Items: tasks, Total: total, Page: page, Size: size}, nil
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (string, error) {
	task, err := s.taskRepository.Save(ctx, domain.Task{
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: s.now().UTC().Truncate(time.Millisecond),
		Status:       domain.TaskStatusTodo,
	})
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}

	zap.L().Info("task created", zap.String("task_id", task.ID))
	return task.ID, nil
}

// Update overwrites title, description and status. Any status is accepted,
// including moving a DONE task back to TO_DO.
func (s *TaskService) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (string, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("find task %s: %w", id, err)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status

	if _, err := s.taskRepository.Save(ctx, task); err != nil {
		return "", fmt.Errorf("update task %s: %w", id, err)
	}
	return id, nil
}

// AssignBatch gives every task in taskIDs to userID and moves it to
// IN_PROGRESS. All tasks are loaded and checked before anything is written,
// so a failed precondition leaves every task untouched. The write itself is
// only as atomic as the repository's SaveAll, and a concurrent writer may
// change a task between the check and the write.
func (s *TaskService) AssignBatch(ctx context.Context, userID string, taskIDs []string) ([]string, error) {
	tasks, err := s.taskRepository.FindAllByID(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	// A repeated id loads one task, so it fails the count like a missing one.
	if len(tasks) < len(taskIDs) {
		return nil, domain.ErrTasksNotFound
	}
	for _, task := range tasks {
		if task.Status != domain.TaskStatusTodo {
			return nil, domain.ErrTaskNotAssignable
		}
	}

	for i := range tasks {
		owner := userID
		tasks[i].UserID = &owner
		tasks[i].Status = domain.TaskStatusInProgress
	}

	saved, err := s.taskRepository.SaveAll(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("assign tasks to user %s: %w", userID, err)
	}

	assigned := make([]string, 0, len(saved))
	for _, task := range saved {
		assigned = append(assigned, task.ID)
	}

	zap.L().Info("tasks assigned", zap.String("user_id", userID), zap.Strings("task_ids", assigned))
	return assigned, nil
}

func (s *TaskService) Complete(ctx context.Context, userID, taskID string) (string, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("find task %s: %w", taskID, err)
	}

	if !task.AssignedTo(userID) {
		return "", domain.ErrTaskNotAssignedToUser
	}
	if task.Status == domain.TaskStatusDone {
		return "", domain.ErrTaskAlreadyCompleted
	}

	task.Status = domain.TaskStatusDone
	if _, err := s.taskRepository.Save(ctx, task); err != nil {
		return "", fmt.Errorf("complete task %s: %w", taskID, err)
	}

	zap.L().Info("task completed", zap.String("user_id", userID), zap.String("task_id", taskID))
	return taskID, nil
}

// UnassignAll clears the owner of every task held by userID. Having nothing
// to unassign is not an error. Task status is left as it is.
func (s *TaskService) UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error) {
	result, err := s.taskRepository.UnassignAll(ctx, userID)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("unassign tasks of user %s: %w", userID, err)
	}

	zap.L().Info("user tasks unassigned",
		zap.String("user_id", userID),
		zap.Int64("matched", result.Matched),
		zap.Int64("modified", result.Modified),
	)
	return result, nil
}

// UnassignOne clears the owner of taskID when userID owns it. Unlike
// UnassignAll, matching nothing is reported as ErrTaskNotFound.
func (s *TaskService) UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	result, err := s.taskRepository.UnassignOne(ctx, userID, taskID)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("unassign task %s: %w", taskID, err)
	}
	if result.Matched == 0 {
		return domain.UpdateResult{}, domain.ErrTaskNotFound
	}
	return result, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.taskRepository.FindByID(ctx, id); err != nil {
		return "", fmt.Errorf("find task %s: %w", id, err)
	}

	if err := s.taskRepository.DeleteByID(ctx, id); err != nil {
		return "", fmt.Errorf("delete task %s: %w", id, err)
	}

	zap.L().Info("task deleted", zap.String("task_id", id))
	return id, nil
}

var _ ports.TaskService = (*TaskService)(nil)
