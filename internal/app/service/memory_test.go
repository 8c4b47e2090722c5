package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
)

// memoryTaskRepository keeps tasks in insertion order. FindPage understands
// IS clauses on status and userId, enough for the workflow scenarios.
type memoryTaskRepository struct {
	mu    sync.Mutex
	seq   int
	order []string
	tasks map[string]domain.Task
}

func newMemoryTaskRepository() *memoryTaskRepository {
	return &memoryTaskRepository{tasks: map[string]domain.Task{}}
}

func (r *memoryTaskRepository) FindPage(_ context.Context, predicate filter.Predicate, page, size int64) ([]domain.Task, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Task
	for _, id := range r.order {
		ok, err := matchTask(r.tasks[id], predicate)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, r.tasks[id])
		}
	}

	start := page * size
	if start >= int64(len(matched)) {
		return []domain.Task{}, int64(len(matched)), nil
	}
	end := min(start+size, int64(len(matched)))
	return matched[start:end], int64(len(matched)), nil
}

func matchTask(task domain.Task, predicate filter.Predicate) (bool, error) {
	for _, clause := range predicate.Clauses {
		if clause.Operation != domain.OperationIs {
			return false, errors.New("memory repository only supports IS")
		}
		switch clause.Key {
		case filter.TaskFieldStatus:
			if task.Status != clause.Value.(domain.TaskStatus) {
				return false, nil
			}
		case filter.TaskFieldUserID:
			if clause.Value == nil {
				if task.UserID != nil {
					return false, nil
				}
				continue
			}
			if !task.AssignedTo(clause.Value.(string)) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("memory repository cannot filter on %q", clause.Key)
		}
	}
	return true, nil
}

func (r *memoryTaskRepository) FindByID(_ context.Context, id string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *memoryTaskRepository) FindAllByID(_ context.Context, ids []string) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Like an IN query, a repeated id yields its task once.
	seen := make(map[string]bool, len(ids))
	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		if task, ok := r.tasks[id]; ok && !seen[id] {
			seen[id] = true
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *memoryTaskRepository) Save(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(task), nil
}

func (r *memoryTaskRepository) save(task domain.Task) domain.Task {
	if task.ID == "" {
		r.seq++
		task.ID = fmt.Sprintf("task-%d", r.seq)
		r.order = append(r.order, task.ID)
	}
	r.tasks[task.ID] = task
	return task
}

func (r *memoryTaskRepository) SaveAll(_ context.Context, tasks []domain.Task) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		saved = append(saved, r.save(task))
	}
	return saved, nil
}

func (r *memoryTaskRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryTaskRepository) UnassignAll(_ context.Context, userID string) (domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result domain.UpdateResult
	for id, task := range r.tasks {
		if task.AssignedTo(userID) {
			task.UserID = nil
			r.tasks[id] = task
			result.Matched++
			result.Modified++
		}
	}
	return result, nil
}

func (r *memoryTaskRepository) UnassignOne(_ context.Context, userID, taskID string) (domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || !task.AssignedTo(userID) {
		return domain.UpdateResult{}, nil
	}
	task.UserID = nil
	r.tasks[taskID] = task
	return domain.UpdateResult{Matched: 1, Modified: 1}, nil
}

type memoryUserRepository struct {
	mu    sync.Mutex
	seq   int
	users map[string]domain.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]domain.User{}}
}

func (r *memoryUserRepository) FindPage(context.Context, filter.Predicate, int64, int64) ([]domain.User, int64, error) {
	return nil, 0, errors.New("not supported")
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *memoryUserRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}
