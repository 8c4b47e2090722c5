package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/filter"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

// UserService owns users and routes every change to task ownership through
// the task service, after checking that the user exists.
type UserService struct {
	userRepository ports.UserRepository
	taskService    ports.TaskService
}

func NewUserService(userRepository ports.UserRepository, taskService ports.TaskService) *UserService {
	return &UserService{userRepository: userRepository, taskService: taskService}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (string, error) {
	user, err := s.userRepository.Save(ctx, domain.User{
		Name:     input.Name,
		Surname:  input.Surname,
		Username: input.Username,
	})
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	zap.L().Info("user created", zap.String("user_id", user.ID))
	return user.ID, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return user, nil
}

func (s *UserService) FindPage(ctx context.Context, page, size int64, filters domain.FilterSet) (domain.Page[domain.User], error) {
	predicate, err := filter.UserSchema.Compile(filters)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	users, total, err := s.userRepository.FindPage(ctx, predicate, page, size)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("find user page: %w", err)
	}

	return domain.Page[domain.User]{Items: users, Total: total, Page: page, Size: size}, nil
}

func (s *UserService) AddTasks(ctx context.Context, userID string, taskIDs []string) ([]string, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.taskService.AssignBatch(ctx, userID, taskIDs)
}

func (s *UserService) RemoveAssignedTask(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return domain.UpdateResult{}, err
	}
	return s.taskService.UnassignOne(ctx, userID, taskID)
}

func (s *UserService) CompleteTask(ctx context.Context, userID, taskID string) (string, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return "", err
	}
	return s.taskService.Complete(ctx, userID, taskID)
}

// Delete unassigns the user's tasks and only then removes the user.
func (s *UserService) Delete(ctx context.Context, userID string) (string, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return "", err
	}

	if _, err := s.taskService.UnassignAll(ctx, userID); err != nil {
		return "", err
	}

	if err := s.userRepository.DeleteByID(ctx, userID); err != nil {
		return "", fmt.Errorf("delete user %s: %w", userID, err)
	}

	zap.L().Info("user deleted", zap.String("user_id", userID))
	return userID, nil
}

func (s *UserService) ensureExists(ctx context.Context, userID string) error {
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("find user %s: %w", userID, err)
	}
	return nil
}

var _ ports.UserService = (*UserService)(nil)
