package mapper

import (
	"time"

	"github.com/JacobNatural/task-manager/internal/adapter/http/dto"
	"github.com/JacobNatural/task-manager/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreationDate.UTC().Format(time.RFC3339Nano),
		Status:       string(task.Status),
	}

	if task.UserID != nil {
		value := *task.UserID
		item.UserID = &value
	}

	return item
}

func ToTaskPage(page domain.Page[domain.Task]) dto.Page[dto.TaskItem] {
	return dto.Page[dto.TaskItem]{
		List:  ToTaskItems(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	}
}

func ToCreateTaskInput(req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{Title: req.Title, Description: req.Description}
}

func ToUpdateTaskInput(req dto.UpdateTaskRequest) domain.UpdateTaskInput {
	return domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	}
}
