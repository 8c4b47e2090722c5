package dto

type TaskItem struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CreationDate string  `json:"creationDate"`
	Status       string  `json:"status"`
	UserID       *string `json:"userId"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,taskTitle"`
	Description string `json:"description" binding:"required,taskDescription"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required,taskTitle"`
	Description string `json:"description" binding:"required,taskDescription"`
	Status      string `json:"status" binding:"required,oneof=TO_DO IN_PROGRESS DONE"`
}
