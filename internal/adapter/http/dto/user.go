package dto

type UserItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,personName=30"`
	Surname  string `json:"surname" binding:"required,personName=40"`
	Username string `json:"username" binding:"required,username"`
}

type AddTasksRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required,min=1,dive,required,notblank"`
}
