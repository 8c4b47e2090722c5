package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JacobNatural/task-manager/internal/adapter/http/dto"
	"github.com/JacobNatural/task-manager/internal/adapter/http/mapper"
	"github.com/JacobNatural/task-manager/internal/adapter/http/validation"
	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/ports"
	"github.com/JacobNatural/task-manager/pkg/apierrors"
)

const defaultTaskPageSize = 10

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToTaskItem(task)))
}

// SearchTasks returns one page of tasks. The filter body is optional; an
// absent body matches every task.
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	page, size, err := validation.ParsePage(c, defaultTaskPageSize)
	if err != nil {
		respondInvalidPage(c)
		return
	}

	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	result, err := h.taskService.FindPage(c.Request.Context(), page, size, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToTaskPage(result)))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	id, err := h.taskService.Create(c.Request.Context(), mapper.ToCreateTaskInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.IDResponse{ID: id}))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	id, err := h.taskService.Update(c.Request.Context(), c.Param("id"), mapper.ToUpdateTaskInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.IDResponse{ID: id}))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := h.taskService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.IDResponse{ID: id}))
}

// bindFilters decodes the optional filter body. It answers the request
// itself when the body is malformed.
func bindFilters(c *gin.Context) (domain.FilterSet, bool) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, apierrors.MsgInvalidFilter)
		return nil, false
	}
	return mapper.ToFilterSet(req), true
}
