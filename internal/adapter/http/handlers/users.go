package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JacobNatural/task-manager/internal/adapter/http/dto"
	"github.com/JacobNatural/task-manager/internal/adapter/http/mapper"
	"github.com/JacobNatural/task-manager/internal/adapter/http/validation"
	"github.com/JacobNatural/task-manager/internal/core/ports"
	"github.com/JacobNatural/task-manager/pkg/apierrors"
)

const defaultUserPageSize = 20

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToUserItem(user)))
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userService.FindByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToUserItem(user)))
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	page, size, err := validation.ParsePage(c, defaultUserPageSize)
	if err != nil {
		respondInvalidPage(c)
		return
	}

	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	result, err := h.userService.FindPage(c.Request.Context(), page, size, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToUserPage(result)))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	id, err := h.userService.Create(c.Request.Context(), mapper.ToCreateUserInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.IDResponse{ID: id}))
}

// AddTasks assigns every listed task to the user, or none of them.
func (h *UserHandler) AddTasks(c *gin.Context) {
	var req dto.AddTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	ids, err := h.userService.AddTasks(c.Request.Context(), c.Param("id"), req.TaskIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToIDResponses(ids)))
}

func (h *UserHandler) RemoveAssignedTask(c *gin.Context) {
	result, err := h.userService.RemoveAssignedTask(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(mapper.ToUpdateResponse(result)))
}

func (h *UserHandler) CompleteTask(c *gin.Context) {
	id, err := h.userService.CompleteTask(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.IDResponse{ID: id}))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.IDResponse{ID: id}))
}
