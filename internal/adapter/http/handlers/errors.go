package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JacobNatural/task-manager/internal/adapter/http/middleware"
	"github.com/JacobNatural/task-manager/internal/adapter/http/validation"
	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/pkg/apierrors"
)

// errorMessages maps each domain error to its translation key.
var errorMessages = []struct {
	err    error
	msgKey string
}{
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrTasksNotFound, apierrors.MsgTasksNotFound},
	{domain.ErrUserNotFound, apierrors.MsgUserNotFound},
	{domain.ErrTaskNotAssignable, apierrors.MsgTaskNotAssignable},
	{domain.ErrTaskNotAssignedToUser, apierrors.MsgTaskNotAssignedToUser},
	{domain.ErrTaskAlreadyCompleted, apierrors.MsgTaskAlreadyCompleted},
	{domain.ErrInvalidFilter, apierrors.MsgInvalidFilter},
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidState, domain.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the translated error for err. Infrastructure errors
// are logged and answered with an opaque message.
func respondError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)
	status := statusFor(domain.KindOf(err))

	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("route", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(status, apierrors.CreateError(status, apierrors.MsgInternalError, lang))
		return
	}

	msgKey := apierrors.MsgInternalError
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			msgKey = m.msgKey
			break
		}
	}
	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

func respondInvalidPage(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateErrorWithData(http.StatusBadRequest, apierrors.MsgInvalidPagination, middleware.GetLang(c),
			map[string]any{"Max": validation.MaxPageSize}),
	)
}

// NoRoute answers unknown paths with the JSON error shape.
func NoRoute(c *gin.Context) {
	c.JSON(
		http.StatusNotFound,
		apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
	)
}
