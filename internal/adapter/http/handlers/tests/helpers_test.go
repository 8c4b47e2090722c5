package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/JacobNatural/task-manager/internal/adapter/http"
	"github.com/JacobNatural/task-manager/internal/adapter/http/handlers"
	"github.com/JacobNatural/task-manager/pkg/translator"
)

func newRouter(taskService *taskServiceMock, userService *userServiceMock) *gin.Engine {
	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler("mysql", func(context.Context) error { return nil }),
		handlers.NewTaskHandler(taskService),
		handlers.NewUserHandler(userService),
	)
	return router
}

func serve(router *gin.Engine, method, target, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var got T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}
