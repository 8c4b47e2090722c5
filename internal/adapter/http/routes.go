package http

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobNatural/task-manager/internal/adapter/http/handlers"
	"github.com/JacobNatural/task-manager/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
) {
	r.NoRoute(middleware.LanguageMiddleware(), handlers.NoRoute)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tasks := api.Group("/tasks")
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("/all", taskHandler.SearchTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)

		users := api.Group("/users")
		users.GET("/:id", userHandler.GetUser)
		users.GET("/by-username/:username", userHandler.GetUserByUsername)
		users.POST("/all", userHandler.SearchUsers)
		users.POST("", userHandler.CreateUser)
		users.PATCH("/:id", userHandler.AddTasks)
		users.PATCH("/:id/tasks/:taskId", userHandler.RemoveAssignedTask)
		users.PATCH("/:id/tasks/:taskId/complete", userHandler.CompleteTask)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}
