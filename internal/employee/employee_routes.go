package employee

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(rbacService, "employee", "read"), handler.GetAll)
		employees.GET("/options", middleware.Authorize(rbacService, "employee", "read"), handler.GetOptions)
		employees.POST("", middleware.Authorize(rbacService, "employee", "create"), handler.Create)
		employees.PUT("/:id", middleware.Authorize(rbacService, "employee", "update"), handler.Update)
	}
}
