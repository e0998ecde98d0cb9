package leave

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.Authorize(rbacService, "leave", "read"), handler.GetAll)
		if rdb != nil {
			leaves.POST("", middleware.Authorize(rbacService, "leave", "create"), middleware.Idempotency(rdb), handler.Create)
		} else {
			leaves.POST("", middleware.Authorize(rbacService, "leave", "create"), handler.Create)
		}
		leaves.POST("/bulk-action", middleware.Authorize(rbacService, "leave", "resolve"), handler.BulkAction)
		leaves.POST("/auto-approve", middleware.Authorize(rbacService, "leave", "resolve"), handler.AutoApprove)
		leaves.POST("/:id/approve", middleware.Authorize(rbacService, "leave", "resolve"), handler.Approve)
		leaves.POST("/:id/deny", middleware.Authorize(rbacService, "leave", "resolve"), handler.Deny)
	}
}
