package salaryslip

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
	slips := r.Group("/salary-slips")
	slips.Use(middleware.AuthMiddleware())
	{
		slips.GET("", middleware.Authorize(rbacService, "salary-slip", "read"), handler.GetAll)
		if rdb != nil {
			slips.POST("", middleware.Authorize(rbacService, "salary-slip", "create"), middleware.Idempotency(rdb), handler.Create)
		} else {
			slips.POST("", middleware.Authorize(rbacService, "salary-slip", "create"), handler.Create)
		}
		slips.POST("/:id/generate", middleware.Authorize(rbacService, "salary-slip", "generate"), handler.Generate)
		slips.GET("/:id/pdf", middleware.Authorize(rbacService, "salary-slip", "read"), handler.Download)
	}
}
