package quotation

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
	quotations := r.Group("/quotations")
	{
		// Public: backed by the website pricing form.
		quotations.POST("", middleware.RateLimitByIP(0.5, 5), handler.Create)

		authed := quotations.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("", middleware.Authorize(rbacService, "quotation", "read"), handler.GetAll)
			authed.PUT("/:id", middleware.Authorize(rbacService, "quotation", "update"), handler.Update)
			authed.DELETE("/:id", middleware.Authorize(rbacService, "quotation", "delete"), handler.Delete)
		}
	}
}
