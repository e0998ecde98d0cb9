package enquiry

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
	enquiries := r.Group("/enquiries")
	{
		// Public: backed by the website contact form.
		enquiries.POST("", middleware.RateLimitByIP(0.5, 5), handler.Create)

		enquiries.GET("",
			middleware.AuthMiddleware(),
			middleware.Authorize(rbacService, "enquiry", "read"),
			handler.GetAll,
		)
		enquiries.PUT("/:id",
			middleware.AuthMiddleware(),
			middleware.Authorize(rbacService, "enquiry", "update"),
			handler.Update,
		)
	}
}
