package auth

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
	}

	r.GET("/login-activities",
		middleware.AuthMiddleware(),
		middleware.Authorize(rbacService, "login-activity", "read"),
		handler.LoginActivities,
	)
}
