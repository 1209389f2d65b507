package company

import (
	"go-paydesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		companies.GET("/revenue",
			middleware.RateLimitByUser(3, 10),
			handler.Revenue,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			handler.Create,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		companies.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RoleMiddleware("admin"),
			handler.Delete,
		)
	}
}
