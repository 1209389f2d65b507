package expense

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
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	expenses.Use(middleware.ContextLogger(logger))
	{
		expenses.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		expenses.GET("/totals",
			middleware.RateLimitByUser(3, 10),
			handler.CategoryTotals,
		)

		expenses.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		expenses.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		expenses.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		expenses.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RoleMiddleware("admin"),
			handler.Delete,
		)
	}
}
