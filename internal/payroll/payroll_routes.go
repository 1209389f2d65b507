package payroll

import (
	"go-paydesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the payroll endpoints. Approve and pay are guarded by
// the idempotency middleware when redis is available: a retried button click
// must not attempt the transition twice.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	transitionRoute := func(h gin.HandlerFunc) []gin.HandlerFunc {
		guards := []gin.HandlerFunc{middleware.RateLimitByUser(0.5, 2)}
		if rdb != nil {
			guards = append(guards, middleware.Idempotency(rdb))
		}
		return append(guards, h)
	}

	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		payroll.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			handler.GetStats,
		)

		payroll.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		payroll.GET("/:id/payslip",
			middleware.RateLimitByUser(1, 3),
			handler.Payslip,
		)

		payroll.POST("/:id/approve", transitionRoute(handler.Approve)...)

		payroll.POST("/:id/pay", transitionRoute(handler.MarkPaid)...)
	}
}
