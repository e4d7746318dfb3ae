package handlers

import (
	"net/http"

	"github.com/SscSPs/cashclaim/cmd/docs"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/middleware"
	"github.com/SscSPs/cashclaim/internal/platform/config"
	"github.com/SscSPs/cashclaim/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter guards the credential endpoints; posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, services.User, services.TokenService, loginLimiter)

	setupAPIV1Routes(r, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(services.TokenService),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerLedgerRoutes(v1, services.Balance, services.Transactions)
	registerTransferRoutes(v1, services.Transfer)
	registerProjectRoutes(v1, services.Project)
	registerReimbursementRoutes(v1, services.Reimbursement)
	registerUserRoutes(v1, services.User)
	registerReportRoutes(v1, services.Report)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
