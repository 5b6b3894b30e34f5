package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/handler"
	"github.com/vidro-absolut/study-api/internal/middleware"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/internal/repository"
	"github.com/vidro-absolut/study-api/internal/service"
	"github.com/vidro-absolut/study-api/pkg/config"
	"github.com/vidro-absolut/study-api/pkg/logger"
	corsmiddleware "github.com/vidro-absolut/study-api/pkg/middleware/cors"
	reqidmiddleware "github.com/vidro-absolut/study-api/pkg/middleware/requestid"
)

func newRouter(cfg *config.Config, logr *zap.Logger, db *sqlx.DB, cacheRepo *repository.CacheRepository, cacheEnabled bool) *gin.Engine {
	validate := service.NewValidator()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cacheEnabled)

	studyRepo := repository.NewStudyCycleRepository(db)
	prefRepo := repository.NewStudyPreferenceRepository(db)

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		UserTokenSecret:   cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		AdminTokenSecret:  cfg.Admin.TokenSecret,
		AdminTokenExpiry:  cfg.Admin.TokenTTL,
	})
	accessSvc := service.NewAccessService(repository.NewPurchaseRepository(db), logr)
	cycleSvc := service.NewStudyCycleService(studyRepo, prefRepo, cacheSvc, metricsSvc, validate, logr, service.StudyCycleServiceConfig{
		DefaultWeeklyHours: cfg.Study.DefaultWeeklyHours,
		CacheTTL:           cfg.Cache.TTL,
	})
	prefSvc := service.NewPreferenceService(prefRepo, cacheSvc, validate, logr, cfg.Study.DefaultWeeklyHours)
	routineSvc := service.NewRoutineService(repository.NewRoutineRepository(db), validate, logr)
	customerRepo := repository.NewCustomerRepository(db)
	checkoutSvc := service.NewCheckoutService(customerRepo, metricsSvc, validate, logr, service.CheckoutConfig{
		PixKey:     cfg.Checkout.PixKey,
		Recipient:  cfg.Checkout.Recipient,
		PriceCents: cfg.Checkout.PriceCents,
		ContactURL: cfg.Checkout.ContactURL,
	})
	adminSvc := service.NewAdminService(customerRepo, service.NewExportService(nil, nil), logr, cfg.Checkout.PriceCents)

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	cycleHandler := handler.NewStudyCycleHandler(cycleSvc)
	prefHandler := handler.NewPreferenceHandler(prefSvc)
	routineHandler := handler.NewRoutineHandler(routineSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	adminHandler := handler.NewAdminHandler(authSvc, adminSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())

	api.GET("/cpf/validate", checkoutHandler.ValidateCPF)
	api.POST("/checkout", checkoutHandler.Register)
	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(authSvc.ValidateAdminToken), middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/customers", adminHandler.ListCustomers)
	admin.GET("/customers/export", adminHandler.ExportCustomers)
	admin.DELETE("/customers", adminHandler.ClearCustomers)
	admin.GET("/metrics", metricsHandler.Summary)

	study := api.Group("/study")
	study.Use(middleware.JWT(authSvc.ValidateToken), middleware.RequireAccess(accessSvc))
	study.GET("/preferences", prefHandler.Get)
	study.PUT("/mode", prefHandler.SelectMode)

	study.GET("/cycle", cycleHandler.Overview)
	study.PUT("/cycle/budget", cycleHandler.SetWeeklyBudget)
	study.POST("/cycle/subjects", cycleHandler.AddSubject)
	study.PATCH("/cycle/subjects/:id/weight", cycleHandler.UpdateWeight)
	study.DELETE("/cycle/subjects/:id", cycleHandler.RemoveSubject)
	study.POST("/cycle/subjects/:id/toggle", cycleHandler.ToggleHour)
	study.POST("/cycle/reset", cycleHandler.ResetProgress)

	study.GET("/routine", routineHandler.List)
	study.POST("/routine", routineHandler.Add)
	study.PATCH("/routine/:id", routineHandler.Rename)
	study.POST("/routine/:id/toggle", routineHandler.ToggleDay)
	study.DELETE("/routine/:id", routineHandler.Delete)

	return r
}
