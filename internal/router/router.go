package router

import (
	"time"

	"axonet/internal/config"
	"axonet/internal/handler"
	"axonet/internal/infra"
	"axonet/internal/middleware"
	"axonet/internal/model"
	"axonet/internal/repository"
	"axonet/internal/service"
	"axonet/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	rfqRepo := repository.NewRFQRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	fileRepo := repository.NewRFQFileRepository(db)
	messageRepo := repository.NewRFQMessageRepository(db)
	networkRepo := repository.NewNetworkRequestRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	rfqSvc := service.NewRFQService(rfqRepo)
	quoteSvc := service.NewQuoteService(quoteRepo, rfqRepo, poRepo)
	poSvc := service.NewPurchaseOrderService(poRepo)
	messageSvc := service.NewMessageService(messageRepo, rfqRepo)
	fileSvc := service.NewFileService(fileRepo, rfqRepo, infra.NewLocalStorage(cfg.UploadStoragePath, "/uploads"))
	onboardingSvc := service.NewOnboardingService(networkRepo, userRepo, dispatcher, cfg.LoginURL)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	rfqsH := handler.NewRFQsHandler(rfqSvc)
	quotesH := handler.NewQuotesHandler(quoteSvc)
	posH := handler.NewPurchaseOrdersHandler(poSvc, infra.NewPOPDF())
	messagesH := handler.NewMessagesHandler(messageSvc)
	filesH := handler.NewFilesHandler(fileSvc)
	networkH := handler.NewNetworkRequestsHandler(onboardingSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static("/uploads", cfg.UploadStoragePath)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Onboarding application — the only other public write endpoint
	r.POST("/v1/network-requests", networkH.Submit)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, userRepo)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/password", authH.ChangePassword)
		v1.GET("/auth/me", authH.Me)

		// RFQs — creation is buyer-only; reads are authorized in the service
		v1.POST("/rfqs", middleware.RequireRole(model.RoleBuyer), rfqsH.Create)
		v1.GET("/rfqs/mine", middleware.RequireRole(model.RoleBuyer), rfqsH.ListMine)
		v1.GET("/rfqs/available", middleware.RequireRole(model.RoleSupplier), rfqsH.ListAvailable)
		v1.GET("/rfqs/:id", rfqsH.Get)

		// RFQ sub-resources
		v1.GET("/rfqs/:id/quotes", quotesH.ListForRFQ)
		v1.GET("/rfqs/:id/messages", messagesH.List)
		v1.POST("/rfqs/:id/messages", messagesH.Send)
		v1.GET("/rfqs/:id/files", filesH.List)
		v1.POST("/rfqs/:id/files", filesH.Upload)

		// Quotes
		v1.POST("/quotes", middleware.RequireRole(model.RoleSupplier), quotesH.Submit)
		v1.POST("/quotes/accept", middleware.RequireRole(model.RoleBuyer), quotesH.Accept)
		v1.GET("/quotes/:id", quotesH.Get)

		// Purchase orders
		v1.GET("/purchase-orders", posH.ListMine)
		v1.GET("/purchase-orders/:id", posH.Get)
		v1.GET("/purchase-orders/:id/pdf", posH.DownloadPDF)

		// Admin
		admin := v1.Group("", middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/users", usersH.List)
			admin.GET("/users/:id", usersH.Get)
			admin.GET("/network-requests", networkH.List)
			admin.GET("/network-requests/:id", networkH.Get)
			admin.POST("/network-requests/:id/approve", networkH.Approve)
			admin.POST("/network-requests/:id/reject", networkH.Reject)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
