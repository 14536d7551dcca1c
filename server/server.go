package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/codewithdark-git/khanana/pkg/auth"
	"github.com/codewithdark-git/khanana/pkg/config"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Notifier receives persisted orders for out-of-band admin
// notification. *notify.Dispatcher satisfies it.
type Notifier interface {
	OrderCreated(order *models.Order)
}

// AdminJournal is the durable journal behind the dashboard: audit
// entries for admin actions and the fallback records for order
// notifications that could not be emailed. *repository.MongoRepository
// satisfies it; a nil journal disables both.
type AdminJournal interface {
	CreateAuditLog(ctx context.Context, log *repository.AuditLog) error
	GetNotifications(ctx context.Context, orderID string, limit int64) ([]*repository.NotificationRecord, error)
}

// Stores bundles the persistence dependencies of the HTTP surface.
type Stores struct {
	Products repository.ProductStore
	Orders   repository.OrderStore
	Reviews  repository.ReviewStore
	Media    repository.MediaStore
	Settings repository.SettingsStore
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	stores   Stores
	cache    *repository.RedisRepository
	audit    AdminJournal
	auth     *auth.Authenticator
	notifier Notifier
}

func NewServer(cfg *config.Config, logger *zap.Logger, stores Stores, cache *repository.RedisRepository, audit AdminJournal, authenticator *auth.Authenticator, notifier Notifier) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		stores:   stores,
		cache:    cache,
		audit:    audit,
		auth:     authenticator,
		notifier: notifier,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", s.login)
			admin.POST("/logout", s.logout)
		}

		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/:id", s.getProduct)
			products.POST("", s.requireAuth(), s.createProduct)
			products.PUT("/:id", s.requireAuth(), s.updateProduct)
			products.DELETE("/:id", s.requireAuth(), s.deleteProduct)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.POST("", s.createOrder)
			orders.GET("/:id", s.getOrder)
			orders.PATCH("/:id", s.requireAuth(), s.updateOrderStatus)
			orders.DELETE("/:id", s.requireAuth(), s.deleteOrder)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", s.listReviews)
			reviews.POST("", s.createReview)
			reviews.PATCH("/:id", s.requireAuth(), s.updateReview)
			reviews.DELETE("/:id", s.requireAuth(), s.deleteReview)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", s.getSettings)
			settings.PUT("", s.requireAuth(), s.updateSettings)
		}

		media := api.Group("/media")
		{
			media.GET("", s.listMedia)
			media.POST("", s.requireAuth(), s.addMedia)
			media.DELETE("", s.requireAuth(), s.deleteMedia)
		}

		api.POST("/notify-admin", s.requireAuth(), s.notifyAdmin)
		api.GET("/notifications", s.requireAuth(), s.listNotifications)
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Storefront API starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// Router exposes the configured engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// auditAction writes an admin audit entry off the request path.
func (s *Server) auditAction(action, entityID string, data map[string]interface{}) {
	if s.audit == nil {
		return
	}
	go s.audit.CreateAuditLog(context.Background(), &repository.AuditLog{
		Action:   action,
		EntityID: entityID,
		Data:     data,
	})
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
