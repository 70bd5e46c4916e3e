package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/example/craftshop/pkg/admin"
	"github.com/example/craftshop/pkg/auth"
	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/catalog"
	"github.com/example/craftshop/pkg/checkout"
	"github.com/example/craftshop/pkg/config"
	"github.com/example/craftshop/pkg/newsletter"
	"github.com/example/craftshop/pkg/reviews"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const sessionCookie = "craftshop_session"

// Server is the storefront HTTP API.
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	router     *gin.Engine
	sessions   *cart.Manager
	catalog    *catalog.Service
	checkout   *checkout.Service
	reviews    *reviews.Service
	newsletter *newsletter.Service
	admin      *admin.Service
	authClient *auth.Client
	roles      *auth.RoleStore
}

type Deps struct {
	Sessions   *cart.Manager
	Catalog    *catalog.Service
	Checkout   *checkout.Service
	Reviews    *reviews.Service
	Newsletter *newsletter.Service
	Admin      *admin.Service
	AuthClient *auth.Client
	Roles      *auth.RoleStore
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:     cfg,
		logger:     logger,
		router:     router,
		sessions:   deps.Sessions,
		catalog:    deps.Catalog,
		checkout:   deps.Checkout,
		reviews:    deps.Reviews,
		newsletter: deps.Newsletter,
		admin:      deps.Admin,
		authClient: deps.AuthClient,
		roles:      deps.Roles,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	v1.Use(s.sessionMiddleware())
	v1.Use(auth.OptionalUser(s.authClient))
	{
		products := v1.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/:slug", s.getProduct)
			products.GET("/:slug/reviews", s.listReviews)
			products.POST("/:slug/reviews", s.addReview)
			products.GET("/:slug/questions", s.listQuestions)
			products.POST("/:slug/questions", s.addQuestion)
		}
		v1.POST("/questions/:id/answers", s.addAnswer)

		v1.GET("/search", s.search)

		cartGroup := v1.Group("/cart")
		{
			cartGroup.GET("", s.getCart)
			cartGroup.POST("/items", s.addCartItem)
			cartGroup.PUT("/items/:id", s.updateCartItem)
			cartGroup.DELETE("/items/:id", s.removeCartItem)
			cartGroup.DELETE("", s.clearCart)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", s.getWishlist)
			wishlist.POST("/items", s.addWishlistItem)
			wishlist.DELETE("/items/:id", s.removeWishlistItem)
			wishlist.DELETE("", s.clearWishlist)
		}

		co := v1.Group("/checkout")
		{
			co.POST("/quote", s.quoteCheckout)
			co.POST("/confirm", s.confirmCheckout)
		}
		v1.GET("/orders/recent", s.recentOrder)
		v1.GET("/orders/:number", s.getOrder)

		v1.POST("/newsletter/subscribe", s.subscribeNewsletter)
		v1.POST("/contact", s.submitContact)

		v1.POST("/recently-viewed", s.recordView)
		v1.GET("/recently-viewed", s.recentlyViewed)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(auth.RequireUser(s.authClient))
		adminGroup.Use(auth.RequireAdmin(s.roles))
		{
			adminGroup.GET("/contact-messages", s.listContactMessages)
			adminGroup.PUT("/contact-messages/:id/status", s.updateContactMessageStatus)
			adminGroup.GET("/user-roles", s.listUserRoles)
			adminGroup.POST("/product-media/import", s.importProductMedia)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Storefront API starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// Router exposes the configured engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
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
