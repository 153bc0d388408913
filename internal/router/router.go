package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tastebite/tastebite-backend/config"
	"github.com/tastebite/tastebite-backend/internal/app/controller"
	"github.com/tastebite/tastebite-backend/internal/middleware"
)

type Router struct {
	restaurantController *controller.RestaurantController
	uploadController     *controller.UploadController
	config               *config.Config
}

func NewRouter(
	restaurantController *controller.RestaurantController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		restaurantController: restaurantController,
		uploadController:     uploadController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "TASTEBITE API is running",
		})
	})

	restaurant := router.Group("/api/restaurant")
	{
		restaurant.GET("/getMenu", r.restaurantController.GetMenu)
		restaurant.GET("/getCartItems", r.restaurantController.GetCartItems)
		restaurant.PATCH("/increaseCartItem/:id", r.restaurantController.IncreaseCartItem)
		restaurant.PATCH("/decreaseCartItem/:id", r.restaurantController.DecreaseCartItem)
		restaurant.DELETE("/removeCartItem/:id", r.restaurantController.RemoveCartItem)

		restaurant.POST("/addMenuItem", r.restaurantController.AddMenuItem)
		if r.uploadController != nil {
			restaurant.POST("/uploadImage", r.uploadController.UploadImage)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
