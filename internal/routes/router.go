package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientRepository "tracker-rental/internal/client/repository"
	clientService "tracker-rental/internal/client/service"
	"tracker-rental/internal/config"
	"tracker-rental/internal/database"
	"tracker-rental/internal/delivery/http/handler"
	deviceRepository "tracker-rental/internal/device/repository"
	deviceService "tracker-rental/internal/device/service"
	"tracker-rental/internal/logger"
	"tracker-rental/internal/middleware"
	rentalRepository "tracker-rental/internal/rental/repository"
	rentalService "tracker-rental/internal/rental/service"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(1 << 20))
	if cfg.RateLimit.GeneralRPS > 0 {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	clientRepo := clientRepository.NewClientRepository(db)
	deviceRepo := deviceRepository.NewDeviceRepository(db)
	rentalRepo := rentalRepository.NewRentalRepository(db)

	clientHandler := handler.NewClientHandler(clientService.NewService(clientRepo, rentalRepo))
	deviceHandler := handler.NewDeviceHandler(deviceService.NewService(deviceRepo, rentalRepo))
	rentalHandler := handler.NewRentalHandler(rentalService.NewService(rentalRepo, clientRepo, deviceRepo))

	root := router.Group("")
	{
		clientHandler.RegisterRoutes(root)
		deviceHandler.RegisterRoutes(root)
		rentalHandler.RegisterRoutes(root)
	}

	logger.Info("All routes initialized")
	return router
}
