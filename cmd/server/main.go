package main

import (
	"log"
	"time"

	"qrserve-be/internal/board"
	"qrserve-be/internal/config"
	"qrserve-be/internal/db"
	"qrserve-be/internal/logger"
	"qrserve-be/internal/menu"
	"qrserve-be/internal/middleware"
	"qrserve-be/internal/order"
	"qrserve-be/internal/payment"
	"qrserve-be/internal/table"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	paymentRepo := payment.NewRepository(database)
	paymentGate := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentSvc := payment.NewService(paymentRepo, paymentGate, orderSvc)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(middleware.RateLimit())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendBaseURL},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	orders := r.Group("/api/orders")
	order.NewHandler(orderSvc).RegisterRoutes(orders)
	board.NewHandler(orderSvc).RegisterRoutes(orders)

	menu.NewHandler().RegisterRoutes(r.Group("/api/menu"))
	table.NewHandler(cfg.FrontendBaseURL).RegisterRoutes(r.Group("/api/tables"))
	payment.NewHandler(paymentSvc).RegisterRoutes(r.Group("/api/payment"))

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(r.Run(":" + cfg.AppPort))
}
