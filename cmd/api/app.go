package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/route"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/repository"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/bill"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/infrastructure/database"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/service"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// App holds the application and its wired dependencies
type App struct {
	router          *gin.Engine
	db              *pgxpool.Pool
	logger          logger.Logger
	lowStockMonitor *service.LowStockMonitor
}

// NewApp wires the database pool, repositories, services and HTTP surface
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositories
	productRepo := repository.NewPostgresProductRepository(db)
	storeRepo := repository.NewPostgresStoreRepository(db)
	staffRepo := repository.NewPostgresStaffRepository(db)
	customerRepo := repository.NewPostgresCustomerRepository(db)
	priceRepo := repository.NewPostgresPriceRepository(db)
	movementRepo := repository.NewPostgresMovementRepository(db)
	inventoryRepo := repository.NewPostgresInventoryRepository(db, productRepo, storeRepo)
	billRepo := repository.NewPostgresBillRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)

	// Services
	billService := bill.NewService(billRepo, staffRepo, customerRepo, productRepo, priceRepo)
	lowStockMonitor := service.NewLowStockMonitor(inventoryRepo, notificationRepo, log)

	// Controllers
	authController := controller.NewAuthController(staffRepo, jwtService, log)
	productController := controller.NewProductController(productRepo, priceRepo, log)
	storeController := controller.NewStoreController(storeRepo, log)
	staffController := controller.NewStaffController(staffRepo, log)
	customerController := controller.NewCustomerController(customerRepo, log)
	inventoryController := controller.NewInventoryController(inventoryRepo, movementRepo, log)
	billController := controller.NewBillController(billService, log)
	notificationController := controller.NewNotificationController(notificationRepo, log)

	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, authController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterStoreRoutes(api, storeController)
	route.RegisterStaffRoutes(api, staffController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterInventoryRoutes(api, inventoryController)
	route.RegisterBillRoutes(api, billController)
	route.RegisterNotificationRoutes(api, notificationController)

	return &App{
		router:          router,
		db:              db,
		logger:          log,
		lowStockMonitor: lowStockMonitor,
	}, nil
}

// Start runs the HTTP server and the low-stock monitor until an interrupt
// arrives, then shuts both down.
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	go a.lowStockMonitor.Start(monitorCtx)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		stopMonitor()
		return err
	case sig := <-quit:
		a.logger.Info("shutting down", "signal", sig.String())
	}

	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Close releases the application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
