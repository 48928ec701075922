package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Warehouse{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderSequence{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	reportRepo := repository.NewReportRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, wsHub)
	partnerService := service.NewPartnerService(customerRepo, supplierRepo, orderRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, supplierRepo, wsHub)
	reportService := service.NewReportService(reportRepo)

	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(partnerService)
	supplierHandler := handler.NewSupplierHandler(partnerService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseRepo)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// Product Routes
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/low-stock", productHandler.GetLowStockProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Category Routes
	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	// Customer Routes
	api.Get("/customers", customerHandler.GetCustomers)
	api.Post("/customers", customerHandler.CreateCustomer)
	api.Get("/customers/:id", customerHandler.GetCustomer)
	api.Put("/customers/:id", customerHandler.UpdateCustomer)
	api.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Supplier Routes
	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Get("/suppliers/:id", supplierHandler.GetSupplier)
	api.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	// Warehouse Routes
	api.Get("/warehouses", warehouseHandler.GetWarehouses)
	api.Post("/warehouses", warehouseHandler.CreateWarehouse)
	api.Get("/warehouses/:id", warehouseHandler.GetWarehouse)
	api.Put("/warehouses/:id", warehouseHandler.UpdateWarehouse)
	api.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)

	// Order Routes
	api.Get("/orders", orderHandler.GetOrders)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Put("/orders/:id", orderHandler.UpdateOrder)
	api.Delete("/orders/:id", orderHandler.DeleteOrder)

	// Dashboard / Report Routes
	api.Get("/dashboard/stats", reportHandler.GetDashboardStats)
	api.Get("/dashboard/sales-chart", reportHandler.GetSalesChart)
	api.Get("/dashboard/stock-movement", reportHandler.GetStockMovement)
	api.Get("/reports/inventory", reportHandler.GetInventoryValuation)
	api.Get("/reports/inventory/export", reportHandler.ExportInventoryValuation)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
