package routes

import (
	"github.com/estefano99/pedidos-pos/backendapi"
	"github.com/estefano99/pedidos-pos/configs"
	"github.com/estefano99/pedidos-pos/controllers"
	"github.com/estefano99/pedidos-pos/middlewares"
	"github.com/estefano99/pedidos-pos/printing"
	"github.com/estefano99/pedidos-pos/repository"
	"github.com/estefano99/pedidos-pos/services"
	"github.com/estefano99/pedidos-pos/utils"
	"github.com/estefano99/pedidos-pos/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Colaboradores
	backend := backendapi.NewClient(cfg.BackendURL)
	hub := ws.NewEventHub()
	go hub.Run()

	// Repositorios
	orderRepo := repository.NewOrderRepository(db)
	stationRepo := repository.NewStationRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Servicios
	tenant := func() (string, error) { return utils.TenantFromToken(backend.Token()) }
	orderSvc := services.NewOrderService(tenant, backend, orderRepo)
	catalogSvc := services.NewCatalogService(catalogRepo, backend)
	dispatcher := printing.NewDispatcher(cfg.TCPPrintTimeout)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg, backend)
	orderCtrl := controllers.NewOrderController(orderSvc, catalogSvc, hub)
	historyCtrl := controllers.NewHistoryController(orderRepo, backend, hub)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	stationCtrl := controllers.NewStationController(stationRepo)
	printCtrl := controllers.NewPrintController(stationRepo, orderRepo, dispatcher, hub)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (login público, el resto con token local)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/session", authCtrl.Session)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Conexión con el backend del tenant
	r.POST("/auth/backend-login", auth, authCtrl.BackendLogin)

	// Catálogo
	catalog := r.Group("/catalog", auth)
	{
		catalog.POST("/sync", catalogCtrl.Sync)
		catalog.GET("/products", catalogCtrl.Products)
		catalog.GET("/products/:id", catalogCtrl.Product)
		catalog.GET("/ingredients", catalogCtrl.Ingredients)
		catalog.GET("/categories", catalogCtrl.Categories)
	}

	// Pedido en curso
	order := r.Group("/order", auth)
	{
		order.POST("", orderCtrl.Start)
		order.GET("", orderCtrl.Current)
		order.DELETE("", orderCtrl.Clear)
		order.POST("/items", orderCtrl.AddItem)
		order.POST("/items/preview", orderCtrl.PreviewItem)
		order.PUT("/items/:id", orderCtrl.ReplaceItem)
		order.DELETE("/items/:id", orderCtrl.RemoveItem)
		order.POST("/submit", orderCtrl.Submit)
	}

	// Órdenes confirmadas
	ordersGroup := r.Group("/orders", auth)
	{
		ordersGroup.GET("", historyCtrl.List)
		ordersGroup.POST("/refresh", historyCtrl.Refresh)
		ordersGroup.PATCH("/:id/status", historyCtrl.UpdateStatus)
		ordersGroup.POST("/:id/print", printCtrl.PrintOrder)
	}

	// Impresión directa
	printGroup := r.Group("/print", auth)
	{
		printGroup.POST("", printCtrl.PrintRaw)
	}

	// Estaciones (solo admin)
	stations := r.Group("/stations", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		stations.GET("", stationCtrl.List)
		stations.POST("", stationCtrl.Create)
		stations.PUT("/:id", stationCtrl.Update)
		stations.DELETE("/:id", stationCtrl.Delete)
		stations.POST("/:name/test-print", printCtrl.TestPrint)
	}

	// Eventos hacia la UI
	r.GET("/ws/events", hub.HandleWS)
}
