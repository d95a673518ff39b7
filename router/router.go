package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/controllers"
	"github.com/hawkerhub/hawker-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	stallCtrl := controllers.NewStallController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)
	searchCtrl := controllers.NewSearchController(db)
	locationCtrl := controllers.NewLocationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to HawkerHub",
			"search":  "/hawkers/suggest?q=",
			"map":     "/locations/markers",
		})
	})

	// Stricter rate limit on login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- SEARCH --
	r.GET("/hawkers", stallCtrl.GetAllHawkers)
	r.GET("/hawkers/suggest", searchCtrl.Suggest)

	// -- STALL LISTING (hawker selected by name, like ?hawker= on the old page) --
	r.GET("/stall-info/:hawkerName", stallCtrl.GetStallPage)
	r.GET("/hawkers/:hawkerName/stalls", stallCtrl.GetStallsByHawker)
	r.GET("/hawkers/:hawkerName/cuisines", stallCtrl.GetCuisinesByHawker)

	// -- STALL & MENU --
	r.GET("/stall/:stallId", stallCtrl.GetStallByID)
	r.GET("/stall/:stallId/menu", menuCtrl.GetMenuByStall)
	r.GET("/stall/:stallId/menu/bestsellers", menuCtrl.GetBestsellers)
	r.GET("/stall/:stallId/menu/categories", menuCtrl.GetCategoriesByStall)

	// -- MAP LOCATOR --
	r.GET("/locations", locationCtrl.GetLocations)
	r.GET("/locations/markers", locationCtrl.GetMarkers)
	r.POST("/locations/markers/refresh", locationCtrl.RefreshMarkers)

	// -- LIVE UPDATES --
	ws := r.Group("/ws")
	ws.Use(middlewares.OptionalAuthMiddleware())
	{
		ws.GET("", controllers.LiveHandler)
	}

	// ----------------------------------------------------------------
	//                      CART & ORDERS
	// ----------------------------------------------------------------
	// Reads degrade to an empty cart without a session
	cartRead := r.Group("/cart")
	cartRead.Use(middlewares.OptionalAuthMiddleware())
	{
		cartRead.GET("", cartCtrl.GetCart)
		cartRead.GET("/count", cartCtrl.GetCount)
		cartRead.GET("/items/:itemId/quantity", cartCtrl.GetItemQuantity)
	}

	// Mutations need a signed-in visitor
	cartWrite := r.Group("/cart")
	cartWrite.Use(middlewares.AuthMiddleware())
	{
		cartWrite.POST("/items", cartCtrl.AddToCart)
		cartWrite.PATCH("/items/:itemId", cartCtrl.UpdateQuantity)
		cartWrite.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cartWrite.DELETE("", cartCtrl.ClearCart)
	}

	orderRead := r.Group("/orders")
	orderRead.Use(middlewares.OptionalAuthMiddleware())
	{
		orderRead.GET("", orderCtrl.GetMyOrders)
	}

	orderWrite := r.Group("/orders")
	orderWrite.Use(middlewares.AuthMiddleware())
	{
		orderWrite.POST("/checkout", orderCtrl.Checkout)
		orderWrite.GET("/:orderId", orderCtrl.GetOrderByID)
		orderWrite.PATCH("/:orderId", orderCtrl.UpdateOrderStatus)
	}

	auth := r.Group("/profile")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("", userCtrl.GetProfile)
	}

	return r
}
