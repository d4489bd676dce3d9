// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/interfaces/http/handlers"
	"github.com/madhav-gif/Full-stack-project/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route onto the given group
func SetupRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, cfg)
	wishlistHandler := handlers.NewWishlistHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)
	paymentHandler := handlers.NewPaymentHandler(db, cfg)
	invoiceHandler := handlers.NewInvoiceHandler(db, cfg)

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/token/refresh", authHandler.RefreshToken)

	api.GET("/products", productHandler.GetProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Authenticated routes
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware(cfg))
	{
		authenticated.GET("/profile", authHandler.GetProfile)

		carts := authenticated.Group("/carts")
		{
			carts.GET("", cartHandler.GetCart)
			carts.POST("", cartHandler.AddToCart)
			carts.PATCH("/:id", cartHandler.UpdateCartItem)
			carts.DELETE("/:id", cartHandler.RemoveFromCart)
		}

		wishlist := authenticated.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("", wishlistHandler.AddToWishlist)
			wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		}

		orders := authenticated.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
		}

		authenticated.POST("/create-razorpay-order", paymentHandler.CreateRazorpayOrder)
		authenticated.POST("/verify-payment", paymentHandler.VerifyPayment)
	}
}
