package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/amader/internal/catalog"
	"github.com/example/amader/internal/commerce"
	"github.com/example/amader/internal/config"
	"github.com/example/amader/internal/handlers"
	"github.com/example/amader/internal/middleware"
	"github.com/example/amader/internal/services"
	"github.com/example/amader/internal/tracking"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	sessionStorage := commerce.NewMemoryStorage()
	eventSink := tracking.NewQueueSink()
	trackerRegistry := tracking.NewSessionRegistry(eventSink, sessionStorage)
	catalogService := catalog.NewService(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	searchHandler := handlers.NewSearchHandler(db)
	checkoutHandler := handlers.NewCheckoutHandler(db, telegramService)
	reviewHandler := handlers.NewReviewHandler(db, cfg, telegramService)
	cartHandler := handlers.NewCartHandler(sessionStorage)
	trackingHandler := handlers.NewTrackingHandler(db, cfg, trackerRegistry)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api", middleware.GuestSession())

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Storefront catalog
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:slug", catalogHandler.GetProduct)
	api.Get("/categories", catalogHandler.ListCategories)

	// Search, checkout, reviews
	api.Get("/search", searchHandler.Search)
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Post("/reviews", reviewHandler.Submit)

	// Session cart and favorites
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/", cartHandler.AddToCart)
	cart.Put("/:id", cartHandler.UpdateCartItem)
	cart.Delete("/clear", cartHandler.ClearCart)
	cart.Delete("/:id", cartHandler.RemoveCartItem)

	favorites := api.Group("/favorites")
	favorites.Get("/", cartHandler.GetFavorites)
	favorites.Post("/", cartHandler.ToggleFavorite)
	favorites.Delete("/clear", cartHandler.ClearFavorites)
	favorites.Delete("/:id", cartHandler.RemoveFavorite)

	// Tracking
	api.Post("/events", trackingHandler.TrackEvent)
	api.Post("/events/end-session", trackingHandler.EndSession)
	api.Get("/tracking/gtm", trackingHandler.GetContainerID)

	// Admin back-office
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.RequireAdmin(db))

	admin.Get("/dashboard", adminHandler.DashboardStats)
	admin.Get("/orders/recent", adminHandler.RecentOrders)

	admin.Get("/orders", orderHandler.ListOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Get("/products", productHandler.ListProducts)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Get("/products/:id", productHandler.GetProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Get("/categories", productHandler.ListCategories)
	admin.Post("/categories", productHandler.CreateCategory)
	admin.Put("/categories/:id", productHandler.UpdateCategory)
	admin.Delete("/categories/:id", productHandler.DeleteCategory)

	admin.Get("/reviews", reviewHandler.ListReviews)
	admin.Put("/reviews/:id/status", reviewHandler.ModerateReview)
	admin.Delete("/reviews/:id", reviewHandler.DeleteReview)

	admin.Put("/tracking/gtm", trackingHandler.UpdateContainerID)
}
