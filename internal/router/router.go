package router

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/categories"
	"storefront/internal/handler/contacts"
	"storefront/internal/handler/products"
	"storefront/internal/handler/uploads"
	"storefront/internal/middleware"
	"storefront/internal/upload"
)

// Setup registers all routes and middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, sink *upload.Sink) {
	requireAdmin := middleware.RequireAdmin(db, rdb)

	// Stored images are served straight from the sink directory.
	e.Static("/uploads", sink.Dir())

	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	apiAdmin := api.Group("/admin")
	apiAdmin.POST("/login", auth.LoginHandler(db, rdb))
	apiAdmin.POST("/logout", auth.LogoutHandler(rdb))
	apiAdmin.GET("/check-auth", auth.CheckAuthHandler(rdb))

	apiProducts := api.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(db))
	apiProducts.GET("/:id", products.GetProductHandler(db))
	apiProducts.GET("/category/:category", products.ListProductsByCategoryHandler(db))
	apiProducts.POST("", products.CreateProductHandler(db), requireAdmin)
	apiProducts.PUT("/:id", products.UpdateProductHandler(db), requireAdmin)
	apiProducts.DELETE("/:id", products.DeleteProductHandler(db), requireAdmin)

	apiCategories := api.Group("/categories")
	apiCategories.GET("", categories.ListCategoriesHandler(db))
	apiCategories.POST("", categories.CreateCategoryHandler(db), requireAdmin)
	apiCategories.PUT("/:id", categories.UpdateCategoryHandler(db), requireAdmin)
	apiCategories.DELETE("/:id", categories.DeleteCategoryHandler(db), requireAdmin)

	// The public form posts to the singular path; the admin list is plural.
	api.POST("/contact", contacts.CreateContactHandler(db))
	api.GET("/contacts", contacts.ListContactsHandler(db), requireAdmin)

	api.POST("/upload", uploads.UploadHandler(sink), requireAdmin)
}
