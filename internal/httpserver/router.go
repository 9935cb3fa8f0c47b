package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	auth "github.com/techmarket/storefront/internal/middleware/auth"
)

type Deps struct {
	Auth     *AuthHTTP
	Cart     *CartHTTP
	Order    *OrderHTTP
	Favorite *FavoriteHTTP
	Product  *ProductHTTP
	Image    *ImageHTTP
	Stats    *StatsHTTP

	JWTSecret []byte
	UploadDir string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.Static("/uploads", d.UploadDir)

	mw := auth.New(d.JWTSecret)
	api := e.Group("/v1/api")

	user := api.Group("/user")
	user.POST("/signup", d.Auth.Register)
	user.POST("/login", d.Auth.Login)
	user.POST("/logout", d.Auth.Logout)
	user.POST("/refresh-token", d.Auth.Refresh)
	user.POST("/send-verification-email", d.Auth.SendVerificationEmail)
	user.GET("", d.Auth.ListCustomers, mw.RequireAdmin)
	user.PUT("/update-user/:id", d.Auth.UpdateUser, mw.RequireAdmin)
	user.DELETE("/delete-user/:id", d.Auth.DeleteUser, mw.RequireAdmin)

	cart := api.Group("/cart", mw.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddItem)
	cart.POST("/add-items", d.Cart.AddItems)
	cart.PUT("/update", d.Cart.UpdateItem)
	cart.DELETE("/remove/:productId", d.Cart.RemoveItem)
	cart.DELETE("/clear", d.Cart.Clear)

	favorite := api.Group("/favorite", mw.RequireAuth)
	favorite.GET("", d.Favorite.List)
	favorite.POST("", d.Favorite.Add)
	favorite.DELETE("/:productId", d.Favorite.Remove)
	favorite.DELETE("", d.Favorite.Clear)

	order := api.Group("/order", mw.RequireAuth)
	order.POST("", d.Order.Create)
	order.GET("", d.Order.List, mw.RequireAdmin)
	order.GET("/my/orders", d.Order.ListMine)
	order.GET("/:id", d.Order.GetByID)
	order.PUT("/:id/status", d.Order.UpdateStatus, mw.RequireAdmin)
	order.DELETE("/:id", d.Order.Delete, mw.RequireAdmin)

	product := api.Group("/product")
	product.GET("", d.Product.List)
	product.GET("/search", d.Product.Search)
	product.GET("/category/:category", d.Product.ListByCategory)
	product.GET("/:id", d.Product.GetByID)
	product.POST("", d.Product.Create, mw.RequireAdmin)
	product.PUT("/:id", d.Product.Update, mw.RequireAdmin)
	product.DELETE("/:id", d.Product.Delete, mw.RequireAdmin)

	images := api.Group("/images")
	images.POST("", d.Image.Upload, mw.RequireAdmin)
	images.GET("/:productId", d.Image.ListByProduct)
	images.DELETE("/:id", d.Image.Delete, mw.RequireAdmin)

	stats := api.Group("/stats")
	stats.GET("/products-of-the-week", d.Stats.ProductsOfTheWeek)
	stats.GET("/top-deals", d.Stats.TopDeals)
	stats.GET("/recommended/:userId", d.Stats.Recommended)
	stats.GET("/most-popular", d.Stats.MostPopular)

	adminStats := stats.Group("", mw.RequireAdmin)
	adminStats.GET("/admin", d.Stats.Admin)
	adminStats.GET("/monthly", d.Stats.Monthly)
	adminStats.GET("/revenue-growth", d.Stats.RevenueGrowth)
	adminStats.GET("/customer-activity", d.Stats.CustomerActivity)
	adminStats.GET("/average-order-value", d.Stats.AverageOrderValue)
}
