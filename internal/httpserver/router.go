package httpserver

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/guard"
)

type Deps struct {
	Auth    *AuthHTTP
	Cart    *CartHTTP
	Catalog *CatalogHTTP
	Admin   *AdminHTTP

	// StaticDir holds the built storefront bundle; empty disables page
	// serving (API-only mode, useful in tests).
	StaticDir string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// The guard runs in front of everything; it skips /api, /static and
	// health itself.
	e.Use(guard.Middleware())

	api := e.Group("/api")

	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/logout", d.Auth.Logout)
	api.GET("/auth/profile", d.Auth.Profile)

	api.GET("/cart", d.Cart.GetCart)
	api.POST("/cart/items", d.Cart.AddItem)
	api.PUT("/cart/items/:id", d.Cart.UpdateQuantity)
	api.DELETE("/cart/items/:id", d.Cart.RemoveItem)
	api.DELETE("/cart", d.Cart.ClearCart)
	api.POST("/checkout", d.Cart.Checkout, RequireToken)

	api.GET("/products", d.Catalog.ListProducts)
	api.GET("/products/:id", d.Catalog.GetProduct)
	api.GET("/search", d.Catalog.SearchProducts)
	api.GET("/events", d.Catalog.ListEvents)
	api.GET("/orders", d.Catalog.ListOrders, RequireToken)

	admin := api.Group("/admin", RequireAdmin)
	admin.GET("/dashboard", d.Admin.Dashboard)
	admin.POST("/products", d.Admin.CreateProduct)
	admin.PUT("/products/:id", d.Admin.UpdateProduct)
	admin.DELETE("/products/:id", d.Admin.DeleteProduct)
	admin.POST("/events", d.Admin.CreateEvent)
	admin.PUT("/events/:id", d.Admin.UpdateEvent)
	admin.DELETE("/events/:id", d.Admin.DeleteEvent)
	admin.GET("/users", d.Admin.ListUsers)
	admin.GET("/users/:id", d.Admin.GetUser)
	admin.PUT("/users/:id", d.Admin.UpdateUser)
	admin.DELETE("/users/:id", d.Admin.DeleteUser)

	if d.StaticDir != "" {
		registerPages(e, d.StaticDir)
	}
}

// registerPages serves the storefront bundle: hashed assets under /static
// and the SPA shell for every page navigation the guard lets through.
func registerPages(e *echo.Echo, dir string) {
	e.Static("/static", filepath.Join(dir, "static"))

	index := filepath.Join(dir, "index.html")
	e.GET("/*", func(c echo.Context) error {
		if _, err := os.Stat(index); err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "storefront bundle missing")
		}
		return c.File(index)
	})
}
