package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/config"
	"github.com/Luisfp0/online-course-products/internal/http/flash"
	"github.com/Luisfp0/online-course-products/internal/http/handlers"
	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/internal/http/render"
	"github.com/Luisfp0/online-course-products/internal/modules/auth"
	"github.com/Luisfp0/online-course-products/internal/modules/products"
)

// NewRouter wires the middleware chain and routes.
func NewRouter(logger *slog.Logger, cfg *config.Config, gate *auth.Gate, store *products.Store) *gin.Engine {
	r := gin.New()

	flashCodec := flash.NewCodec([]byte(cfg.Cookie.FlashSecret), "flash", cfg.Cookie.Secure)
	gateCfg := middleware.AuthGateCfg{Secure: cfg.Cookie.Secure}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.AuthGate(gateCfg))

	login := handlers.NewLoginHandler(gate, flashCodec, gateCfg)
	dashboard := handlers.NewDashboardHandler(store)
	productActions := handlers.NewProductsHandler(store, flashCodec)

	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, http.StatusNotFound, "Page not found.", middleware.GetRequestID(c))
	})

	r.GET("/", login.Root)
	r.GET("/login", login.Get)
	r.POST("/login", login.Post)
	r.POST("/logout", login.Logout)

	authed := r.Group("/", middleware.RequireAuth(flashCodec))
	{
		authed.GET("/dashboard", dashboard.Get)
		authed.POST("/dashboard/products", productActions.Create)
		authed.POST("/dashboard/products/:id", productActions.Update)
		authed.POST("/dashboard/products/:id/delete", productActions.Delete)
	}

	return r
}
