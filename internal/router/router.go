package router

import (
	"time"

	"lunchline/internal/auth"
	"lunchline/internal/menu"
	"lunchline/internal/middleware"
	"lunchline/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects everything the router wires up.
type Handlers struct {
	Tokens    *auth.TokenManager
	Auth      *auth.Handler
	Menu      *menu.Handler
	AdminMenu *menu.AdminHandler
	Orders    *order.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── MENU (PUBLIC) ─────────────────────────
	r.GET("/menu", h.Menu.List)
	r.GET("/menu/:name", h.Menu.Get)

	// ───────────────────────── TRAYS ─────────────────────────
	trays := r.Group("/trays")
	trays.Use(middleware.AuthMiddleware(h.Tokens))
	{
		trays.POST("", h.Orders.Start)
		trays.GET("/:id", h.Orders.Get)
		trays.PUT("/:id/entree", h.Orders.SetSlot(order.SlotEntree))
		trays.PUT("/:id/side", h.Orders.SetSlot(order.SlotSide))
		trays.PUT("/:id/accompaniment", h.Orders.SetSlot(order.SlotAccompaniment))
		trays.POST("/:id/submit", h.Orders.Submit)
		trays.DELETE("/:id", h.Orders.Cancel)
	}

	// ───────────────────────── ORDER HISTORY ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(h.Tokens))
	{
		orders.GET("", h.Orders.History)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(h.Tokens),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/menu", h.AdminMenu.Save)
		admin.PUT("/menu", h.AdminMenu.Save)
		admin.DELETE("/menu/:name", h.AdminMenu.Remove)
	}

	return r
}
