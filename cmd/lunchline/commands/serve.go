package commands

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"lunchline/internal/auth"
	"lunchline/internal/db"
	"lunchline/internal/events"
	"lunchline/internal/menu"
	"lunchline/internal/order"
	"lunchline/internal/router"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// ───────────────────────── REPOSITORIES ─────────────────────────
			var (
				userRepo  auth.UserRepository
				menuRepo  menu.Repository
				orderRepo order.Repository
			)

			if cfg.DatabaseURL != "" {
				pool, err := db.Connect(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer pool.Close()

				userRepo = auth.NewPostgresUserRepository(pool)
				menuRepo = menu.NewPostgresRepository(pool)
				orderRepo = order.NewPostgresRepository(pool)
				log.Println("using Postgres repositories")
			} else {
				userRepo = auth.NewInMemoryUserRepository()
				menuRepo = menu.NewInMemoryRepository(menu.DefaultMenu()...)
				orderRepo = order.NewInMemoryRepository()
				log.Println("DATABASE_URL not set, using in-memory repositories")
			}

			// ───────────────────────── EVENTS ─────────────────────────
			var publisher order.Publisher = events.NopPublisher{}
			if cfg.AMQPURL != "" {
				amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
				if err != nil {
					return err
				}
				defer amqpPublisher.Close()
				publisher = amqpPublisher
				log.Println("publishing order events to RabbitMQ")
			}

			// ───────────────────────── SERVICES ─────────────────────────
			tokens := auth.NewTokenManager(cfg.JWTSecret)
			authService := auth.NewService(userRepo)
			menuService := menu.NewService(menuRepo)
			orderService := order.NewService(menuService, orderRepo, publisher)

			// ───────────────────────── ROUTER ─────────────────────────
			r := router.New(router.Handlers{
				Tokens:    tokens,
				Auth:      auth.NewHandler(authService, tokens),
				Menu:      menu.NewHandler(menuService),
				AdminMenu: menu.NewAdminHandler(menuService),
				Orders:    order.NewHandler(orderService),
			})

			log.Printf("API running at http://localhost:%s", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}
