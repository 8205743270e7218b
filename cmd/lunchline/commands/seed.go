package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lunchline/internal/db"
	"lunchline/internal/menu"
)

func seedMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-menu",
		Short: "Insert the default lunch menu into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL required to seed the menu")
			}

			ctx := context.Background()
			pool, err := db.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := menu.NewPostgresRepository(pool)
			items := menu.DefaultMenu()
			for i := range items {
				if err := repo.Upsert(ctx, &items[i]); err != nil {
					return fmt.Errorf("failed to seed %q: %w", items[i].Name, err)
				}
			}

			fmt.Printf("Seeded %d menu items.\n", len(items))
			return nil
		},
	}
}
