package commands

import (
	"github.com/spf13/cobra"

	"lunchline/internal/config"
)

var cfg *config.Config

func Execute() error {
	root := &cobra.Command{
		Use:          "lunchline",
		Short:        "Lunch counter ordering service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			return err
		},
	}

	root.AddCommand(serveCmd(), seedMenuCmd())
	return root.Execute()
}
