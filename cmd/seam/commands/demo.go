package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seam/internal/app"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive binding demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noWatch, _ := cmd.Flags().GetBool("no-watch")

			return c.app.Run(cmd.Context(), app.RunOptions{
				NoWatch: noWatch,
			})
		},
	}
	cmd.Flags().Bool("no-watch", false, "Disable live reloading of the settings file")
	return cmd
}
