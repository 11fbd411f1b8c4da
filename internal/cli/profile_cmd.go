package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}
			routines, err := app.Routines.List(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold(profile.Name) + "  " + formatter.Dim(profile.UserID))
			fmt.Println(formatter.Dim(fmt.Sprintf("Joined %s via %s",
				profile.JoinedAt.Format("Jan 2, 2006"), profile.Provider)))
			fmt.Println(formatter.RenderPoints(profile.Level, profile.Points, domain.LevelThreshold, 20))
			fmt.Println(formatter.Dim(fmt.Sprintf("%d routine(s)", len(routines))))
			return nil
		},
	}
}
