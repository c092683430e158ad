package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/insights"
)

func addInsights(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	var (
		window   string
		rng      string
		calendar bool
	)

	cmd := &cobra.Command{
		Use:     "insights",
		Short:   "Show streaks and emotion trends",
		Aliases: []string{"stats"},
		Example: `
reflexa insights
reflexa insights --range month
reflexa insights --window 2w
reflexa insights --calendar
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := insights.Insights{
				Window:   window,
				Range:    rng,
				Calendar: calendar,
				Repo:     repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "window", "",
		"Ad-hoc report window in days, weeks, months, or years, example: --window=6mo.")
	cmd.Flags().StringVar(&rng, "range", "",
		"Sliding chart range: week, month, or year.")
	cmd.Flags().BoolVar(&calendar, "calendar", false,
		"Show this month's journaling activity calendar.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
