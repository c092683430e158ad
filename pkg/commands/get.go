package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	showPrivate := false
	watch := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get journal entries",
		Example: `
reflexa get
reflexa get --on="2026-02-28"
reflexa get --bookmarked
reflexa get --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0
reflexa get --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, p, cfg, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			on, err := eo.GetOn()
			if err != nil {
				return err
			}

			_, current, err := loadSettings(cfg)
			if err != nil {
				return err
			}

			s := get.Get{
				ShowID:         io.ShowID,
				ShowConfidence: current.ShowEmotionConfidence,
				ShowPrivate:    showPrivate,
				ID:             io.ID,
				On:             on,
				Bookmarked:     eo.Bookmarked,
				Watch:          watch,
				Watcher:        p,
				Repo:           repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOnArg(cmd, eo)
	options.AddBookmarkedArg(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&showPrivate, "show-private", false,
		"Include private entries in the listing.")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep the listing open and reprint when the journal changes on disk.")

	topLevel.AddCommand(cmd)
}
