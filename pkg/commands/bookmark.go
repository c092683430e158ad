package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/mark"
)

func addBookmark(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "bookmark --id <id>",
		Short: "Toggle the bookmark on an entry",
		Example: `
reflexa bookmark --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := mark.Mark{
				ID:       io.ID,
				Bookmark: true,
				Repo:     repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}

func addPrivate(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "private --id <id>",
		Short: "Toggle an entry's privacy",
		Example: `
reflexa private --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := mark.Mark{
				ID:      io.ID,
				Private: true,
				Repo:    repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
