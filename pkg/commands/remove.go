package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove --id <id>",
		Short:   "Remove a journal entry",
		Aliases: []string{"rm", "delete"},
		Example: `
reflexa remove --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := remove.Remove{
				ID:   io.ID,
				Repo: repo,
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
