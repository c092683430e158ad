package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	reflection := ""

	cmd := &cobra.Command{
		Use:   "edit --id <id> [new entry text]",
		Short: "Edit a journal entry",
		Long:  "Rewrite the text of an entry. The entry date never changes.",
		Example: `
reflexa edit --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0 actually it was a good day
reflexa edit --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0 --reflection "thought about it more"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 && !cmd.Flags().Changed("reflection") {
				return errors.New("nothing to edit")
			}

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:   io.ID,
				Repo: repo,
			}
			if len(args) > 0 {
				content := strings.Join(args, " ")
				s.Content = &content
			}
			if cmd.Flags().Changed("reflection") {
				s.Additional = &reflection
			}

			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVar(&reflection, "reflection", "",
		"Replacement reflection text.")
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
