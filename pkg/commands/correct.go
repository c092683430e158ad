package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/correct"
)

func addCorrect(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "correct --id <id> <emotion>",
		Short: "Correct the detected emotion on an entry",
		Long: `Override the detected emotion with your own label. Corrections carry full
confidence and move the entry's histogram bucket.`,
		Example: `
reflexa correct --id 171dff69-f8b9-4dca-9b02-53af1cbbd6e0 joy
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"joy", "sadness", "anger", "fear", "love", "surprise", "neutral"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, _, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			s := correct.Correct{
				ID:      io.ID,
				Emotion: args[0],
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
