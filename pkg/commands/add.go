package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/gemini"
	"tableflip.dev/reflexa/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <entry text>",
		Short: "Add a journal entry",
		Long: `Add a journal entry. The emotion is detected from the text unless one is
set with --emotion.`,
		Example: `
reflexa add had a great day at the beach
reflexa add rough morning --emotion sadness
reflexa add missed this one --on="2026-02-28"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cfg, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			on, err := eo.GetOn()
			if err != nil {
				return err
			}

			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			_, current, err := loadSettings(cfg)
			if err != nil {
				return err
			}

			s := add.Add{
				Content:        strings.Join(args, " "),
				Additional:     eo.Additional,
				On:             on,
				Emotion:        eo.Emotion,
				Private:        eo.Private,
				ShowConfidence: current.ShowEmotionConfidence,
				Analyzer:       gemini.NewClassifier(newGenerator(cfg, logger), logger),
				Repo:           repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddEmotionArg(cmd, eo)
	options.AddOnArg(cmd, eo)
	options.AddPrivateArg(cmd, eo)
	options.AddAdditionalArg(cmd, eo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
