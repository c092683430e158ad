package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/commands/options"
	"tableflip.dev/reflexa/pkg/runner/prompts"
)

func addPrompts(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Get reflection prompts for today",
		Example: `
reflexa prompts
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cfg, err := loadRepository(ctx)
			if err != nil {
				return err
			}

			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			svc, err := newPromptService(cfg, logger)
			if err != nil {
				return err
			}

			s := prompts.Prompts{
				Service: svc,
				Repo:    repo,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
