package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/runner/chat"
	"tableflip.dev/reflexa/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the Reflexa companion",
		Long: `Start an interactive conversation with the Reflexa companion. Requires a
configured Gemini API key; type exit to leave.`,
		Example: `
reflexa chat
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			s := chat.Chat{
				Generator: newGenerator(cfg, logger),
				Logger:    logger,
				In:        cmd.InOrStdin(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
