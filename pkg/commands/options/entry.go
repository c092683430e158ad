package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// EntryOptions captures common entry selection flags for commands.
type EntryOptions struct {
	OnString   string
	Bookmarked bool
	Private    bool
	Emotion    string
	Additional string
}

// AddOnArg wires the --on date flag on the provided command.
func AddOnArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28".`)
}

// AddBookmarkedArg registers the bookmark filter flag.
func AddBookmarkedArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().BoolVarP(&o.Bookmarked, "bookmarked", "b", false,
		"Only show bookmarked entries.")
}

// AddPrivateArg registers the private flag.
func AddPrivateArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().BoolVar(&o.Private, "private", false,
		"Mark the entry as private.")
}

// AddEmotionArg registers the user-selected emotion flag.
func AddEmotionArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Emotion, "emotion", "e", "",
		"Set the emotion yourself instead of detecting it (joy, sadness, anger, fear, love, surprise, neutral).")
}

// AddAdditionalArg registers the follow-up reflection flag.
func AddAdditionalArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Additional, "reflection", "",
		"Additional reflection text stored with the entry.")
}

// GetOn parses the --on flag into a time, nil when unset.
func (o *EntryOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
