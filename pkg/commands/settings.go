package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/reflexa/pkg/store"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			_, current, err := loadSettings(cfg)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
			tbl.AddRow("reminder", onOff(current.ReminderEnabled))
			tbl.AddRow("reminder-time", current.ReminderTime)
			tbl.AddRow("haptics", onOff(current.HapticFeedback))
			tbl.AddRow("show-confidence", onOff(current.ShowEmotionConfidence))
			tbl.AddRow("follow-up-questions", onOff(current.FollowUpQuestions))
			tbl.AddRow("pin", onOff(current.PinEnabled))

			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	addSettingsSet(cmd)
	addPIN(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	var (
		reminder       bool
		reminderTime   string
		haptics        bool
		showConfidence bool
		followUps      bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change a setting",
		Example: `
reflexa settings set --reminder --reminder-time 07:30
reflexa settings set --follow-up-questions=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			ss, current, err := loadSettings(cfg)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("reminder") {
				current.ReminderEnabled = reminder
			}
			if cmd.Flags().Changed("reminder-time") {
				current.ReminderTime = reminderTime
			}
			if cmd.Flags().Changed("haptics") {
				current.HapticFeedback = haptics
			}
			if cmd.Flags().Changed("show-confidence") {
				current.ShowEmotionConfidence = showConfidence
			}
			if cmd.Flags().Changed("follow-up-questions") {
				current.FollowUpQuestions = followUps
			}

			return ss.Save(current)
		},
	}

	cmd.Flags().BoolVar(&reminder, "reminder", false, "Enable the daily reminder.")
	cmd.Flags().StringVar(&reminderTime, "reminder-time", "20:00", "Daily reminder time, 24h clock.")
	cmd.Flags().BoolVar(&haptics, "haptics", true, "Enable haptic feedback.")
	cmd.Flags().BoolVar(&showConfidence, "show-confidence", true, "Show emotion confidence on entries.")
	cmd.Flags().BoolVar(&followUps, "follow-up-questions", true, "Allow AI follow-up questions in prompts.")

	topLevel.AddCommand(cmd)
}

func addPIN(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the PIN lock",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	set := &cobra.Command{
		Use:   "set <pin>",
		Short: "Enable the PIN lock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			ss, _, err := loadSettings(cfg)
			if err != nil {
				return err
			}
			return ss.SetPIN(args[0])
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Disable the PIN lock",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			ss, _, err := loadSettings(cfg)
			if err != nil {
				return err
			}
			return ss.ClearPIN()
		},
	}

	verify := &cobra.Command{
		Use:   "verify <pin>",
		Short: "Check a PIN against the stored one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			ss, _, err := loadSettings(cfg)
			if err != nil {
				return err
			}
			ok, err := ss.VerifyPIN(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("pin does not match")
			}
			fmt.Println("ok")
			return nil
		},
	}

	cmd.AddCommand(set, clear, verify)
	topLevel.AddCommand(cmd)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
