package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View the current configuration",
	Long:  `Show the configured mode durations and notification settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Println("  Durations:")
		fmt.Printf("    Focus:        %d min\n", app.config.Timer.FocusMinutes)
		fmt.Printf("    Short break:  %d min\n", app.config.Timer.ShortBreakMinutes)
		fmt.Printf("    Long break:   %d min\n", app.config.Timer.LongBreakMinutes)
		fmt.Println()

		notifStatus := "off"
		if app.config.Notifications.Enabled {
			notifStatus = "on"
			if app.config.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}
		fmt.Printf("  Notifications:  %s\n", notifStatus)
		fmt.Printf("  Data directory: %s\n", app.config.Storage.DataDir)
		fmt.Println()
		fmt.Println(`  Change a duration with "tomato config set <mode> <minutes>".`)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [mode] [minutes]",
	Short: "Set a mode duration",
	Long:  `Set the countdown duration in minutes for focus, short_break, or long_break.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := domain.Mode(args[0])
		if !mode.Valid() {
			return fmt.Errorf("invalid mode %q (want focus, short_break, or long_break)", args[0])
		}

		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid minutes %q: %w", args[1], err)
		}
		if minutes < 1 || minutes > 99 {
			return fmt.Errorf("minutes must be between 1 and 99")
		}

		app.config.Timer.SetDuration(mode, minutes)
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("✅ %s set to %d min\n", mode.Label(), minutes)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
