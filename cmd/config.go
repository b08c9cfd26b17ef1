package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage tracker settings",
	Long: `View and modify tracker settings.

Examples:
  worktracker config list
  worktracker config get daily_goal
  worktracker config set daily_goal 6
  worktracker config set notifications_enabled false
  worktracker config set work_days Mon,Tue,Wed,Thu,Fri`,
}

// configGetCmd gets a setting value.
var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configSetCmd sets a setting value.
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a setting value",
	Long: `Set a setting value.

Keys and values:
  daily_goal HOURS              Daily goal in hours
  weekly_goal HOURS             Weekly goal in hours
  notifications_enabled BOOL    Enable reminder notifications
  break_interval_min MINUTES    Minutes between break reminders
  idle_threshold_min MINUTES    Idle minutes before auto-pause
  goal_alert_threshold PERCENT  Daily goal percentage that triggers an alert
  schedule_enabled BOOL         Enable schedule guidance
  work_days LIST                Scheduled days (e.g. Mon,Tue,Wed,Thu,Fri)
  work_start HH:MM              Scheduled start of day
  work_end HH:MM                Scheduled end of day`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all settings.
var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	RunE:    runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// knownSettings maps setting keys to their validators.
var knownSettings = map[string]func(value string) error{
	model.SettingDailyGoal:            validatePositiveInt,
	model.SettingWeeklyGoal:           validatePositiveInt,
	model.SettingNotificationsEnabled: validateBool,
	model.SettingBreakIntervalMin:     validatePositiveInt,
	model.SettingIdleThresholdMin:     validatePositiveInt,
	model.SettingGoalAlertThreshold:   validateThreshold,
	model.SettingScheduleEnabled:      validateBool,
	model.SettingWorkDays:             validateWorkDays,
	model.SettingWorkStart:            validateClock,
	model.SettingWorkEnd:              validateClock,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, ok := knownSettings[key]; !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}

	value, found, err := ctx.Settings.Get(key)
	if err != nil {
		return err
	}
	if !found {
		for _, s := range model.DefaultSettings() {
			if s.Key == key {
				value = s.Value
				break
			}
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SettingsResponse{
			Settings: []model.Setting{{Key: key, Value: value}},
		})
	}

	ctx.Formatter.Printf("%s = %s\n", key, value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	validate, ok := knownSettings[key]
	if !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := ctx.Settings.Set(key, value); err != nil {
		return err
	}

	logging.Info("setting updated",
		logging.KeyOperation, "config.set",
		logging.KeySetting, key,
		logging.KeyRunID, ctx.RunID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SettingsResponse{
			Settings: []model.Setting{{Key: key, Value: value}},
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Settings.All()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SettingsResponse{Settings: settings})
	}

	rows := make([]output.TableRow, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, output.TableRow{Columns: []string{s.Key, s.Value}})
	}
	ctx.CLIFormatter().PrintTable([]string{"Key", "Value"}, rows)
	return nil
}

func validatePositiveInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected a number")
	}
	if n < 0 {
		return fmt.Errorf("expected a non-negative number")
	}
	return nil
}

func validateThreshold(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected a number")
	}
	if n <= 0 || n > 120 {
		return fmt.Errorf("expected a percentage between 1 and 120")
	}
	return nil
}

func validateBool(value string) error {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on", "0", "false", "no", "off":
		return nil
	}
	return fmt.Errorf("expected true or false")
}

func validateClock(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func validateWorkDays(value string) error {
	if len(model.ParseWorkDays(value)) == 0 {
		return fmt.Errorf("expected a comma-separated day list like Mon,Tue,Wed")
	}
	return nil
}
