package model

// Setting keys recognized by the store. All values are stored as strings;
// typed accessors apply the documented defaults when a value is absent or
// unparsable.
const (
	SettingDailyGoal            = "daily_goal"            // hours
	SettingWeeklyGoal           = "weekly_goal"           // hours
	SettingNotificationsEnabled = "notifications_enabled" // bool
	SettingBreakIntervalMin     = "break_interval_min"
	SettingIdleThresholdMin     = "idle_threshold_min"
	SettingScheduleEnabled      = "schedule_enabled" // bool
	SettingWorkDays             = "work_days"        // CSV of Mon..Sun
	SettingWorkStart            = "work_start"       // "09:00"
	SettingWorkEnd              = "work_end"         // "17:00"
	SettingGoalAlertThreshold   = "goal_alert_threshold" // percent, 0-120
)

// Setting is one key/value pair from the settings table.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DefaultSettings are seeded into a fresh store. Existing values are never
// overwritten.
func DefaultSettings() []Setting {
	return []Setting{
		{SettingDailyGoal, "8"},
		{SettingWeeklyGoal, "40"},
		{SettingNotificationsEnabled, "1"},
		{SettingBreakIntervalMin, "60"},
		{SettingIdleThresholdMin, "10"},
		{SettingScheduleEnabled, "0"},
		{SettingWorkDays, "Mon,Tue,Wed,Thu,Fri"},
		{SettingWorkStart, "09:00"},
		{SettingWorkEnd, "17:00"},
		{SettingGoalAlertThreshold, "90"},
	}
}
