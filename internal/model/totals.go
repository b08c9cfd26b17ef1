package model

// DailyTotal is the aggregated tracked time for one calendar day.
type DailyTotal struct {
	Date    string  `json:"date"`
	Seconds int     `json:"seconds"`
	Hours   float64 `json:"hours"`
}

// WeeklyTotal is the aggregated tracked time for one ISO week, keyed by the
// Monday the week starts on.
type WeeklyTotal struct {
	WeekStart string  `json:"week_start"`
	Seconds   int     `json:"seconds"`
	Hours     float64 `json:"hours"`
}

// MonthlyTotal is the aggregated tracked time for one calendar month
// ("2006-01"), closed sessions only.
type MonthlyTotal struct {
	Month string  `json:"month"`
	Hours float64 `json:"hours"`
}

// YearlyTotal is the aggregated tracked time for one calendar year, closed
// sessions only.
type YearlyTotal struct {
	Year  string  `json:"year"`
	Hours float64 `json:"hours"`
}

// ProductivityPoint is the per-day percentage of the daily goal reached.
type ProductivityPoint struct {
	Date    string  `json:"date"`
	Percent float64 `json:"productivity"`
}

// Snapshot bundles the analytics views over a trailing window of days.
type Snapshot struct {
	Daily        []DailyTotal        `json:"daily"`
	Weekly       []WeeklyTotal       `json:"weekly"`
	Hourly       map[int]float64     `json:"hourly_distribution"`
	Productivity []ProductivityPoint `json:"productivity"`
}

// GoalProgress is the live view the presentation layer polls while a session
// may still be accumulating time.
type GoalProgress struct {
	DailySeconds      int     `json:"daily_seconds"`
	WeeklySeconds     int     `json:"weekly_seconds"`
	DailyGoalSeconds  int     `json:"daily_goal_seconds"`
	WeeklyGoalSeconds int     `json:"weekly_goal_seconds"`
	RemainingSeconds  int     `json:"remaining_seconds"`
	DailyPercent      float64 `json:"daily_percent"`
	GoalReached       bool    `json:"goal_reached"`
}
