// Package parser handles natural language date expressions for command
// flags.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/worktracker/internal/model"
)

// ParseDate parses a date expression into a day at local midnight. It accepts
// the calendar layout ("2006-01-02"), the shortcuts "today" and "yesterday",
// and natural language like "last monday" via go-dateparser.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "", "today":
		return truncateToDay(now), nil
	case "yesterday":
		return truncateToDay(now.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(model.DateLayout, input, now.Location()); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", input, err)
	}
	return truncateToDay(result.Time.In(now.Location())), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
