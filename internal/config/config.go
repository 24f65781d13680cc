package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHotelName         = "Hotel Reserva"
	defaultCheckInTime       = "14:00"
	defaultCheckOutTime      = "12:00"
	defaultNoShowTolerance   = "120m"
	defaultServiceTaxRate    = "0.10"
	defaultWeekendMultiplier = "1.2"
	defaultCancelPenalty     = "0.20"
	defaultNoShowPenalty     = "1.0"
	defaultFreeCancelHours   = "24"

	// high season around the new year, off by default elsewhere
	defaultSeasonRules = `[{"start":"12-20","end":"01-05","multiplier":1.5}]`
)

// SeasonRule is a day-month interval with a price multiplier. The
// interval may wrap the year boundary (e.g. 12-20 .. 01-05).
type SeasonRule struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
	Multiplier float64
}

type CancellationPolicy struct {
	StandardPenalty float64 // fraction of the total charged on late cancel
	NoShowPenalty   float64 // fraction of the total charged on no-show
	FreeCancelHours int     // hours before check-in with no penalty
}

type Config struct {
	HotelName string

	CheckInHour   int
	CheckInMinute int
	CheckOutHour   int
	CheckOutMinute int

	NoShowTolerance time.Duration

	ServiceTaxRate    float64
	WeekendMultiplier float64

	Cancellation CancellationPolicy
	Seasons      []SeasonRule
}

func Load() (*Config, error) {
	cfg := &Config{
		HotelName: strings.TrimSpace(getEnv("HOTEL_NAME", defaultHotelName)),
	}

	var err error
	if cfg.CheckInHour, cfg.CheckInMinute, err = parseClockEnv("CHECKIN_TIME", defaultCheckInTime); err != nil {
		return nil, err
	}
	if cfg.CheckOutHour, cfg.CheckOutMinute, err = parseClockEnv("CHECKOUT_TIME", defaultCheckOutTime); err != nil {
		return nil, err
	}

	if cfg.NoShowTolerance, err = parseDurationEnv("NOSHOW_TOLERANCE", defaultNoShowTolerance); err != nil {
		return nil, err
	}

	if cfg.ServiceTaxRate, err = parseFloatEnv("SERVICE_TAX_RATE", defaultServiceTaxRate); err != nil {
		return nil, err
	}
	if cfg.WeekendMultiplier, err = parseFloatEnv("WEEKEND_MULTIPLIER", defaultWeekendMultiplier); err != nil {
		return nil, err
	}

	if cfg.Cancellation.StandardPenalty, err = parseFloatEnv("CANCEL_PENALTY", defaultCancelPenalty); err != nil {
		return nil, err
	}
	if cfg.Cancellation.NoShowPenalty, err = parseFloatEnv("NOSHOW_PENALTY", defaultNoShowPenalty); err != nil {
		return nil, err
	}
	hours, err := parseFloatEnv("FREE_CANCEL_HOURS", defaultFreeCancelHours)
	if err != nil {
		return nil, err
	}
	cfg.Cancellation.FreeCancelHours = int(hours)

	if cfg.Seasons, err = parseSeasonRules(getEnv("SEASON_RULES", defaultSeasonRules)); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CheckInAnchor is the moment a stay formally starts on the given date,
// e.g. 14:00 on the check-in day. Penalty windows count from here.
func (c *Config) CheckInAnchor(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.CheckInHour, c.CheckInMinute, 0, 0, time.UTC)
}

func validate(cfg *Config) error {
	if cfg.ServiceTaxRate < 0 {
		return fmt.Errorf("SERVICE_TAX_RATE must not be negative")
	}
	if cfg.WeekendMultiplier <= 0 {
		return fmt.Errorf("WEEKEND_MULTIPLIER must be positive")
	}
	if cfg.Cancellation.StandardPenalty < 0 || cfg.Cancellation.StandardPenalty > 1 {
		return fmt.Errorf("CANCEL_PENALTY must be a fraction between 0 and 1")
	}
	if cfg.Cancellation.NoShowPenalty < 0 || cfg.Cancellation.NoShowPenalty > 1 {
		return fmt.Errorf("NOSHOW_PENALTY must be a fraction between 0 and 1")
	}
	if cfg.Cancellation.FreeCancelHours < 0 {
		return fmt.Errorf("FREE_CANCEL_HOURS must not be negative")
	}
	if cfg.NoShowTolerance < 0 {
		return fmt.Errorf("NOSHOW_TOLERANCE must not be negative")
	}
	for i, s := range cfg.Seasons {
		if s.Multiplier <= 0 {
			return fmt.Errorf("SEASON_RULES[%d]: multiplier must be positive", i)
		}
	}
	return nil
}

type seasonRuleJSON struct {
	Start      string  `json:"start"` // "MM-DD"
	End        string  `json:"end"`
	Multiplier float64 `json:"multiplier"`
}

func parseSeasonRules(raw string) ([]SeasonRule, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil, nil
	}

	var rows []seasonRuleJSON
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("SEASON_RULES: %w", err)
	}

	out := make([]SeasonRule, 0, len(rows))
	for i, r := range rows {
		sm, sd, err := parseMonthDay(r.Start)
		if err != nil {
			return nil, fmt.Errorf("SEASON_RULES[%d] start: %w", i, err)
		}
		em, ed, err := parseMonthDay(r.End)
		if err != nil {
			return nil, fmt.Errorf("SEASON_RULES[%d] end: %w", i, err)
		}
		out = append(out, SeasonRule{
			StartMonth: sm,
			StartDay:   sd,
			EndMonth:   em,
			EndDay:     ed,
			Multiplier: r.Multiplier,
		})
	}
	return out, nil
}

func parseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected MM-DD, got %q", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", s)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, fmt.Errorf("invalid day in %q", s)
	}
	return time.Month(m), d, nil
}

func parseClockEnv(key, fallback string) (int, int, error) {
	v := strings.TrimSpace(getEnv(key, fallback))
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: expected HH:MM, got %q", key, v)
	}
	return t.Hour(), t.Minute(), nil
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	v := strings.TrimSpace(getEnv(key, fallback))
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseFloatEnv(key, fallback string) (float64, error) {
	v := strings.TrimSpace(getEnv(key, fallback))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
