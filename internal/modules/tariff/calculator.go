package tariff

import (
	"time"

	"hotelreserve/internal/config"
)

// Calculator prices a single night from the room's base rate, applying
// the matching season rule and the weekend multiplier. The two are
// independent and multiply together.
type Calculator struct {
	weekendMultiplier float64
	seasons           []config.SeasonRule
}

func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		weekendMultiplier: cfg.WeekendMultiplier,
		seasons:           cfg.Seasons,
	}
}

// NightlyRate returns baseRate * seasonMultiplier * weekendMultiplier
// for the given night. A date outside every season keeps a neutral 1.0
// multiplier; there is no error path.
func (c *Calculator) NightlyRate(date time.Time, baseRate float64) float64 {
	rate := baseRate * c.seasonMultiplier(date)
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		rate *= c.weekendMultiplier
	}
	return rate
}

func (c *Calculator) seasonMultiplier(date time.Time) float64 {
	for _, s := range c.seasons {
		if inSeason(s, date) {
			return s.Multiplier
		}
	}
	return 1.0
}

// inSeason compares month-day ordinals so a rule wrapping the new year
// (e.g. 12-20 .. 01-05) resolves against the adjacent year and the date
// lands inside exactly one concrete interval.
func inSeason(s config.SeasonRule, date time.Time) bool {
	md := int(date.Month())*100 + date.Day()
	start := int(s.StartMonth)*100 + s.StartDay
	end := int(s.EndMonth)*100 + s.EndDay

	if start <= end {
		return md >= start && md <= end
	}
	// wraps the year boundary
	return md >= start || md <= end
}
