package domain

import "fmt"

// WorkCalendar defines how many hours make a workday and how many workdays
// make a workweek. It is used only for human-readable duration aggregation.
type WorkCalendar struct {
	HoursPerDay int `yaml:"hours_per_day"`
	DaysPerWeek int `yaml:"days_per_week"`
}

// DefaultCalendar returns the standard 8h/day, 5d/week calendar.
func DefaultCalendar() WorkCalendar {
	return WorkCalendar{HoursPerDay: 8, DaysPerWeek: 5}
}

// Validate checks that both calendar dimensions are positive.
func (c WorkCalendar) Validate() error {
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day must be positive, got %d", c.HoursPerDay)
	}
	if c.DaysPerWeek <= 0 {
		return fmt.Errorf("days per week must be positive, got %d", c.DaysPerWeek)
	}
	return nil
}
