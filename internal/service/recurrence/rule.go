package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

// rrule weekdays indexed by the backend numbering (0=Sunday).
var weekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

func toROption(s domain.Schedule, loc *time.Location) (rrule.ROption, error) {
	if err := s.Validate(); err != nil {
		return rrule.ROption{}, err
	}

	byDay := make([]rrule.Weekday, 0, len(weekdays))
	for i, wd := range weekdays {
		if s.HasDay(time.Weekday(i)) {
			byDay = append(byDay, wd)
		}
	}

	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   s.ScheduledTime.On(s.StartDate, loc),
		Byweekday: byDay,
		Byhour:    []int{s.ScheduledTime.Hour},
		Byminute:  []int{s.ScheduledTime.Minute},
		Bysecond:  []int{s.ScheduledTime.Second},
	}
	if s.EndDate != nil {
		// end date is inclusive
		opt.Until = time.Date(s.EndDate.Year, s.EndDate.Month, s.EndDate.Day, 23, 59, 59, 0, loc)
	}

	return opt, nil
}

// NewRule converts s into an RFC 5545 weekly rule anchored in loc.
func NewRule(s domain.Schedule, loc *time.Location) (*rrule.RRule, error) {
	opt, err := toROption(s, loc)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build rrule: %w", err)
	}
	return rule, nil
}

// Rule returns the RRULE text of s, including its DTSTART.
func Rule(s domain.Schedule, loc *time.Location) (string, error) {
	rule, err := NewRule(s, loc)
	if err != nil {
		return "", err
	}
	return rule.String(), nil
}

// NextOccurrences returns up to n fire times strictly after the given instant,
// in after's location. Inactive schedules have none.
func NextOccurrences(s domain.Schedule, after time.Time, n int) ([]time.Time, error) {
	if !s.IsActive || n <= 0 {
		return nil, nil
	}

	loc := after.Location()
	opt, err := toROption(s, loc)
	if err != nil {
		return nil, err
	}

	// Skip the weeks before after so long-running schedules don't iterate from their start.
	if from := domain.DateOf(after); from.After(s.StartDate) {
		opt.Dtstart = s.ScheduledTime.On(from, loc)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build rrule: %w", err)
	}

	results := make([]time.Time, 0, n)
	next := rule.Iterator()
	for {
		t, ok := next()
		if !ok {
			break
		}
		if !t.After(after) {
			continue
		}
		results = append(results, t)
		if len(results) >= n {
			break
		}
	}

	return results, nil
}
