package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Weekday follows the backend numbering: 0=Sunday .. 6=Saturday.
type Weekday int

func (w Weekday) Valid() bool {
	return w >= 0 && w <= 6
}

func (w Weekday) Time() time.Weekday {
	return time.Weekday(w)
}

// TimeOfDay is a wall-clock time without a date. It recurs.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts HH:MM:SS and HH:MM.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	values := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		values[i] = v
	}

	t := TimeOfDay{Hour: values[0], Minute: values[1], Second: values[2]}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return t, nil
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On returns the instant at this time of day on the given date in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, loc)
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	// Some backend responses carry a full timestamp for date columns.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Schedule is a recurring medicine reminder. The backend owns the source of truth;
// this is the client's cached copy.
type Schedule struct {
	ID            string
	MedicineName  string
	Dosage        string
	ScheduledTime TimeOfDay
	DaysOfWeek    []Weekday
	StartDate     Date
	EndDate       *Date
	IsActive      bool
	Notes         string
}

func (s *Schedule) HasDay(w time.Weekday) bool {
	for _, d := range s.DaysOfWeek {
		if d.Time() == w {
			return true
		}
	}
	return false
}

// Validate checks the schedule invariants and reports every violation at once.
func (s *Schedule) Validate() error {
	var errs []error

	if strings.TrimSpace(s.MedicineName) == "" {
		errs = append(errs, ErrMedicineNameRequired)
	}
	if !s.ScheduledTime.Valid() {
		errs = append(errs, ErrInvalidTimeOfDay)
	}
	if len(s.DaysOfWeek) == 0 {
		errs = append(errs, ErrNoDaysOfWeek)
	}
	for _, d := range s.DaysOfWeek {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(d)))
		}
	}
	if s.StartDate.IsZero() {
		errs = append(errs, ErrStartDateRequired)
	}
	if s.EndDate != nil && !s.StartDate.IsZero() && s.EndDate.Before(s.StartDate) {
		errs = append(errs, ErrEndBeforeStart)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid schedule: %w", errors.Join(errs...))
	}
	return nil
}

// Title is the alert headline for this schedule.
func (s *Schedule) Title() string {
	return "Time to take " + s.MedicineName
}

// Body is the alert text for this schedule.
func (s *Schedule) Body() string {
	if s.Dosage == "" {
		return s.MedicineName
	}
	return s.MedicineName + " - " + s.Dosage
}
