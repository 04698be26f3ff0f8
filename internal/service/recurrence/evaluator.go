package recurrence

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

type Occurrence struct {
	ScheduleID   string    `json:"schedule_id"`
	MedicineName string    `json:"medicine_name"`
	Dosage       string    `json:"dosage"`
	FireTime     time.Time `json:"fire_time"`
}

// Evaluate reports whether now's calendar day is an occurrence day of s and, if so,
// the fire time on that day in now's location. An elapsed fire time is still returned.
func Evaluate(s domain.Schedule, now time.Time) (Occurrence, bool) {
	if !s.IsActive {
		return Occurrence{}, false
	}

	today := domain.DateOf(now)
	if today.Before(s.StartDate) {
		return Occurrence{}, false
	}
	if s.EndDate != nil && today.After(*s.EndDate) {
		return Occurrence{}, false
	}
	if !s.HasDay(now.Weekday()) {
		return Occurrence{}, false
	}

	return Occurrence{
		ScheduleID:   s.ID,
		MedicineName: s.MedicineName,
		Dosage:       s.Dosage,
		FireTime:     s.ScheduledTime.On(today, now.Location()),
	}, true
}

// UpcomingToday lists today's occurrences that have not passed yet, earliest first.
func UpcomingToday(schedules []domain.Schedule, now time.Time) []Occurrence {
	upcoming := make([]Occurrence, 0, len(schedules))
	for _, s := range schedules {
		occ, ok := Evaluate(s, now)
		if !ok {
			continue
		}
		if occ.FireTime.Before(now) {
			continue
		}
		upcoming = append(upcoming, occ)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].FireTime.Before(upcoming[j].FireTime)
	})

	return upcoming
}
