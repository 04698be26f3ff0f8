package recurrence

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

func date(y int, m time.Month, d int) domain.Date {
	return domain.Date{Year: y, Month: m, Day: d}
}

func datePtr(y int, m time.Month, d int) *domain.Date {
	v := date(y, m, d)
	return &v
}

func mwfSchedule() domain.Schedule {
	return domain.Schedule{
		ID:            "sched-1",
		MedicineName:  "Aspirin",
		Dosage:        "1 pill",
		ScheduledTime: domain.TimeOfDay{Hour: 9},
		DaysOfWeek:    []domain.Weekday{1, 3, 5},
		StartDate:     date(2024, time.January, 1),
		IsActive:      true,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(s *domain.Schedule)
		now      time.Time
		wantOK   bool
		wantFire time.Time
	}{
		{
			name:     "wednesday before fire time",
			now:      time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantFire: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "wednesday after fire time still returns today's occurrence",
			now:      time.Date(2024, time.June, 12, 9, 30, 0, 0, time.UTC),
			wantOK:   true,
			wantFire: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "tuesday is not an occurrence day",
			now:    time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC),
			wantOK: false,
		},
		{
			name:   "inactive schedule",
			modify: func(s *domain.Schedule) { s.IsActive = false },
			now:    time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			wantOK: false,
		},
		{
			name:     "end date is inclusive",
			modify:   func(s *domain.Schedule) { s.EndDate = datePtr(2024, time.June, 12) },
			now:      time.Date(2024, time.June, 12, 23, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantFire: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "after end date",
			modify: func(s *domain.Schedule) { s.EndDate = datePtr(2024, time.June, 11) },
			now:    time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			wantOK: false,
		},
		{
			name:   "before start date on a matching weekday",
			modify: func(s *domain.Schedule) { s.StartDate = date(2024, time.June, 13) },
			now:    time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			wantOK: false,
		},
		{
			name:     "start date is inclusive",
			modify:   func(s *domain.Schedule) { s.StartDate = date(2024, time.June, 12) },
			now:      time.Date(2024, time.June, 12, 0, 0, 1, 0, time.UTC),
			wantOK:   true,
			wantFire: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mwfSchedule()
			if tt.modify != nil {
				tt.modify(&s)
			}

			occ, ok := Evaluate(s, tt.now)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !occ.FireTime.Equal(tt.wantFire) {
				t.Errorf("fire time: got %v, want %v", occ.FireTime, tt.wantFire)
			}
			if occ.ScheduleID != s.ID {
				t.Errorf("schedule id: got %q, want %q", occ.ScheduleID, s.ID)
			}
		})
	}
}

func TestEvaluate_UsesNowLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	s := mwfSchedule()

	// 2024-06-11 23:30 UTC is Wednesday 08:30 in JST.
	now := time.Date(2024, time.June, 11, 23, 30, 0, 0, time.UTC).In(jst)

	occ, ok := Evaluate(s, now)
	if !ok {
		t.Fatal("expected an occurrence on wednesday in JST")
	}

	want := time.Date(2024, time.June, 12, 9, 0, 0, 0, jst)
	if !occ.FireTime.Equal(want) {
		t.Errorf("fire time: got %v, want %v", occ.FireTime, want)
	}
	if occ.FireTime.Location() != jst {
		t.Errorf("expected fire time in now's location, got %v", occ.FireTime.Location())
	}
}

func TestEvaluate_InactiveNeverOccurs(t *testing.T) {
	s := mwfSchedule()
	s.IsActive = false
	s.DaysOfWeek = []domain.Weekday{0, 1, 2, 3, 4, 5, 6}

	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		now := start.AddDate(0, 0, i)
		if _, ok := Evaluate(s, now); ok {
			t.Fatalf("inactive schedule produced an occurrence on %s", now.Format(time.DateOnly))
		}
	}
}

func TestUpcomingToday(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC) // Wednesday

	morning := mwfSchedule()
	morning.ID = "morning"

	evening := mwfSchedule()
	evening.ID = "evening"
	evening.ScheduledTime = domain.TimeOfDay{Hour: 20}

	noon := mwfSchedule()
	noon.ID = "noon"
	noon.ScheduledTime = domain.TimeOfDay{Hour: 12, Minute: 30}

	tuesdayOnly := mwfSchedule()
	tuesdayOnly.ID = "tuesday"
	tuesdayOnly.DaysOfWeek = []domain.Weekday{2}
	tuesdayOnly.ScheduledTime = domain.TimeOfDay{Hour: 11}

	got := UpcomingToday([]domain.Schedule{evening, morning, tuesdayOnly, noon}, now)

	wantIDs := []string{"noon", "evening"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d occurrences, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ScheduleID != id {
			t.Errorf("occurrence[%d]: got %q, want %q", i, got[i].ScheduleID, id)
		}
	}
}

func TestUpcomingToday_Empty(t *testing.T) {
	got := UpcomingToday(nil, time.Now())
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no occurrences, got %d", len(got))
	}
}
