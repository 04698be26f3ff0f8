package recurrence

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

func TestRule(t *testing.T) {
	s := mwfSchedule()
	s.ScheduledTime = domain.TimeOfDay{Hour: 9, Minute: 15}
	s.EndDate = datePtr(2024, time.December, 31)

	got, err := Rule(s, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, part := range []string{"FREQ=WEEKLY", "BYDAY=MO,WE,FR", "BYHOUR=9", "BYMINUTE=15", "UNTIL=20241231T235959Z"} {
		if !strings.Contains(got, part) {
			t.Errorf("rule %q does not contain %q", got, part)
		}
	}
}

func TestRule_InvalidSchedule(t *testing.T) {
	s := mwfSchedule()
	s.DaysOfWeek = nil

	_, err := Rule(s, time.UTC)
	if !errors.Is(err, domain.ErrNoDaysOfWeek) {
		t.Errorf("expected ErrNoDaysOfWeek, got %v", err)
	}
}

func TestNextOccurrences(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *domain.Schedule)
		after  time.Time
		n      int
		want   []time.Time
	}{
		{
			name:  "next three from wednesday morning",
			after: time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			n:     3,
			want: []time.Time{
				time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 17, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "fire time equal to after is excluded",
			after: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
			n:     1,
			want: []time.Time{
				time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "stops at inclusive end date",
			modify: func(s *domain.Schedule) { s.EndDate = datePtr(2024, time.June, 14) },
			after:  time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			n:      5,
			want: []time.Time{
				time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC),
				time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "starts at start date",
			modify: func(s *domain.Schedule) { s.StartDate = date(2024, time.July, 1) },
			after:  time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			n:      2,
			want: []time.Time{
				time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2024, time.July, 3, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "inactive has none",
			modify: func(s *domain.Schedule) { s.IsActive = false },
			after:  time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
			n:      3,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mwfSchedule()
			if tt.modify != nil {
				tt.modify(&s)
			}

			got, err := NextOccurrences(s, tt.after, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d occurrences, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("occurrence[%d]: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextOccurrences_AgreesWithEvaluate(t *testing.T) {
	s := mwfSchedule()
	s.StartDate = date(2024, time.June, 5)
	s.EndDate = datePtr(2024, time.June, 26)
	s.ScheduledTime = domain.TimeOfDay{Hour: 7, Minute: 45, Second: 30}

	for day := 0; day < 35; day++ {
		midnight := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)

		occ, evaluated := Evaluate(s, midnight)

		next, err := NextOccurrences(s, midnight.Add(-time.Nanosecond), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		previewed := len(next) == 1 && domain.DateOf(next[0]) == domain.DateOf(midnight)

		if evaluated != previewed {
			t.Fatalf("%s: evaluate=%v preview=%v", midnight.Format(time.DateOnly), evaluated, previewed)
		}
		if evaluated && !occ.FireTime.Equal(next[0]) {
			t.Errorf("%s: evaluate fire %v, preview fire %v", midnight.Format(time.DateOnly), occ.FireTime, next[0])
		}
	}
}
