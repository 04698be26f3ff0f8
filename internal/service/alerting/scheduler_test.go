package alerting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeDevice keeps scheduled alerts in memory.
type fakeDevice struct {
	granted bool
	nextID  int
	alerts  map[string]device.AlertRequest

	cancelErr   error
	scheduleErr map[string]error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{granted: true, alerts: make(map[string]device.AlertRequest)}
}

func (f *fakeDevice) PermissionGranted(_ context.Context) (bool, error) {
	return f.granted, nil
}

func (f *fakeDevice) CancelAll(_ context.Context) (int, error) {
	if f.cancelErr != nil {
		return 0, f.cancelErr
	}
	n := len(f.alerts)
	f.alerts = make(map[string]device.AlertRequest)
	return n, nil
}

func (f *fakeDevice) ScheduleAt(_ context.Context, req device.AlertRequest) (string, error) {
	if err := f.scheduleErr[req.NotificationInstanceID]; err != nil {
		return "", err
	}
	f.nextID++
	id := fmt.Sprintf("local-%d", f.nextID)
	f.alerts[id] = req
	return id, nil
}

// snapshot identifies alerts by correlation keys, ignoring local IDs.
func (f *fakeDevice) snapshot() []string {
	keys := make([]string, 0, len(f.alerts))
	for _, a := range f.alerts {
		keys = append(keys, a.ScheduleID+"/"+a.NotificationInstanceID+"@"+a.FireDateTime.Format(time.RFC3339))
	}
	sort.Strings(keys)
	return keys
}

var testNow = time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC)

func desired(scheduleID, instanceID string, fire time.Time) domain.DesiredAlert {
	return domain.DesiredAlert{ScheduleID: scheduleID, NotificationInstanceID: instanceID, FireDateTime: fire}
}

func TestScheduler_ApplyIsIdempotent(t *testing.T) {
	dev := newFakeDevice()
	s := NewScheduler(dev, nil, 0, nil)

	input := []domain.DesiredAlert{
		desired("s1", "n1", testNow.Add(time.Hour)),
		desired("s2", "n2", testNow.Add(3*time.Hour)),
		desired("s3", "n3", testNow.Add(2*time.Minute)),
		desired("s1", "n4", testNow.Add(24*time.Hour)),
	}

	if _, err := s.Apply(context.Background(), input, testNow); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	first := dev.snapshot()

	result, err := s.Apply(context.Background(), input, testNow)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	second := dev.snapshot()

	if len(first) != 2 {
		t.Fatalf("expected 2 alerts after first apply, got %v", first)
	}
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("alert set changed between runs:\nfirst:  %v\nsecond: %v", first, second)
	}
	if result.Cancelled != 2 {
		t.Errorf("cancelled: got %d, want 2", result.Cancelled)
	}
}

func TestScheduler_ApplyFilters(t *testing.T) {
	tests := []struct {
		name       string
		fire       time.Time
		leadTime   time.Duration
		wantReason SkipReason
	}{
		{name: "well ahead today", fire: testNow.Add(2 * time.Hour)},
		{name: "just over lead time", fire: testNow.Add(5*time.Minute + time.Second)},
		{name: "within lead time", fire: testNow.Add(4 * time.Minute), wantReason: SkipLeadTime},
		{name: "exactly lead time", fire: testNow.Add(5 * time.Minute), wantReason: SkipLeadTime},
		{name: "already fired", fire: testNow.Add(-time.Minute), wantReason: SkipPast},
		{name: "equal to now", fire: testNow, wantReason: SkipPast},
		{name: "tomorrow", fire: testNow.Add(24 * time.Hour), wantReason: SkipNotToday},
		{name: "just after midnight", fire: time.Date(2024, time.June, 13, 0, 0, 1, 0, time.UTC), wantReason: SkipNotToday},
		{name: "custom lead time", fire: testNow.Add(10 * time.Minute), leadTime: 15 * time.Minute, wantReason: SkipLeadTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			s := NewScheduler(dev, nil, tt.leadTime, nil)

			result, err := s.Apply(context.Background(), []domain.DesiredAlert{desired("s1", "n1", tt.fire)}, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			item := result.Items[0]
			if tt.wantReason == "" {
				if !item.Scheduled || result.Scheduled != 1 || len(dev.alerts) != 1 {
					t.Errorf("expected alert to be scheduled, got %+v", item)
				}
				if item.LocalID == "" {
					t.Error("expected local id on scheduled item")
				}
				return
			}

			if len(dev.alerts) != 0 {
				t.Errorf("expected no device alert, got %d", len(dev.alerts))
			}
			if !item.Skipped || item.SkipReason != tt.wantReason {
				t.Errorf("skip: got %v/%q, want %q", item.Skipped, item.SkipReason, tt.wantReason)
			}
			if result.Skipped != 1 {
				t.Errorf("skipped count: got %d", result.Skipped)
			}
		})
	}
}

func TestScheduler_ApplySameDayUsesNowLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Date(2024, time.June, 12, 20, 0, 0, 0, jst)

	// 22:00 JST on the 12th is 13:00 UTC; 01:00 JST on the 13th is still the 12th in UTC.
	today := time.Date(2024, time.June, 12, 13, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, time.June, 12, 16, 0, 0, 0, time.UTC)

	dev := newFakeDevice()
	s := NewScheduler(dev, nil, 0, nil)

	result, err := s.Apply(context.Background(), []domain.DesiredAlert{
		desired("s1", "today", today),
		desired("s1", "tomorrow", tomorrow),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Scheduled != 1 || result.Items[0].NotificationInstanceID != "today" {
		t.Errorf("expected only today's alert scheduled, got %+v", result.Items)
	}
	if result.Items[1].SkipReason != SkipNotToday {
		t.Errorf("expected not_today, got %q", result.Items[1].SkipReason)
	}
}

func TestScheduler_ApplyDeduplicates(t *testing.T) {
	dev := newFakeDevice()
	s := NewScheduler(dev, nil, 0, nil)

	fire := testNow.Add(time.Hour)
	result, err := s.Apply(context.Background(), []domain.DesiredAlert{
		desired("s1", "n1", fire),
		desired("s1", "n1", fire),
		desired("s2", "", fire),
		desired("s2", "", fire),
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Scheduled != 2 || result.Skipped != 2 {
		t.Errorf("got scheduled=%d skipped=%d, want 2/2", result.Scheduled, result.Skipped)
	}
	if result.Items[1].SkipReason != SkipDuplicate || result.Items[3].SkipReason != SkipDuplicate {
		t.Errorf("expected duplicates to be skipped, got %+v", result.Items)
	}
}

func TestScheduler_ApplyPermissionDenied(t *testing.T) {
	dev := newFakeDevice()
	dev.granted = false
	dev.alerts["existing"] = device.AlertRequest{ScheduleID: "s0"}

	s := NewScheduler(dev, nil, 0, nil)

	result, err := s.Apply(context.Background(), []domain.DesiredAlert{desired("s1", "n1", testNow.Add(time.Hour))}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.PermissionDenied {
		t.Error("expected PermissionDenied")
	}
	if len(dev.alerts) != 1 {
		t.Errorf("expected device alerts untouched, got %d", len(dev.alerts))
	}
}

func TestScheduler_ApplyCancelFailureAborts(t *testing.T) {
	dev := newFakeDevice()
	dev.cancelErr = errors.New("device busy")

	s := NewScheduler(dev, nil, 0, nil)

	_, err := s.Apply(context.Background(), []domain.DesiredAlert{desired("s1", "n1", testNow.Add(time.Hour))}, testNow)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(dev.alerts) != 0 {
		t.Errorf("expected nothing scheduled, got %d", len(dev.alerts))
	}
}

func TestScheduler_ApplyPartialFailureContinues(t *testing.T) {
	dev := newFakeDevice()
	dev.scheduleErr = map[string]error{"n2": errors.New("queue unavailable")}

	s := NewScheduler(dev, nil, 0, nil)

	result, err := s.Apply(context.Background(), []domain.DesiredAlert{
		desired("s1", "n1", testNow.Add(time.Hour)),
		desired("s2", "n2", testNow.Add(2*time.Hour)),
		desired("s3", "n3", testNow.Add(3*time.Hour)),
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Scheduled != 2 || result.Failed != 1 {
		t.Errorf("got scheduled=%d failed=%d, want 2/1", result.Scheduled, result.Failed)
	}
	if result.Items[1].Error == "" {
		t.Error("expected error recorded on failed item")
	}
}

func TestScheduler_ApplyCancelsBeforeScheduling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := NewMockDevice(ctrl)
	cache := domain.NewMockScheduleCache(ctrl)

	fire := testNow.Add(time.Hour)

	gomock.InOrder(
		dev.EXPECT().PermissionGranted(gomock.Any()).Return(true, nil),
		dev.EXPECT().CancelAll(gomock.Any()).Return(3, nil),
		cache.EXPECT().GetSchedules(gomock.Any()).Return([]domain.Schedule{
			{ID: "s1", MedicineName: "Aspirin", Dosage: "1 pill"},
		}, nil),
		dev.EXPECT().ScheduleAt(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req device.AlertRequest) (string, error) {
				if req.NotificationInstanceID != "n1" || !req.FireDateTime.Equal(fire) {
					t.Errorf("unexpected request: %+v", req)
				}
				if req.Title != "Time to take Aspirin" {
					t.Errorf("title: got %q", req.Title)
				}
				return "local-1", nil
			}),
		dev.EXPECT().ScheduleAt(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req device.AlertRequest) (string, error) {
				if req.Title != fallbackTitle {
					t.Errorf("expected fallback title for unknown schedule, got %q", req.Title)
				}
				return "local-2", nil
			}),
	)

	s := NewScheduler(dev, cache, 0, nil)

	result, err := s.Apply(context.Background(), []domain.DesiredAlert{
		desired("s1", "n1", fire),
		desired("unknown", "n2", fire),
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Cancelled != 3 || result.Scheduled != 2 {
		t.Errorf("got %+v", result)
	}
}

func TestScheduler_ApplyCacheMissUsesFallbackTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dev := NewMockDevice(ctrl)
	cache := domain.NewMockScheduleCache(ctrl)

	dev.EXPECT().PermissionGranted(gomock.Any()).Return(true, nil)
	dev.EXPECT().CancelAll(gomock.Any()).Return(0, nil)
	cache.EXPECT().GetSchedules(gomock.Any()).Return(nil, domain.ErrScheduleCacheMiss)
	dev.EXPECT().ScheduleAt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req device.AlertRequest) (string, error) {
			if req.Title != fallbackTitle || req.Body != "" {
				t.Errorf("unexpected title/body: %q/%q", req.Title, req.Body)
			}
			return "local-1", nil
		})

	s := NewScheduler(dev, cache, 0, nil)

	if _, err := s.Apply(context.Background(), []domain.DesiredAlert{desired("s1", "n1", testNow.Add(time.Hour))}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
