//go:build !gcloud

package syncrecorder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

func TestNewRecorder_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := rec.(*noopRecorder); !ok {
				t.Errorf("expected noop recorder, got %T", rec)
			}
		})
	}
}

func TestSyncPoint(t *testing.T) {
	syncedAt := time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC)

	point := syncPoint("device-1", domain.SyncResultRecord{
		SyncedAt:       syncedAt,
		Reason:         "foreground",
		Outcome:        "success",
		PendingCount:   4,
		ScheduledCount: 2,
		SkippedCount:   2,
		Duration:       1500 * time.Millisecond,
	})

	line := write.PointToLineProtocol(point, time.Second)

	for _, want := range []string{
		"sync_result,",
		"device_id=device-1",
		"outcome=success",
		"reason=foreground",
		"pending_count=4i",
		"scheduled_count=2i",
		"duration_ms=1500i",
		"permission_denied=false",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line protocol %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(line), " 1718179200") {
		t.Errorf("expected timestamp of sync, got %q", line)
	}
}
