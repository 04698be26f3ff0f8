package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

const (
	alertKeyPrefix   = "alerts:alert:"
	alertIndexKey    = "alerts:index"
	permissionKey    = "alerts:permission"
	channelKey       = "alerts:channel"
	alertRetention   = 24 * time.Hour // kept past fire time for the alert list and tap callbacks
	minAlertLifetime = 1 * time.Hour
)

type alertRecord struct {
	LocalID                string    `json:"local_id"`
	ScheduleID             string    `json:"schedule_id"`
	NotificationInstanceID string    `json:"notification_instance_id"`
	FireDateTime           time.Time `json:"fire_datetime"`
	Title                  string    `json:"title"`
	Body                   string    `json:"body"`
	ChannelID              string    `json:"channel_id"`
	TaskName               string    `json:"task_name"`
	CreatedAt              time.Time `json:"created_at"`
}

type channelRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Importance string `json:"importance"`
}

type alertRepository struct {
	client    *redis.Client
	namespace string
	now       func() time.Time
}

// NewAlertRepository stores alerts under keys prefixed with namespace (usually the device ID).
func NewAlertRepository(client *redis.Client, namespace string) domain.AlertRepository {
	return &alertRepository{
		client:    client,
		namespace: namespace,
		now:       time.Now,
	}
}

func (r *alertRepository) key(parts ...string) string {
	k := r.namespace + ":"
	for _, p := range parts {
		k += p
	}
	return k
}

func (r *alertRepository) SaveAlert(ctx context.Context, alert *domain.LocalAlert) error {
	if alert == nil || alert.LocalID == "" {
		return ErrInvalidAlertData
	}

	data, err := json.Marshal(alertRecord{
		LocalID:                alert.LocalID,
		ScheduleID:             alert.ScheduleID,
		NotificationInstanceID: alert.NotificationInstanceID,
		FireDateTime:           alert.FireDateTime,
		Title:                  alert.Title,
		Body:                   alert.Body,
		ChannelID:              alert.ChannelID,
		TaskName:               alert.TaskName,
		CreatedAt:              alert.CreatedAt,
	})
	if err != nil {
		return ErrInvalidAlertData
	}

	ttl := alert.FireDateTime.Sub(r.now()) + alertRetention
	if ttl < minAlertLifetime {
		ttl = minAlertLifetime
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(alertKeyPrefix, alert.LocalID), data, ttl)
	pipe.SAdd(ctx, r.key(alertIndexKey), alert.LocalID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *alertRepository) GetAlert(ctx context.Context, localID string) (*domain.LocalAlert, error) {
	data, err := r.client.Get(ctx, r.key(alertKeyPrefix, localID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlertNotFound, localID)
		}
		return nil, err
	}

	return decodeAlert(data)
}

func (r *alertRepository) DeleteAlert(ctx context.Context, localID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key(alertKeyPrefix, localID))
	pipe.SRem(ctx, r.key(alertIndexKey), localID)

	_, err := pipe.Exec(ctx)
	return err
}

// ListAlerts returns the stored alerts ordered by fire time. Index entries whose
// record has expired are pruned on the way.
func (r *alertRepository) ListAlerts(ctx context.Context) ([]*domain.LocalAlert, error) {
	ids, err := r.client.SMembers(ctx, r.key(alertIndexKey)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.LocalAlert{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.key(alertKeyPrefix, id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	alerts := make([]*domain.LocalAlert, 0, len(values))
	var stale []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		alert, err := decodeAlert([]byte(s))
		if err != nil {
			slog.WarnContext(ctx, "dropping undecodable alert record",
				slog.String("local_id", ids[i]),
				slog.String("error", err.Error()),
			)
			stale = append(stale, ids[i])
			continue
		}
		alerts = append(alerts, alert)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, r.key(alertIndexKey), stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to prune alert index",
				slog.Int("stale_count", len(stale)),
				slog.String("error", err.Error()),
			)
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].FireDateTime.Before(alerts[j].FireDateTime)
	})

	return alerts, nil
}

func (r *alertRepository) SetPermission(ctx context.Context, granted bool) error {
	return r.client.Set(ctx, r.key(permissionKey), granted, 0).Err()
}

func (r *alertRepository) GetPermission(ctx context.Context) (bool, error) {
	granted, err := r.client.Get(ctx, r.key(permissionKey)).Bool()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, domain.ErrPermissionUnset
		}
		return false, err
	}
	return granted, nil
}

func (r *alertRepository) SaveChannel(ctx context.Context, channel domain.AlertChannel) error {
	data, err := json.Marshal(channelRecord(channel))
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(channelKey), data, 0).Err()
}

func (r *alertRepository) GetChannel(ctx context.Context) (*domain.AlertChannel, error) {
	data, err := r.client.Get(ctx, r.key(channelKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrChannelNotFound
		}
		return nil, err
	}

	var record channelRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	channel := domain.AlertChannel(record)
	return &channel, nil
}

func decodeAlert(data []byte) (*domain.LocalAlert, error) {
	var record alertRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAlertData
	}

	return &domain.LocalAlert{
		LocalID:                record.LocalID,
		ScheduleID:             record.ScheduleID,
		NotificationInstanceID: record.NotificationInstanceID,
		FireDateTime:           record.FireDateTime,
		Title:                  record.Title,
		Body:                   record.Body,
		ChannelID:              record.ChannelID,
		TaskName:               record.TaskName,
		CreatedAt:              record.CreatedAt,
	}, nil
}
