package device

import (
	"context"
	"sort"
	"sync"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

// memoryAlertRepository keeps state across Init calls the way the Redis store does.
type memoryAlertRepository struct {
	mu         sync.Mutex
	alerts     map[string]*domain.LocalAlert
	permission *bool
	channel    *domain.AlertChannel
}

func newMemoryAlertRepository() *memoryAlertRepository {
	return &memoryAlertRepository{alerts: make(map[string]*domain.LocalAlert)}
}

func (r *memoryAlertRepository) SaveAlert(_ context.Context, alert *domain.LocalAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *alert
	r.alerts[alert.LocalID] = &copied
	return nil
}

func (r *memoryAlertRepository) GetAlert(_ context.Context, localID string) (*domain.LocalAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert, ok := r.alerts[localID]
	if !ok {
		return nil, domain.ErrAlertNotFound
	}
	copied := *alert
	return &copied, nil
}

func (r *memoryAlertRepository) DeleteAlert(_ context.Context, localID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.alerts, localID)
	return nil
}

func (r *memoryAlertRepository) ListAlerts(_ context.Context) ([]*domain.LocalAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	alerts := make([]*domain.LocalAlert, 0, len(r.alerts))
	for _, a := range r.alerts {
		copied := *a
		alerts = append(alerts, &copied)
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].FireDateTime.Before(alerts[j].FireDateTime)
	})
	return alerts, nil
}

func (r *memoryAlertRepository) SetPermission(_ context.Context, granted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.permission = &granted
	return nil
}

func (r *memoryAlertRepository) GetPermission(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.permission == nil {
		return false, domain.ErrPermissionUnset
	}
	return *r.permission, nil
}

func (r *memoryAlertRepository) SaveChannel(_ context.Context, channel domain.AlertChannel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channel = &channel
	return nil
}

func (r *memoryAlertRepository) GetChannel(_ context.Context) (*domain.AlertChannel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.channel == nil {
		return nil, domain.ErrChannelNotFound
	}
	copied := *r.channel
	return &copied, nil
}
