package syncrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.SyncResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordSync(_ context.Context, _ domain.SyncResultRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
