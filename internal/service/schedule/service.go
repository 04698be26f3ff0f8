package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/recurrence"
)

var ErrIDRequired = errors.New("schedule id is required")

type Service struct {
	repo    backend.ScheduleRepository
	cache   domain.ScheduleCache
	trigger reconcile.Triggerer
}

// NewService builds the schedule service. cache and trigger may be nil.
func NewService(repo backend.ScheduleRepository, cache domain.ScheduleCache, trigger reconcile.Triggerer) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		trigger: trigger,
	}
}

// List fetches schedules from the backend and refreshes the cached copy.
func (s *Service) List(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := s.repo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	s.store(ctx, schedules)
	return schedules, nil
}

// Get looks the schedule up in a fresh list; the backend has no single-item read.
func (s *Service) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	schedules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range schedules {
		if schedules[i].ID == id {
			return &schedules[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrScheduleNotFound, id)
}

func (s *Service) Create(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	slog.InfoContext(ctx, "schedule created",
		slog.String("schedule_id", created.ID),
		slog.String("medicine_name", created.MedicineName),
	)

	s.afterMutation(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	if schedule.ID == "" {
		return nil, ErrIDRequired
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	slog.InfoContext(ctx, "schedule updated",
		slog.String("schedule_id", updated.ID),
	)

	s.afterMutation(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	if err := s.repo.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	slog.InfoContext(ctx, "schedule deleted",
		slog.String("schedule_id", id),
	)

	s.afterMutation(ctx)
	return nil
}

// Cached returns the cached schedule list, falling back to the backend on a miss.
func (s *Service) Cached(ctx context.Context) ([]domain.Schedule, error) {
	if s.cache != nil {
		schedules, err := s.cache.GetSchedules(ctx)
		if err == nil {
			return schedules, nil
		}
		if !errors.Is(err, domain.ErrScheduleCacheMiss) {
			slog.WarnContext(ctx, "failed to read schedule cache",
				slog.String("error", err.Error()),
			)
		}
	}

	return s.List(ctx)
}

// Upcoming returns today's occurrences that have not fired yet.
func (s *Service) Upcoming(ctx context.Context, now time.Time) ([]recurrence.Occurrence, error) {
	schedules, err := s.Cached(ctx)
	if err != nil {
		return nil, err
	}
	return recurrence.UpcomingToday(schedules, now), nil
}

func (s *Service) afterMutation(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.InvalidateSchedules(ctx); err != nil {
			slog.WarnContext(ctx, "failed to invalidate schedule cache",
				slog.String("error", err.Error()),
			)
		}
	}

	if s.trigger == nil {
		return
	}

	if _, err := s.trigger.Trigger(ctx, reconcile.ReasonScheduleMutation); err != nil {
		if errors.Is(err, reconcile.ErrSyncInProgress) {
			slog.DebugContext(ctx, "sync after schedule mutation coalesced")
			return
		}
		slog.WarnContext(ctx, "sync after schedule mutation failed",
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) store(ctx context.Context, schedules []domain.Schedule) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveSchedules(ctx, schedules); err != nil {
		slog.WarnContext(ctx, "failed to cache schedules",
			slog.String("error", err.Error()),
		)
	}
}
