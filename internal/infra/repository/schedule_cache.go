package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

const (
	scheduleListKey        = "schedules:list"
	defaultScheduleListTTL = 30 * time.Minute
)

type scheduleRecord struct {
	ID            string  `json:"id"`
	MedicineName  string  `json:"medicine_name"`
	Dosage        string  `json:"dosage"`
	ScheduledTime string  `json:"scheduled_time"`
	DaysOfWeek    []int   `json:"days_of_week"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	IsActive      bool    `json:"is_active"`
	Notes         string  `json:"notes,omitempty"`
}

type scheduleCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewScheduleCache(client *redis.Client, namespace string, ttl time.Duration) domain.ScheduleCache {
	if ttl <= 0 {
		ttl = defaultScheduleListTTL
	}
	return &scheduleCache{
		client: client,
		key:    namespace + ":" + scheduleListKey,
		ttl:    ttl,
	}
}

func (c *scheduleCache) SaveSchedules(ctx context.Context, schedules []domain.Schedule) error {
	records := make([]scheduleRecord, 0, len(schedules))
	for _, s := range schedules {
		records = append(records, toScheduleRecord(s))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return ErrInvalidScheduleData
	}

	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *scheduleCache) GetSchedules(ctx context.Context) ([]domain.Schedule, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScheduleCacheMiss
		}
		return nil, err
	}

	var records []scheduleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ErrInvalidScheduleData
	}

	schedules := make([]domain.Schedule, 0, len(records))
	for _, rec := range records {
		s, err := fromScheduleRecord(rec)
		if err != nil {
			return nil, ErrInvalidScheduleData
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

func (c *scheduleCache) InvalidateSchedules(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func toScheduleRecord(s domain.Schedule) scheduleRecord {
	days := make([]int, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		days = append(days, int(d))
	}

	rec := scheduleRecord{
		ID:            s.ID,
		MedicineName:  s.MedicineName,
		Dosage:        s.Dosage,
		ScheduledTime: s.ScheduledTime.String(),
		DaysOfWeek:    days,
		StartDate:     s.StartDate.String(),
		IsActive:      s.IsActive,
		Notes:         s.Notes,
	}
	if s.EndDate != nil {
		end := s.EndDate.String()
		rec.EndDate = &end
	}
	return rec
}

func fromScheduleRecord(rec scheduleRecord) (domain.Schedule, error) {
	scheduledTime, err := domain.ParseTimeOfDay(rec.ScheduledTime)
	if err != nil {
		return domain.Schedule{}, err
	}
	startDate, err := domain.ParseDate(rec.StartDate)
	if err != nil {
		return domain.Schedule{}, err
	}

	var endDate *domain.Date
	if rec.EndDate != nil {
		d, err := domain.ParseDate(*rec.EndDate)
		if err != nil {
			return domain.Schedule{}, err
		}
		endDate = &d
	}

	days := make([]domain.Weekday, 0, len(rec.DaysOfWeek))
	for _, d := range rec.DaysOfWeek {
		days = append(days, domain.Weekday(d))
	}

	return domain.Schedule{
		ID:            rec.ID,
		MedicineName:  rec.MedicineName,
		Dosage:        rec.Dosage,
		ScheduledTime: scheduledTime,
		DaysOfWeek:    days,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      rec.IsActive,
		Notes:         rec.Notes,
	}, nil
}
