//go:build gcloud

package config

import (
	"errors"
	"fmt"
)

var (
	ErrCloudTasksProjectMissing  = errors.New("GCLOUD_PROJECT_ID is required")
	ErrCloudTasksLocationMissing = errors.New("GCLOUD_LOCATION_ID is required")
	ErrCloudTasksQueueMissing    = errors.New("GCLOUD_QUEUE_ID is required")
	ErrAlertTargetMissing        = errors.New("GCLOUD_TARGET_URL or TASK_QUEUE_TARGET_URL is required")
)

// Validate checks the Cloud Tasks settings. The alert delivery target may come
// from either GCLOUD_TARGET_URL or TASK_QUEUE_TARGET_URL; the former wins.
func (c *TaskQueueConfig) Validate() error {
	if c.GCloudTargetURL == "" {
		c.GCloudTargetURL = c.TargetURL
	}

	required := []struct {
		value string
		err   error
	}{
		{c.GCloudProjectID, ErrCloudTasksProjectMissing},
		{c.GCloudLocationID, ErrCloudTasksLocationMissing},
		{c.GCloudQueueID, ErrCloudTasksQueueMissing},
		{c.GCloudTargetURL, ErrAlertTargetMissing},
	}

	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, r.err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("task queue configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
