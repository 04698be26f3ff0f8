//go:build !gcloud

package config

// Validate accepts any local task queue setup; without PRIMIND_TASKS_URL
// alerts are kept in the local store only.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
