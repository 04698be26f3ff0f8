package config

import "errors"

func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.BackendURL == "" {
		errs = append(errs, ErrBackendURLMissing)
	}
	if cfg.AuthToken == "" {
		errs = append(errs, ErrAuthTokenMissing)
	}
	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.TaskQueue.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
