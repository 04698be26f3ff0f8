//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs is a no-op in local builds; trace correlation fields are Cloud Logging specific.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
