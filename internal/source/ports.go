package source

import (
	"context"

	"souhrn/internal/core"
)

// Ports for inbound activity data.
type (
	// ActivityReader loads every activity row from a tabular source.
	// Rows come back in source order; cell values stay raw text.
	ActivityReader interface {
		ReadActivities(ctx context.Context) ([]core.Activity, error)
	}
)
