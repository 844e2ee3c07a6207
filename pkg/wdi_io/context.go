// pkg/wdi_io/context.go

package wdi_io

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-run state every pipeline stage needs:
// a context for the blocking network call and a logger tagged with the
// run for correlation across concurrent integration instances.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	RunID     string
	Timestamp time.Time
}

// NewContext tags log with a fresh run ID and the command name.
func NewContext(ctx context.Context, log *zap.Logger, cmdName string) *RuntimeContext {
	runID := uuid.NewString()
	return &RuntimeContext{
		Ctx: ctx,
		Log: log.With(
			zap.String("run_id", runID),
			zap.String("command", cmdName),
		),
		RunID:     runID,
		Timestamp: time.Now(),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the run outcome with its duration.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Debug("Run completed", zap.Duration("duration", duration))
		return
	}
	rc.Log.Error("Run failed",
		zap.Duration("duration", duration),
		zap.Error(*errPtr),
	)
}
