package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/events"
)

// StartReconciliationWorker surfaces dual-write divergences. It does not
// repair them: partial failures are logged with full step context so an
// operator or reconciliation job can finish or revert the sequence.
func StartReconciliationWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventAccountWritePartialFailure, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.AccountWritePartialFailurePayload)
		if !ok {
			logger.Error("partial failure event with unexpected payload", zap.String("event_id", event.ID))
			return nil
		}
		logger.Error("account dual-write diverged",
			zap.String("event_id", event.ID),
			zap.String("operation", payload.Operation),
			zap.String("principal_id", payload.PrincipalID),
			zap.String("email", payload.Email),
			zap.Strings("completed_steps", payload.CompletedSteps),
			zap.String("failed_step", payload.FailedStep),
			zap.String("cause", payload.Cause),
		)
		return nil
	})
}
