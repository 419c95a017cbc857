// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nms/internal/delivery/context"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/service"

	"github.com/pkg/errors"
)

const publishTimeout = 5 * time.Second

// Entity names used in audit events and metrics labels.
const (
	entityAddress = "address"
	entityCountry = "country"
	entityCity    = "city"
	entityCompany = "company"
	entityRole    = "role"
	entityUser    = "user"
)

// mutationReporter publishes audit events and counts outcomes for create and update operations.
type mutationReporter struct {
	publisher service.EventPublisher
	recorder  service.MutationRecorder
	logger    *slog.Logger
}

func newMutationReporter(publisher service.EventPublisher, recorder service.MutationRecorder, logger *slog.Logger) mutationReporter {
	return mutationReporter{
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (r mutationReporter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// succeeded runs after the unit of work committed. A failed publish is logged
// and never reported to the caller.
func (r mutationReporter) succeeded(ctx context.Context, entity string, action service.AuditAction, entityID, actorID int64, at time.Time) {
	r.recorder.RecordMutation(entity, action, service.OutcomeSuccess)

	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		OccurredAt: at,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := r.publisher.PublishAuditEvent(publishCtx, event); err != nil {
		r.log(ctx).Warn("Failed to publish audit event",
			slog.String("entity", entity),
			slog.Int64("entityID", entityID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

// failed maps err to the error returned to the caller. Errors matching one of
// expected are business outcomes and pass through unchanged. Anything else is
// an infrastructure failure: it is logged and replaced by fallback.
func (r mutationReporter) failed(
	ctx context.Context,
	entity string,
	action service.AuditAction,
	err error,
	fallback *domainerrors.BaseError,
	expected ...*domainerrors.BaseError,
) error {
	for _, target := range expected {
		if errors.Is(err, target) {
			r.recorder.RecordMutation(entity, action, outcomeOf(target))
			r.log(ctx).Info("Mutation rejected",
				slog.String("entity", entity),
				slog.String("action", string(action)),
				slog.String("reason", target.ErrorCode()),
			)

			return err
		}
	}

	r.recorder.RecordMutation(entity, action, service.OutcomeFailed)
	r.log(ctx).Error("Mutation failed",
		slog.String("entity", entity),
		slog.String("action", string(action)),
		slog.Any("error", err),
	)

	return fallback
}

func outcomeOf(target *domainerrors.BaseError) string {
	switch {
	case errors.Is(target, domainerrors.ErrNothingChanged):
		return service.OutcomeUnchanged
	case errors.Is(target, domainerrors.ErrRecordNotFound),
		errors.Is(target, domainerrors.ErrCountryNotFound),
		errors.Is(target, domainerrors.ErrRoleNotFound):
		return service.OutcomeNotFound
	case errors.Is(target, domainerrors.ErrPasswordHashFailed):
		return service.OutcomeFailed
	default:
		return service.OutcomeConflict
	}
}

// readError converts a repository lookup failure for the read-only endpoints.
func readError(ctx context.Context, logger *slog.Logger, err error, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerrors.ErrRecordNotFound
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Error("Lookup failed", slog.Any("error", err))

	return domainerrors.ErrInternalError
}
