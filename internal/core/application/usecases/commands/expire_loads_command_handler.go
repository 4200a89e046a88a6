package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// ExpireLoadsCommandHandler runs the posting expiry sweep.
// Expires posted loads past their expires_at within a single transaction.
// Matched loads are not swept here: once matches exist, the offer deadline
// on each match governs, and the match expiry sweep handles those.
//
// Example:
//
//	handler := NewExpireLoadsCommandHandler(uowFactory, publisher)
//	cmd, _ := NewExpireLoadsCommand(time.Now().UTC())
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("load expiry sweep failed: %w", err)
//	}
type ExpireLoadsCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewExpireLoadsCommandHandler creates a handler for the load expiry sweep.
func NewExpireLoadsCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) ExpireLoadsCommandHandler {
	return ExpireLoadsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the load expiry sweep.
// Retrieves posted loads past their expiry at the sweep instant and
// transitions each to expired.
func (h *ExpireLoadsCommandHandler) Handle(ctx context.Context, cmd ExpireLoadsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	lapsed, err := loadRepo.GetExpiredPosted(ctx, cmd.Now())
	if err != nil {
		return err
	}

	events := make([]ports.DomainEvent, 0, len(lapsed))
	for _, l := range lapsed {
		if err = l.Expire(cmd.Now()); err != nil {
			return err
		}
		if err = loadRepo.Update(ctx, l); err != nil {
			return err
		}

		events = append(events, ports.DomainEvent{
			Type:       ports.EventLoadExpired,
			OccurredAt: cmd.Now(),
			LoadID:     l.ID().String(),
			Payload: map[string]any{
				"reference": l.Reference(),
			},
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(events) > 0 {
		_ = h.publisher.Publish(ctx, events...)
	}

	return nil
}
