package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// ExpireMatchesCommandHandler runs the offer expiry sweep.
// Expires every pending or offered match whose response deadline has passed,
// within a single transaction, and announces the expirations afterwards.
//
// Example:
//
//	handler := NewExpireMatchesCommandHandler(uowFactory, publisher)
//	cmd, _ := NewExpireMatchesCommand(time.Now().UTC(), 0)
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("match expiry sweep failed: %w", err)
//	}
type ExpireMatchesCommandHandler struct {
	uowFactory MatchUoWFactory
	publisher  ports.EventPublisher
}

// NewExpireMatchesCommandHandler creates a handler for the match expiry sweep.
func NewExpireMatchesCommandHandler(uowFactory MatchUoWFactory, publisher ports.EventPublisher) ExpireMatchesCommandHandler {
	return ExpireMatchesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the match expiry sweep.
// Retrieves matches still awaiting a response created before the cutoff and
// transitions each to expired.
func (h *ExpireMatchesCommandHandler) Handle(ctx context.Context, cmd ExpireMatchesCommand) error {
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

	matchRepo := uow.MatchRepository()
	stale, err := matchRepo.GetStaleAwaitingResponse(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	events := make([]ports.DomainEvent, 0, len(stale))
	for _, m := range stale {
		if err = m.Expire(cmd.Now()); err != nil {
			return err
		}
		if err = matchRepo.Update(ctx, m); err != nil {
			return err
		}

		events = append(events, ports.DomainEvent{
			Type:       ports.EventMatchExpired,
			OccurredAt: cmd.Now(),
			LoadID:     m.LoadID().String(),
			MatchID:    m.ID().String(),
			Payload: map[string]any{
				"carrierId": m.CarrierID().String(),
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
