package commands

import (
	"context"
	"time"

	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/ports"
)

// PostLoadCommandHandler handles the business logic for posting freight.
// Creates new loads in "posted" status and announces them to the
// notification sink.
//
// Example:
//
//	handler := NewPostLoadCommandHandler(uowFactory, publisher)
//	cmd, _ := NewPostLoadCommand(params)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("load posting failed: %w", err)
//	}
//	// Load is now posted and visible to candidate search
type PostLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewPostLoadCommandHandler creates a handler for load posting operations.
// Requires a LoadUoWFactory for transactional persistence and an
// EventPublisher for the load.posted notification.
func NewPostLoadCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) PostLoadCommandHandler {
	return PostLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the load posting command.
// Builds the load aggregate in "posted" status, persists it inside a
// transaction, and emits load.posted after the commit. Validation failures
// surface before any write.
func (h *PostLoadCommandHandler) Handle(ctx context.Context, cmd PostLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	l, err := load.NewLoad(load.Params{
		ID:                    cmd.LoadID(),
		Reference:             cmd.Reference(),
		EquipmentType:         cmd.EquipmentType(),
		WeightLbs:             cmd.WeightLbs(),
		Pickup:                cmd.Pickup(),
		Delivery:              cmd.Delivery(),
		Hazmat:                cmd.Hazmat(),
		TemperatureControlled: cmd.TemperatureControlled(),
		TeamDriver:            cmd.TeamDriver(),
		RateQuoted:            cmd.RateQuoted(),
		RateTotal:             cmd.RateTotal(),
		ExpiresAt:             cmd.ExpiresAt(),
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, l); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.DomainEvent{
		Type:       ports.EventLoadPosted,
		OccurredAt: time.Now().UTC(),
		LoadID:     l.ID().String(),
		Payload: map[string]any{
			"reference":     l.Reference(),
			"equipmentType": l.EquipmentType().String(),
			"pickupState":   l.Pickup().State(),
			"deliveryState": l.Delivery().State(),
		},
	})

	return nil
}
