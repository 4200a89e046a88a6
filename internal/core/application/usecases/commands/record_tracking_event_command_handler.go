package commands

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
)

// RecordTrackingEventCommandHandler ingests tracking events from the field.
//
// Every event is appended to the shipment's history. Milestone events
// additionally drive the shipment lifecycle and pull the paired load along;
// a milestone whose transition is no longer legal (a replayed pickup, a
// breakdown after delivery) is recorded but applied as a silent no-op, which
// is what makes ingestion idempotent. Alert-class events are published with
// a severity but never alter shipment state by themselves.
//
// The shipment row is locked for the transaction so events for one shipment
// apply serially; different shipments ingest concurrently.
//
// Example:
//
//	handler := NewRecordTrackingEventCommandHandler(uowFactory, publisher)
//	cmd, _ := NewRecordTrackingEventCommand(params)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("tracking ingestion failed: %w", err)
//	}
type RecordTrackingEventCommandHandler struct {
	uowFactory ShipmentLoadUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordTrackingEventCommandHandler creates a handler for tracking
// ingestion. Requires a ShipmentLoadUoWFactory because milestones update
// both the shipment and its load.
func NewRecordTrackingEventCommandHandler(
	uowFactory ShipmentLoadUoWFactory,
	publisher ports.EventPublisher,
) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the tracking event command.
// Appends the event, applies the milestone transition when one is legal,
// and emits the milestone and alert notifications after the commit.
func (h *RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	ev, err := shipment.NewTrackingEvent(shipment.TrackingEventParams{
		ID:           kernel.NewUUID(),
		ShipmentID:   s.ID(),
		EventType:    cmd.EventType(),
		Status:       cmd.Status(),
		Location:     cmd.Location(),
		TemperatureC: cmd.TemperatureC(),
		HumidityPct:  cmd.HumidityPct(),
		Description:  cmd.Description(),
		Source:       cmd.Source(),
		OccurredAt:   cmd.OccurredAt(),
	})
	if err != nil {
		return err
	}

	if err = shipmentRepo.AppendEvent(ctx, ev); err != nil {
		return err
	}

	events, err := h.applyMilestone(ctx, uow, s, ev)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if ev.EventType().IsAlert() {
		events = append(events, ports.DomainEvent{
			Type:       ports.EventShipmentAlert,
			OccurredAt: ev.OccurredAt(),
			LoadID:     s.LoadID().String(),
			ShipmentID: s.ID().String(),
			Payload: map[string]any{
				"eventType":   ev.EventType().String(),
				"severity":    ev.EventType().AlertSeverity().String(),
				"description": ev.Description(),
			},
		})
	}
	if len(events) > 0 {
		_ = h.publisher.Publish(ctx, events...)
	}

	return nil
}

// applyMilestone drives the shipment and its load through the transition the
// event maps to. Returns the notifications to publish after the commit; an
// illegal transition returns none and changes nothing.
func (h *RecordTrackingEventCommandHandler) applyMilestone(
	ctx context.Context,
	uow ShipmentLoadUoW,
	s *shipment.Shipment,
	ev *shipment.TrackingEvent,
) ([]ports.DomainEvent, error) {
	shipmentEvent, ok := ev.EventType().ShipmentEvent()
	if !ok {
		return nil, nil
	}
	if !s.Status().CanApply(shipmentEvent) {
		// replayed or out-of-order milestone: recorded, not re-applied
		return nil, nil
	}

	// exceptions touch only the shipment: the load has no exception state
	if shipmentEvent == shipment.EventMarkException {
		if err := s.MarkException(); err != nil {
			return nil, err
		}
		if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
			return nil, err
		}

		return []ports.DomainEvent{{
			Type:       ports.EventShipmentException,
			OccurredAt: ev.OccurredAt(),
			LoadID:     s.LoadID().String(),
			MatchID:    s.MatchID().String(),
			ShipmentID: s.ID().String(),
			Payload:    map[string]any{"eventType": ev.EventType().String()},
		}}, nil
	}

	loadRepo := uow.LoadRepository()
	l, err := loadRepo.Get(ctx, s.LoadID())
	if err != nil {
		return nil, err
	}

	notification, err := h.transition(s, l, shipmentEvent, ev)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}
	if err = loadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	return []ports.DomainEvent{notification}, nil
}

// transition applies one load-coupled milestone to the shipment and pulls
// the load along.
func (h *RecordTrackingEventCommandHandler) transition(
	s *shipment.Shipment,
	l *load.Load,
	shipmentEvent shipment.Event,
	ev *shipment.TrackingEvent,
) (ports.DomainEvent, error) {
	notification := ports.DomainEvent{
		OccurredAt: ev.OccurredAt(),
		LoadID:     s.LoadID().String(),
		MatchID:    s.MatchID().String(),
		ShipmentID: s.ID().String(),
	}

	switch shipmentEvent { //nolint:exhaustive //exceptions are handled by the caller
	case shipment.EventPickUp:
		if err := s.PickUp(ev.OccurredAt()); err != nil {
			return ports.DomainEvent{}, err
		}
		if err := l.MarkPickedUp(); err != nil {
			return ports.DomainEvent{}, err
		}
		notification.Type = ports.EventShipmentPickedUp

	case shipment.EventStartTransit:
		if err := s.StartTransit(); err != nil {
			return ports.DomainEvent{}, err
		}
		if err := l.MarkInTransit(); err != nil {
			return ports.DomainEvent{}, err
		}
		notification.Type = ports.EventShipmentInTransit

	case shipment.EventDeliver:
		if err := s.Deliver(ev.OccurredAt()); err != nil {
			return ports.DomainEvent{}, err
		}
		if err := l.MarkDelivered(); err != nil {
			return ports.DomainEvent{}, err
		}
		notification.Type = ports.EventShipmentDelivered
		if onTime := s.DeliveredOnTime(); onTime != nil {
			notification.Payload = map[string]any{"deliveredOnTime": *onTime}
		}
	}

	return notification, nil
}
