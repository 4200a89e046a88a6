package commands

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"
)

// RespondToOfferCommandHandler orchestrates carrier responses to offers.
//
// An acceptance runs the full cascade as one transaction: the load row is
// locked, the match is re-read under the lock, the match and load transition
// to accepted, every sibling match is force-cancelled, and the shipment is
// created with the load's scheduled dates. Two acceptances racing on the
// same load serialize on the row lock; the loser observes the winner's
// committed state and gets a ConflictError. Partial application of the
// cascade is never visible.
//
// A rejection touches only the match and takes no lock.
//
// Example:
//
//	handler := NewRespondToOfferCommandHandler(uowFactory, publisher)
//	cmd, _ := NewRespondToOfferCommand(matchID, DecisionAccept, 0, "", time.Now().UTC())
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("load already taken")
//	case errors.Is(err, errs.ErrInvalidStateTransition):
//	    log.Println("match no longer awaiting a response")
//	case err != nil:
//	    log.Printf("response failed: %v", err)
//	}
type RespondToOfferCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewRespondToOfferCommandHandler creates a handler for offer responses.
// Requires a UoWFactory spanning load, match, and shipment repositories.
func NewRespondToOfferCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) RespondToOfferCommandHandler {
	return RespondToOfferCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the offer response command, dispatching on the decision.
func (h *RespondToOfferCommandHandler) Handle(ctx context.Context, cmd RespondToOfferCommand) error {
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

	if cmd.Decision() == DecisionAccept {
		return h.accept(ctx, uow, cmd)
	}

	return h.reject(ctx, uow, cmd)
}

// accept runs the acceptance cascade under the load's row lock.
func (h *RespondToOfferCommandHandler) accept(ctx context.Context, uow UoW, cmd RespondToOfferCommand) error {
	matchRepo := uow.MatchRepository()
	loadRepo := uow.LoadRepository()

	m, err := matchRepo.Get(ctx, cmd.MatchID())
	if err != nil {
		return err
	}

	l, err := loadRepo.GetForUpdate(ctx, m.LoadID())
	if err != nil {
		return err
	}

	// re-read under the lock: a racing acceptance commits its cascade
	// before releasing the row, so a cancelled sibling is visible here
	m, err = matchRepo.Get(ctx, cmd.MatchID())
	if err != nil {
		return err
	}

	if l.Status() != load.Posted && l.Status() != load.Matched {
		return errs.NewConflictError("load", l.ID().String(), "no longer available")
	}

	if err = m.Accept(h.acceptedRate(cmd, m, l), cmd.Now()); err != nil {
		return err
	}
	if err = l.Accept(); err != nil {
		return err
	}

	cancelled, err := h.cancelSiblings(ctx, matchRepo, m, cmd)
	if err != nil {
		return err
	}

	s, err := shipment.NewShipment(shipment.Params{
		ID:                  kernel.NewUUID(),
		MatchID:             m.ID(),
		LoadID:              l.ID(),
		ScheduledPickupAt:   l.Pickup().Date(),
		ScheduledDeliveryAt: l.Delivery().Date(),
	})
	if err != nil {
		return err
	}

	if err = matchRepo.Update(ctx, m); err != nil {
		return err
	}
	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishAccepted(ctx, m, s, cancelled, cmd)

	return nil
}

// acceptedRate resolves the rate recorded on acceptance: an explicit rate on
// the response wins, then the offered rate, then the load's total rate.
func (h *RespondToOfferCommandHandler) acceptedRate(cmd RespondToOfferCommand, m *match.Match, l *load.Load) float64 {
	if cmd.Rate() > 0 {
		return cmd.Rate()
	}
	if m.RateOffered() > 0 {
		return m.RateOffered()
	}

	return l.RateTotal()
}

// cancelSiblings force-cancels every other non-terminal match on the load.
func (h *RespondToOfferCommandHandler) cancelSiblings(
	ctx context.Context,
	matchRepo ports.MatchRepository,
	accepted *match.Match,
	cmd RespondToOfferCommand,
) ([]*match.Match, error) {
	siblings, err := matchRepo.GetActiveByLoad(ctx, accepted.LoadID())
	if err != nil {
		return nil, err
	}

	cancelled := make([]*match.Match, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.ID().IsEqual(accepted.ID()) {
			continue
		}

		if err = sibling.Cancel(cmd.Now()); err != nil {
			return nil, err
		}
		if err = matchRepo.Update(ctx, sibling); err != nil {
			return nil, err
		}

		cancelled = append(cancelled, sibling)
	}

	return cancelled, nil
}

// reject records the carrier's rejection on the match alone.
func (h *RespondToOfferCommandHandler) reject(ctx context.Context, uow UoW, cmd RespondToOfferCommand) error {
	matchRepo := uow.MatchRepository()

	m, err := matchRepo.Get(ctx, cmd.MatchID())
	if err != nil {
		return err
	}

	if err = m.Reject(cmd.Reason(), cmd.Now()); err != nil {
		return err
	}

	if err = matchRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.DomainEvent{
		Type:       ports.EventMatchRejected,
		OccurredAt: cmd.Now(),
		LoadID:     m.LoadID().String(),
		MatchID:    m.ID().String(),
		Payload: map[string]any{
			"carrierId": m.CarrierID().String(),
			"reason":    m.RejectionReason().String(),
		},
	})

	return nil
}

func (h *RespondToOfferCommandHandler) publishAccepted(
	ctx context.Context,
	m *match.Match,
	s *shipment.Shipment,
	cancelled []*match.Match,
	cmd RespondToOfferCommand,
) {
	events := make([]ports.DomainEvent, 0, len(cancelled)+2)
	events = append(events, ports.DomainEvent{
		Type:       ports.EventMatchAccepted,
		OccurredAt: cmd.Now(),
		LoadID:     m.LoadID().String(),
		MatchID:    m.ID().String(),
		Payload: map[string]any{
			"carrierId":    m.CarrierID().String(),
			"rateAccepted": m.RateAccepted(),
		},
	})
	events = append(events, ports.DomainEvent{
		Type:       ports.EventShipmentCreated,
		OccurredAt: cmd.Now(),
		LoadID:     s.LoadID().String(),
		MatchID:    s.MatchID().String(),
		ShipmentID: s.ID().String(),
	})
	for _, sibling := range cancelled {
		events = append(events, ports.DomainEvent{
			Type:       ports.EventMatchCancelled,
			OccurredAt: cmd.Now(),
			LoadID:     sibling.LoadID().String(),
			MatchID:    sibling.ID().String(),
			Payload: map[string]any{
				"carrierId": sibling.CarrierID().String(),
			},
		})
	}

	_ = h.publisher.Publish(ctx, events...)
}
