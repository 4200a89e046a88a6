package commands

import (
	"context"

	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"
)

// MakeOfferCommandHandler handles extending an offer on a pending match.
// Re-checks carrier eligibility at offer time: capabilities drift between
// the original search and the offer (insurance lapses, verification is
// revoked), and an offer must not go out to a carrier that no longer
// qualifies.
//
// Example:
//
//	handler := NewMakeOfferCommandHandler(uowFactory, directory, publisher)
//	cmd, _ := NewMakeOfferCommand(matchID, 2650, time.Now().UTC())
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCarrierIneligible) {
//	    // carrier no longer qualifies; surface the failed rule to the operator
//	}
type MakeOfferCommandHandler struct {
	uowFactory LoadMatchUoWFactory
	carriers   ports.CarrierDirectory
	publisher  ports.EventPublisher
}

// NewMakeOfferCommandHandler creates a handler for offer operations.
// Requires the carrier directory for the eligibility re-check.
func NewMakeOfferCommandHandler(
	uowFactory LoadMatchUoWFactory,
	carriers ports.CarrierDirectory,
	publisher ports.EventPublisher,
) MakeOfferCommandHandler {
	return MakeOfferCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		publisher:  publisher,
	}
}

// Handle processes the offer command.
// Loads the match and its load, re-checks the carrier against the
// eligibility rules, transitions the match to "offered", and emits
// match.offered after the commit. The carrier's own engagement on this load
// is the match being promoted, so it does not count against the
// already-engaged rule.
func (h *MakeOfferCommandHandler) Handle(ctx context.Context, cmd MakeOfferCommand) error {
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
	m, err := matchRepo.Get(ctx, cmd.MatchID())
	if err != nil {
		return err
	}

	l, err := uow.LoadRepository().Get(ctx, m.LoadID())
	if err != nil {
		return err
	}

	capability, err := h.carriers.Get(ctx, m.CarrierID())
	if err != nil {
		return err
	}

	if rule, ok := services.NewEligibilityFilter().Check(l, capability, false, cmd.Now()); !ok {
		return errs.NewIneligibleCarrierError(capability.ID.String(), rule)
	}

	if err = m.MakeOffer(cmd.RateOffered(), cmd.Now()); err != nil {
		return err
	}

	if err = matchRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.DomainEvent{
		Type:       ports.EventMatchOffered,
		OccurredAt: cmd.Now(),
		LoadID:     m.LoadID().String(),
		MatchID:    m.ID().String(),
		Payload: map[string]any{
			"carrierId":   m.CarrierID().String(),
			"rateOffered": m.RateOffered(),
		},
	})

	return nil
}
