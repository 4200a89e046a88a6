package commands

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrMakeOfferCommandIsNotConstructed = errors.New(
	"MakeOfferCommand must be created via NewMakeOfferCommand constructor",
)

// MakeOfferCommand promotes a pending match to an offer extended to the
// carrier. The rate is optional; a zero rate leaves the offer open-rated and
// the acceptance falls back to the load's total rate.
//
// Example:
//
//	cmd, err := NewMakeOfferCommand(matchID, 2650, time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid offer: %w", err)
//	}
//
//	handler := NewMakeOfferCommandHandler(uowFactory, directory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("offer failed: %w", err)
//	}
type MakeOfferCommand struct { //nolint:recvcheck //using for validation
	matchID     kernel.UUID
	rateOffered float64
	now         time.Time

	guard guard.ConstructorGuard
}

// NewMakeOfferCommand creates a command to extend an offer on a match.
// Validates that the match id is constructed, the rate is non-negative, and
// the offer instant is set.
func NewMakeOfferCommand(matchID kernel.UUID, rateOffered float64, now time.Time) (MakeOfferCommand, error) {
	offerCommand := MakeOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerCommand.setMatchID(matchID),
		offerCommand.setRateOffered(rateOffered),
		offerCommand.setNow(now),
	); err != nil {
		return MakeOfferCommand{}, err
	}

	return offerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMakeOfferCommandIsNotConstructed if validation fails.
func (c MakeOfferCommand) Validate() error {
	return c.guard.Validate(ErrMakeOfferCommandIsNotConstructed)
}

// MatchID returns the match to extend an offer on.
func (c MakeOfferCommand) MatchID() kernel.UUID {
	return c.matchID
}

// RateOffered returns the offered rate in dollars, zero when open-rated.
func (c MakeOfferCommand) RateOffered() float64 {
	return c.rateOffered
}

// Now returns the offer instant.
func (c MakeOfferCommand) Now() time.Time {
	return c.now
}

func (c *MakeOfferCommand) setMatchID(matchID kernel.UUID) error {
	if err := matchID.Validate(); err != nil {
		return err
	}

	c.matchID = matchID
	return nil
}

func (c *MakeOfferCommand) setRateOffered(rateOffered float64) error {
	if rateOffered < 0 {
		return errs.NewValueIsOutOfRangeError("rateOffered", rateOffered, 0, "unbounded")
	}

	c.rateOffered = rateOffered
	return nil
}

func (c *MakeOfferCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
