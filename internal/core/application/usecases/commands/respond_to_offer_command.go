package commands

import (
	"errors"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrRespondToOfferCommandIsNotConstructed = errors.New(
	"RespondToOfferCommand must be created via NewRespondToOfferCommand constructor",
)

// Decision is the carrier's answer to an offer.
type Decision string

const (
	// DecisionAccept commits the carrier to the haul.
	DecisionAccept Decision = "accept"
	// DecisionReject declines the offer with a reason.
	DecisionReject Decision = "reject"
)

// String returns the decision as a string.
func (d Decision) String() string {
	return string(d)
}

// Validate checks the decision is one of the supported values.
func (d Decision) Validate() error {
	switch d {
	case DecisionAccept, DecisionReject:
		return nil
	case "":
		return errs.NewValueIsRequiredError("decision")
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is not a supported decision", string(d)))
	}
}

// RespondToOfferCommand carries a carrier's response to a match. Accepting
// triggers the full cascade: the load is locked, siblings are cancelled, and
// a shipment is created. Rejecting records a reason from the fixed taxonomy.
//
// The rate applies to acceptances only and overrides the offered rate when
// positive; zero falls back to the offered rate, then the load's total rate.
//
// Example:
//
//	cmd, err := NewRespondToOfferCommand(matchID, DecisionAccept, 0, "", time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid response: %w", err)
//	}
//
//	handler := NewRespondToOfferCommandHandler(uowFactory, publisher)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // load no longer available; the carrier should re-search
//	}
type RespondToOfferCommand struct { //nolint:recvcheck //using for validation
	matchID  kernel.UUID
	decision Decision
	rate     float64
	reason   match.RejectionReason
	now      time.Time

	guard guard.ConstructorGuard
}

// NewRespondToOfferCommand creates a command carrying an offer response.
// A rejection requires a reason from the taxonomy; an acceptance must not
// carry one.
func NewRespondToOfferCommand(
	matchID kernel.UUID,
	decision Decision,
	rate float64,
	reason match.RejectionReason,
	now time.Time,
) (RespondToOfferCommand, error) {
	respondCommand := RespondToOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		respondCommand.setMatchID(matchID),
		respondCommand.setDecision(decision),
		respondCommand.setRate(rate),
		respondCommand.setReason(decision, reason),
		respondCommand.setNow(now),
	); err != nil {
		return RespondToOfferCommand{}, err
	}

	return respondCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRespondToOfferCommandIsNotConstructed if validation fails.
func (c RespondToOfferCommand) Validate() error {
	return c.guard.Validate(ErrRespondToOfferCommandIsNotConstructed)
}

// MatchID returns the match being responded to.
func (c RespondToOfferCommand) MatchID() kernel.UUID {
	return c.matchID
}

// Decision returns the carrier's decision.
func (c RespondToOfferCommand) Decision() Decision {
	return c.decision
}

// Rate returns the acceptance rate override in dollars, zero when absent.
func (c RespondToOfferCommand) Rate() float64 {
	return c.rate
}

// Reason returns the rejection reason, empty on acceptances.
func (c RespondToOfferCommand) Reason() match.RejectionReason {
	return c.reason
}

// Now returns the response instant.
func (c RespondToOfferCommand) Now() time.Time {
	return c.now
}

func (c *RespondToOfferCommand) setMatchID(matchID kernel.UUID) error {
	if err := matchID.Validate(); err != nil {
		return err
	}

	c.matchID = matchID
	return nil
}

func (c *RespondToOfferCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}

func (c *RespondToOfferCommand) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsOutOfRangeError("rate", rate, 0, "unbounded")
	}

	c.rate = rate
	return nil
}

func (c *RespondToOfferCommand) setReason(decision Decision, reason match.RejectionReason) error {
	if decision == DecisionReject {
		if err := reason.Validate(); err != nil {
			return err
		}

		c.reason = reason
		return nil
	}

	if reason != "" {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("reason %q set on %s decision", reason.String(), decision.String()))
	}

	return nil
}

func (c *RespondToOfferCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
