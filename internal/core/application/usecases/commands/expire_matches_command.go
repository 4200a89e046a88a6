package commands

import (
	"errors"
	"time"

	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// DefaultOfferTTL is how long a match may await a carrier response before
// the sweep expires it.
const DefaultOfferTTL = 24 * time.Hour

var ErrExpireMatchesCommandIsNotConstructed = errors.New(
	"ExpireMatchesCommand must be created via NewExpireMatchesCommand constructor",
)

// ExpireMatchesCommand triggers the sweep that expires matches still
// awaiting a response past their deadline. The sweep instant is explicit so
// runs are reproducible in tests and backfills.
//
// Example:
//
//	cmd, _ := NewExpireMatchesCommand(time.Now().UTC(), 0)
//	handler := NewExpireMatchesCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("match expiry sweep failed: %v", err)
//	}
type ExpireMatchesCommand struct { //nolint:recvcheck //using for validation
	now       time.Time
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewExpireMatchesCommand creates a command to run the match expiry sweep.
//
// Parameters:
//   - now: the sweep instant
//   - olderThan: response deadline; zero selects DefaultOfferTTL
func NewExpireMatchesCommand(now time.Time, olderThan time.Duration) (ExpireMatchesCommand, error) {
	expireCommand := ExpireMatchesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		expireCommand.setNow(now),
		expireCommand.setOlderThan(olderThan),
	); err != nil {
		return ExpireMatchesCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireMatchesCommandIsNotConstructed if validation fails.
func (c ExpireMatchesCommand) Validate() error {
	return c.guard.Validate(ErrExpireMatchesCommandIsNotConstructed)
}

// Now returns the sweep instant.
func (c ExpireMatchesCommand) Now() time.Time {
	return c.now
}

// OlderThan returns the response deadline, never zero.
func (c ExpireMatchesCommand) OlderThan() time.Duration {
	return c.olderThan
}

// Cutoff returns the instant before which an awaiting match is stale.
func (c ExpireMatchesCommand) Cutoff() time.Time {
	return c.now.Add(-c.olderThan)
}

func (c *ExpireMatchesCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}

func (c *ExpireMatchesCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan < 0 {
		return errs.NewValueIsOutOfRangeError("olderThan", olderThan, 0, "unbounded")
	}
	if olderThan == 0 {
		olderThan = DefaultOfferTTL
	}

	c.olderThan = olderThan
	return nil
}
