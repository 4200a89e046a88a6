package commands

import (
	"errors"
	"time"

	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrExpireLoadsCommandIsNotConstructed = errors.New(
	"ExpireLoadsCommand must be created via NewExpireLoadsCommand constructor",
)

// ExpireLoadsCommand triggers the sweep that expires posted loads whose
// expiry instant has passed without an accepted match.
//
// Example:
//
//	cmd, _ := NewExpireLoadsCommand(time.Now().UTC())
//	handler := NewExpireLoadsCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("load expiry sweep failed: %v", err)
//	}
type ExpireLoadsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireLoadsCommand creates a command to run the load expiry sweep at
// the given instant.
func NewExpireLoadsCommand(now time.Time) (ExpireLoadsCommand, error) {
	expireCommand := ExpireLoadsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setNow(now); err != nil {
		return ExpireLoadsCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireLoadsCommandIsNotConstructed if validation fails.
func (c ExpireLoadsCommand) Validate() error {
	return c.guard.Validate(ErrExpireLoadsCommandIsNotConstructed)
}

// Now returns the sweep instant.
func (c ExpireLoadsCommand) Now() time.Time {
	return c.now
}

func (c *ExpireLoadsCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
