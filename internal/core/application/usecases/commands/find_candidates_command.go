package commands

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// DefaultMaxCandidates caps the number of pending matches a single search
// creates when the caller does not provide a limit.
const DefaultMaxCandidates = 10

var ErrFindCandidatesCommandIsNotConstructed = errors.New(
	"FindCandidatesCommand must be created via NewFindCandidatesCommand constructor",
)

// FindCandidatesCommand requests a candidate search for a posted load:
// filter the carrier pool, score the survivors, and persist the top
// candidates as pending matches.
//
// Example:
//
//	cmd, err := NewFindCandidatesCommand(loadID, 5, 3.0, time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid search request: %w", err)
//	}
//
//	handler := NewFindCandidatesCommandHandler(uowFactory, directory, estimator, publisher)
//	matches, err := handler.Handle(ctx, cmd)
type FindCandidatesCommand struct { //nolint:recvcheck //using for validation
	loadID          kernel.UUID
	maxCandidates   int
	minSafetyRating float64
	now             time.Time

	guard guard.ConstructorGuard
}

// NewFindCandidatesCommand creates a command to search candidates for a load.
//
// Parameters:
//   - loadID: the load to search for
//   - maxCandidates: cap on created matches; zero selects DefaultMaxCandidates
//   - minSafetyRating: optional floor on carrier safety rating, 0 disables it
//   - now: the evaluation instant for insurance expiry and match timestamps
func NewFindCandidatesCommand(
	loadID kernel.UUID,
	maxCandidates int,
	minSafetyRating float64,
	now time.Time,
) (FindCandidatesCommand, error) {
	findCommand := FindCandidatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		findCommand.setLoadID(loadID),
		findCommand.setMaxCandidates(maxCandidates),
		findCommand.setMinSafetyRating(minSafetyRating),
		findCommand.setNow(now),
	); err != nil {
		return FindCandidatesCommand{}, err
	}

	return findCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFindCandidatesCommandIsNotConstructed if validation fails.
func (c FindCandidatesCommand) Validate() error {
	return c.guard.Validate(ErrFindCandidatesCommandIsNotConstructed)
}

// LoadID returns the load to search candidates for.
func (c FindCandidatesCommand) LoadID() kernel.UUID {
	return c.loadID
}

// MaxCandidates returns the cap on created matches, never zero.
func (c FindCandidatesCommand) MaxCandidates() int {
	return c.maxCandidates
}

// MinSafetyRating returns the safety rating floor; zero means no floor.
func (c FindCandidatesCommand) MinSafetyRating() float64 {
	return c.minSafetyRating
}

// Now returns the evaluation instant for the search.
func (c FindCandidatesCommand) Now() time.Time {
	return c.now
}

func (c *FindCandidatesCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *FindCandidatesCommand) setMaxCandidates(maxCandidates int) error {
	if maxCandidates < 0 {
		return errs.NewValueIsOutOfRangeError("maxCandidates", maxCandidates, 0, "unbounded")
	}
	if maxCandidates == 0 {
		maxCandidates = DefaultMaxCandidates
	}

	c.maxCandidates = maxCandidates
	return nil
}

func (c *FindCandidatesCommand) setMinSafetyRating(minSafetyRating float64) error {
	if minSafetyRating < 0 || minSafetyRating > 5 {
		return errs.NewValueIsOutOfRangeError("minSafetyRating", minSafetyRating, 0, 5)
	}

	c.minSafetyRating = minSafetyRating
	return nil
}

func (c *FindCandidatesCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
