package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// ErrStopIsNotConstructed is returned when attempting to use an improperly initialized Stop.
var ErrStopIsNotConstructed = errs.NewValueIsRequiredError(
	"stop must be created via NewStop constructor")

// Stop is a value object describing one end of a haul: where the freight is,
// which US state that falls in, and when the touch is scheduled. Loads carry
// a pickup Stop and a delivery Stop; the state codes feed service-area
// eligibility and scoring.
type Stop struct {
	location kernel.GeoPoint
	state    string
	date     time.Time
	guard    guard.ConstructorGuard
}

// NewStop creates a Stop from a position, a two-letter US state code, and a
// scheduled date. The state code is trimmed and upper-cased before validation.
//
// Returns:
//   - Stop: a validated stop
//   - error: validation error naming the offending field
func NewStop(location kernel.GeoPoint, state string, date time.Time) (Stop, error) {
	stop := Stop{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		stop.setLocation(location),
		stop.setState(state),
		stop.setDate(date),
	); err != nil {
		return Stop{}, err
	}

	return stop, nil
}

// Validate checks that the Stop was properly constructed.
func (s Stop) Validate() error {
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// Location returns the geographic position of the stop.
func (s Stop) Location() kernel.GeoPoint {
	return s.location
}

// State returns the two-letter US state code, always upper-case.
func (s Stop) State() string {
	return s.state
}

// Date returns the scheduled date of the stop.
func (s Stop) Date() time.Time {
	return s.date
}

func (s *Stop) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *Stop) setState(state string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if len(state) != 2 || state[0] < 'A' || state[0] > 'Z' || state[1] < 'A' || state[1] > 'Z' {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%q is not a two-letter state code", state))
	}

	s.state = state
	return nil
}

func (s *Stop) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	s.date = date
	return nil
}
