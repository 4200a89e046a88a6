package match

import (
	"errors"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

// ErrMatchIsNotConstructed is returned when a Match instance was not created
// through the NewMatch or RestoreMatch constructors.
var ErrMatchIsNotConstructed = errors.New("Match must be created via NewMatch or RestoreMatch constructors")

// Params carries the attributes required to construct a Match.
type Params struct {
	// ID is the unique identifier of the match.
	ID kernel.UUID
	// LoadID identifies the load being paired.
	LoadID kernel.UUID
	// CarrierID identifies the carrier being paired.
	CarrierID kernel.UUID
	// Score is the composite suitability score, never negative.
	Score float64
	// DeadheadMiles is the empty-mile distance from the carrier's position
	// to the pickup.
	DeadheadMiles float64
	// FuelEstimate is the projected fuel cost in dollars over load distance
	// plus deadhead.
	FuelEstimate float64
	// MarginEstimate is the projected carrier profit in dollars; negative
	// margins are legal and signal an unprofitable pairing.
	MarginEstimate float64
	// CreatedAt is when the scoring engine produced the match. Offer expiry
	// sweeps measure staleness from this instant.
	CreatedAt time.Time
}

// Snapshot carries the mutable state of a persisted match for restoration.
type Snapshot struct {
	Status          Status
	RateOffered     float64
	RateAccepted    float64
	RejectionReason RejectionReason
	MatchedAt       *time.Time
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	ExpiredAt       *time.Time
	CancelledAt     *time.Time
}

// Match represents a proposed pairing of one load with one carrier. It is the
// aggregate root for the offer workflow: pending matches come out of the
// scoring engine, get offered to carriers, and resolve as accepted, rejected,
// expired, or cancelled.
//
// Match follows these invariants:
//   - Must reference a valid load and carrier
//   - Score, deadhead, and fuel estimate are never negative
//   - A rejection reason exists exactly when the match is rejected, and
//     always comes from the fixed taxonomy
//   - Status transitions follow the explicit transition table in Status
type Match struct {
	id              kernel.UUID
	loadID          kernel.UUID
	carrierID       kernel.UUID
	status          Status
	score           float64
	deadheadMiles   float64
	fuelEstimate    float64
	marginEstimate  float64
	rateOffered     float64
	rateAccepted    float64
	rejectionReason RejectionReason
	createdAt       time.Time
	matchedAt       *time.Time
	acceptedAt      *time.Time
	rejectedAt      *time.Time
	expiredAt       *time.Time
	cancelledAt     *time.Time
	guard           guard.ConstructorGuard
}

// NewMatch creates a Match in the pending status with validation. This is the
// only way to create a fresh Match, ensuring all business invariants hold.
//
// Parameters:
//   - params: the match attributes; see Params for per-field rules
//
// Returns:
//   - *Match: the created match if all validations pass
//   - error: joined validation errors naming every offending field
func NewMatch(params Params) (*Match, error) {
	m := &Match{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := m.fill(params); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMatch reconstructs a Match aggregate from persistent storage,
// including its resolution state and timestamps. The restored match behaves
// identically to one that reached the same state through domain operations.
func RestoreMatch(params Params, snapshot Snapshot) (*Match, error) {
	m := &Match{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.fill(params), m.applySnapshot(snapshot)); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Match) fill(params Params) error {
	// margin carries no invariants: negative margins are legal
	m.marginEstimate = params.MarginEstimate

	return errors.Join(
		m.setID(params.ID),
		m.setLoadID(params.LoadID),
		m.setCarrierID(params.CarrierID),
		m.setScore(params.Score),
		m.setDeadheadMiles(params.DeadheadMiles),
		m.setFuelEstimate(params.FuelEstimate),
		m.setCreatedAt(params.CreatedAt),
	)
}

func (m *Match) applySnapshot(snapshot Snapshot) error {
	if err := snapshot.Status.Validate(); err != nil {
		return err
	}

	if snapshot.Status == Rejected {
		if err := snapshot.RejectionReason.Validate(); err != nil {
			return err
		}
	} else if snapshot.RejectionReason != "" {
		return errs.NewValueIsInvalidErrorWithCause("rejectionReason",
			fmt.Errorf("reason %q set on %s match", snapshot.RejectionReason, snapshot.Status))
	}

	if snapshot.RateOffered < 0 {
		return errs.NewValueIsOutOfRangeError("rateOffered", snapshot.RateOffered, 0, "unbounded")
	}
	if snapshot.RateAccepted < 0 {
		return errs.NewValueIsOutOfRangeError("rateAccepted", snapshot.RateAccepted, 0, "unbounded")
	}

	m.status = snapshot.Status
	m.rateOffered = snapshot.RateOffered
	m.rateAccepted = snapshot.RateAccepted
	m.rejectionReason = snapshot.RejectionReason
	m.matchedAt = snapshot.MatchedAt
	m.acceptedAt = snapshot.AcceptedAt
	m.rejectedAt = snapshot.RejectedAt
	m.expiredAt = snapshot.ExpiredAt
	m.cancelledAt = snapshot.CancelledAt
	return nil
}

// Validate ensures the Match instance was properly constructed through one of
// its constructors.
func (m *Match) Validate() error {
	if m == nil {
		return ErrMatchIsNotConstructed
	}
	return m.guard.Validate(ErrMatchIsNotConstructed)
}

// IsEqual compares two matches by their unique identifiers.
func (m *Match) IsEqual(other *Match) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the match's unique identifier.
func (m *Match) ID() kernel.UUID {
	return m.id
}

// LoadID returns the identifier of the paired load.
func (m *Match) LoadID() kernel.UUID {
	return m.loadID
}

// CarrierID returns the identifier of the paired carrier.
func (m *Match) CarrierID() kernel.UUID {
	return m.carrierID
}

// Status returns the current lifecycle status of the match.
func (m *Match) Status() Status {
	return m.status
}

// Score returns the composite suitability score.
func (m *Match) Score() float64 {
	return m.score
}

// DeadheadMiles returns the empty miles to the pickup.
func (m *Match) DeadheadMiles() float64 {
	return m.deadheadMiles
}

// FuelEstimate returns the projected fuel cost in dollars.
func (m *Match) FuelEstimate() float64 {
	return m.fuelEstimate
}

// MarginEstimate returns the projected carrier profit in dollars.
func (m *Match) MarginEstimate() float64 {
	return m.marginEstimate
}

// RateOffered returns the rate attached to the offer, zero when the offer
// rides on the load's posted rate.
func (m *Match) RateOffered() float64 {
	return m.rateOffered
}

// RateAccepted returns the rate locked in at acceptance, zero until accepted.
func (m *Match) RateAccepted() float64 {
	return m.rateAccepted
}

// RejectionReason returns the carrier's stated reason, empty unless rejected.
func (m *Match) RejectionReason() RejectionReason {
	return m.rejectionReason
}

// CreatedAt returns when the scoring engine produced the match.
func (m *Match) CreatedAt() time.Time {
	return m.createdAt
}

// MatchedAt returns when the match was formally offered, nil before that.
func (m *Match) MatchedAt() *time.Time {
	return m.matchedAt
}

// AcceptedAt returns when the carrier accepted, nil before that.
func (m *Match) AcceptedAt() *time.Time {
	return m.acceptedAt
}

// RejectedAt returns when the carrier rejected, nil before that.
func (m *Match) RejectedAt() *time.Time {
	return m.rejectedAt
}

// ExpiredAt returns when the offer deadline lapsed, nil before that.
func (m *Match) ExpiredAt() *time.Time {
	return m.expiredAt
}

// CancelledAt returns when the match was withdrawn, nil before that.
func (m *Match) CancelledAt() *time.Time {
	return m.cancelledAt
}

// MakeOffer formally offers the match to the carrier.
//
// This method enforces the following business rules:
//   - The match must be in pending status
//   - A negative offer rate is rejected; zero means the offer rides on the
//     load's posted rate
//
// Parameters:
//   - rate: the offered rate in dollars, zero to offer at the posted rate
//   - now: stamped as the matched_at instant
func (m *Match) MakeOffer(rate float64, now time.Time) error {
	if rate < 0 {
		return errs.NewValueIsOutOfRangeError("rateOffered", rate, 0, "unbounded")
	}

	if err := m.applyEvent(EventOffer); err != nil {
		return err
	}

	m.rateOffered = rate
	m.matchedAt = &now
	return nil
}

// Accept records the carrier's acceptance and locks in the agreed rate.
//
// This method enforces the following business rules:
//   - The match must be in pending or offered status
//   - The accepted rate must be positive; the caller resolves the fallback
//     chain (offered rate, then the load's total rate) before calling
//
// The caller is responsible for the rest of the acceptance cascade: moving
// the load, creating the shipment, and cancelling sibling matches in the
// same transaction.
func (m *Match) Accept(rateAccepted float64, now time.Time) error {
	if rateAccepted <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rateAccepted",
			fmt.Errorf("%.2f is not positive", rateAccepted))
	}

	if err := m.applyEvent(EventAccept); err != nil {
		return err
	}

	m.rateAccepted = rateAccepted
	m.acceptedAt = &now
	return nil
}

// Reject records the carrier's rejection with a reason from the taxonomy.
func (m *Match) Reject(reason RejectionReason, now time.Time) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	if err := m.applyEvent(EventReject); err != nil {
		return err
	}

	m.rejectionReason = reason
	m.rejectedAt = &now
	return nil
}

// Expire lapses a match whose offer deadline passed without a response.
func (m *Match) Expire(now time.Time) error {
	if err := m.applyEvent(EventExpire); err != nil {
		return err
	}

	m.expiredAt = &now
	return nil
}

// Cancel withdraws the match. Cancellation assigns no rejection reason; it is
// the system's move, not the carrier's.
func (m *Match) Cancel(now time.Time) error {
	if err := m.applyEvent(EventCancel); err != nil {
		return err
	}

	m.cancelledAt = &now
	return nil
}

func (m *Match) applyEvent(event Event) error {
	newStatus, err := m.status.Apply(event)
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// setID validates and sets the match's unique identifier.
// This is a private method used only during construction.
func (m *Match) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Match) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	m.loadID = loadID
	return nil
}

func (m *Match) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierId", err)
	}
	m.carrierID = carrierID
	return nil
}

func (m *Match) setScore(score float64) error {
	if score < 0 {
		return errs.NewValueIsOutOfRangeError("score", score, 0, "unbounded")
	}
	m.score = score
	return nil
}

func (m *Match) setDeadheadMiles(deadheadMiles float64) error {
	if deadheadMiles < 0 {
		return errs.NewValueIsOutOfRangeError("deadheadMiles", deadheadMiles, 0, "unbounded")
	}
	m.deadheadMiles = deadheadMiles
	return nil
}

func (m *Match) setFuelEstimate(fuelEstimate float64) error {
	if fuelEstimate < 0 {
		return errs.NewValueIsOutOfRangeError("fuelEstimate", fuelEstimate, 0, "unbounded")
	}
	m.fuelEstimate = fuelEstimate
	return nil
}

func (m *Match) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	m.createdAt = createdAt
	return nil
}
