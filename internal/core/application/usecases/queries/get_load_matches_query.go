package queries

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrGetLoadMatchesQueryIsNotConstructed = errors.New(
	"GetLoadMatchesQuery must be created via NewGetLoadMatchesQuery constructor",
)

// GetLoadMatchesQuery retrieves the match board for one load: every match
// ever generated for it, ranked the way the scoring engine ranks candidates.
//
// Example:
//
//	query, err := NewGetLoadMatchesQuery(loadID)
//	if err != nil {
//	    return fmt.Errorf("invalid match board request: %w", err)
//	}
//
//	handler := NewGetLoadMatchesQueryHandler(db)
//	matches, err := handler.Handle(ctx, query)
type GetLoadMatchesQuery struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadMatchesQuery creates a query to retrieve the matches of a load.
func NewGetLoadMatchesQuery(loadID kernel.UUID) (GetLoadMatchesQuery, error) {
	matchesQuery := GetLoadMatchesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := matchesQuery.setLoadID(loadID); err != nil {
		return GetLoadMatchesQuery{}, err
	}

	return matchesQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLoadMatchesQueryIsNotConstructed if validation fails.
func (q GetLoadMatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadMatchesQueryIsNotConstructed)
}

// LoadID returns the load whose matches are requested.
func (q GetLoadMatchesQuery) LoadID() kernel.UUID {
	return q.loadID
}

func (q *GetLoadMatchesQuery) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	q.loadID = loadID
	return nil
}

// GetLoadMatchesQueryResponse is the match board read model for one match:
// the paired carrier, the scoring breakdown, the negotiated rates, and where
// the match sits in the offer workflow.
type GetLoadMatchesQueryResponse struct {
	ID             kernel.UUID
	CarrierID      kernel.UUID
	Status         string
	Score          float64
	DeadheadMiles  float64
	FuelEstimate   float64
	MarginEstimate float64
	RateOffered    float64
	RateAccepted   float64
	CreatedAt      time.Time
}
