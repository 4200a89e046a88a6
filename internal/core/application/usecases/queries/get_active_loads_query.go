package queries

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrGetActiveLoadsQueryIsNotConstructed = errors.New(
	"GetActiveLoadsQuery must be created via NewGetActiveLoadsQuery constructor",
)

// GetActiveLoadsQuery retrieves the active loads board: every load that has
// not reached a terminal status. Delivered, cancelled, and expired loads are
// filtered out.
//
// Example:
//
//	query := NewGetActiveLoadsQuery()
//	handler := NewGetActiveLoadsQueryHandler(db)
//
//	loads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active loads: %w", err)
//	}
//
//	fmt.Printf("%d loads on the board\n", len(loads))
type GetActiveLoadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveLoadsQuery creates a query to retrieve the active loads board.
// This is a parameterless query that fetches all non-terminal loads.
func NewGetActiveLoadsQuery() GetActiveLoadsQuery {
	return GetActiveLoadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveLoadsQueryIsNotConstructed if validation fails.
func (q GetActiveLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveLoadsQueryIsNotConstructed)
}

// GetActiveLoadsQueryResponse is the board read model for one load: enough
// to render a lane (origin and destination states with dates), the equipment
// required, the all-in rate, and where the load sits in its lifecycle.
type GetActiveLoadsQueryResponse struct {
	ID            kernel.UUID
	Reference     string
	EquipmentType kernel.EquipmentType
	OriginState   string
	PickupAt      time.Time
	DestState     string
	DeliveryAt    time.Time
	RateTotal     float64
	Status        string
}
