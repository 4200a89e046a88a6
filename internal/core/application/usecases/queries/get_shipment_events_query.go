package queries

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrGetShipmentEventsQueryIsNotConstructed = errors.New(
	"GetShipmentEventsQuery must be created via NewGetShipmentEventsQuery constructor",
)

// GetShipmentEventsQuery retrieves the tracking history of one shipment,
// ordered by when each event occurred out in the world. Chronological order
// is the default; descending order serves "latest first" tracking screens.
//
// Example:
//
//	query, err := NewGetShipmentEventsQuery(shipmentID, false)
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	handler := NewGetShipmentEventsQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
type GetShipmentEventsQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	descending bool

	guard guard.ConstructorGuard
}

// NewGetShipmentEventsQuery creates a query to retrieve a shipment's tracking
// history. Pass descending=true for reverse-chronological order.
func NewGetShipmentEventsQuery(shipmentID kernel.UUID, descending bool) (GetShipmentEventsQuery, error) {
	eventsQuery := GetShipmentEventsQuery{
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}

	if err := eventsQuery.setShipmentID(shipmentID); err != nil {
		return GetShipmentEventsQuery{}, err
	}

	return eventsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentEventsQueryIsNotConstructed if validation fails.
func (q GetShipmentEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentEventsQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is requested.
func (q GetShipmentEventsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Descending reports whether the history should come back latest first.
func (q GetShipmentEventsQuery) Descending() bool {
	return q.descending
}

func (q *GetShipmentEventsQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

// GetShipmentEventsQueryResponse is the history read model for one tracking
// event. Optional readings come back as nil pointers when the source did not
// report them.
type GetShipmentEventsQueryResponse struct {
	ID           kernel.UUID
	EventType    string
	Status       string
	Location     *kernel.GeoPoint
	TemperatureC *float64
	HumidityPct  *float64
	Description  string
	Source       string
	OccurredAt   time.Time
}
