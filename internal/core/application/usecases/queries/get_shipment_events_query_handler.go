package queries

import (
	"context"
	"database/sql"

	"freightmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentEventsQueryHandler retrieves a shipment's tracking history from
// the database. Events are append-only, so the history read here is the
// complete record of what was ever reported against the shipment.
type GetShipmentEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentEventsQueryHandler creates a handler for tracking history queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentEventsQueryHandler(db *gorm.DB) GetShipmentEventsQueryHandler {
	return GetShipmentEventsQueryHandler{db: db}
}

// Handle executes the query to retrieve the shipment's tracking history.
// The shipment itself is not checked for existence: a shipment without events
// and a missing shipment both produce an empty history.
func (h GetShipmentEventsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentEventsQuery,
) ([]GetShipmentEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// direction comes from a bool, never from caller text
	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}

	events := make([]GetShipmentEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			status,
			location_lat,
			location_lon,
			temperature_c,
			humidity_pct,
			description,
			source,
			occurred_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY occurred_at `+direction,
		query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventResp GetShipmentEventsQueryResponse
		var id uuid.UUID
		var lat, lon, temperatureC, humidityPct sql.NullFloat64

		err = rows.Scan(
			&id,
			&eventResp.EventType,
			&eventResp.Status,
			&lat,
			&lon,
			&temperatureC,
			&humidityPct,
			&eventResp.Description,
			&eventResp.Source,
			&eventResp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		eventResp.ID = eventID

		if lat.Valid && lon.Valid {
			location, locErr := kernel.NewGeoPoint(lat.Float64, lon.Float64)
			if locErr != nil {
				return nil, locErr
			}
			eventResp.Location = &location
		}
		if temperatureC.Valid {
			eventResp.TemperatureC = &temperatureC.Float64
		}
		if humidityPct.Valid {
			eventResp.HumidityPct = &humidityPct.Float64
		}

		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
