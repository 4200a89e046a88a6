package queries

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveLoadsQueryHandler retrieves non-terminal loads from the database.
// Filters out delivered, cancelled, and expired loads to provide the active
// freight board.
//
// Example:
//
//	handler := NewGetActiveLoadsQueryHandler(db)
//	query := NewGetActiveLoadsQuery()
//
//	activeLoads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active loads: %v", err)
//	    return err
//	}
//
//	if len(activeLoads) > 0 {
//	    fmt.Printf("%d loads awaiting movement\n", len(activeLoads))
//	}
type GetActiveLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveLoadsQueryHandler creates a handler for active load queries.
// Requires a GORM database connection for query execution.
func NewGetActiveLoadsQueryHandler(db *gorm.DB) GetActiveLoadsQueryHandler {
	return GetActiveLoadsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active loads.
// Returns loads in any non-terminal status, sorted by pickup date and then
// reference for a stable board order.
func (h GetActiveLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveLoadsQuery,
) ([]GetActiveLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetActiveLoadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			equipment_type,
			pickup_state,
			pickup_date,
			delivery_state,
			delivery_date,
			rate_total,
			status
		FROM loads
		WHERE status NOT IN (?, ?, ?)
		ORDER BY pickup_date, reference
	`, load.Delivered, load.Cancelled, load.Expired).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loadResp GetActiveLoadsQueryResponse
		var id uuid.UUID
		var equipmentType string
		var status int

		err = rows.Scan(
			&id,
			&loadResp.Reference,
			&equipmentType,
			&loadResp.OriginState,
			&loadResp.PickupAt,
			&loadResp.DestState,
			&loadResp.DeliveryAt,
			&loadResp.RateTotal,
			&status,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		loadResp.ID = loadID
		loadResp.EquipmentType = kernel.EquipmentType(equipmentType)
		loadResp.Status = load.Status(status).String()
		loads = append(loads, loadResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
