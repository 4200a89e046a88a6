package queries

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadMatchesQueryHandler retrieves the match board for a load from the
// database. Results come back in ranking order: best score first, then least
// deadhead, then carrier id, the same tie-breaking the scoring engine applies.
type GetLoadMatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadMatchesQueryHandler creates a handler for load match queries.
// Requires a GORM database connection for query execution.
func NewGetLoadMatchesQueryHandler(db *gorm.DB) GetLoadMatchesQueryHandler {
	return GetLoadMatchesQueryHandler{db: db}
}

// Handle executes the query to retrieve all matches for the load.
// The load itself is not checked for existence: a load without matches and a
// missing load both produce an empty board.
func (h GetLoadMatchesQueryHandler) Handle(
	ctx context.Context,
	query GetLoadMatchesQuery,
) ([]GetLoadMatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matches := make([]GetLoadMatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			status,
			score,
			deadhead_miles,
			fuel_estimate,
			margin_estimate,
			rate_offered,
			rate_accepted,
			created_at
		FROM matches
		WHERE load_id = ?
		ORDER BY score DESC, deadhead_miles ASC, carrier_id ASC
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var matchResp GetLoadMatchesQueryResponse
		var id, carrierID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&carrierID,
			&status,
			&matchResp.Score,
			&matchResp.DeadheadMiles,
			&matchResp.FuelEstimate,
			&matchResp.MarginEstimate,
			&matchResp.RateOffered,
			&matchResp.RateAccepted,
			&matchResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		matchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		matchResp.ID = matchID

		pairedCarrierID, idErr := kernel.UUIDFromBytes(carrierID[:])
		if idErr != nil {
			return nil, idErr
		}
		matchResp.CarrierID = pairedCarrierID
		matchResp.Status = match.Status(status).String()
		matches = append(matches, matchResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
