// Package matchrepo provides data transfer objects and mapping functions for match persistence.
// This package implements the repository pattern for the match domain aggregate, handling
// the conversion between domain entities and database representations.
package matchrepo

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"

	"github.com/google/uuid"
)

// MatchDTO represents the database structure for persisting match aggregates.
// Maps match domain entities to relational database tables with proper indexing
// for the per-load match board and the staleness sweep.
type MatchDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          int       `gorm:"index"`
	Score           float64
	DeadheadMiles   float64
	FuelEstimate    float64
	MarginEstimate  float64
	RateOffered     float64
	RateAccepted    float64
	RejectionReason string    `gorm:"type:varchar(32)"`
	CreatedAt       time.Time `gorm:"index"`
	MatchedAt       *time.Time
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	ExpiredAt       *time.Time
	CancelledAt     *time.Time
}

// TableName specifies the database table name for match entities.
// Overrides GORM's default naming convention to use "matches".
func (MatchDTO) TableName() string {
	return "matches"
}

// fromDomain converts a match domain aggregate to its database representation.
// Maps the scoring breakdown, the negotiated rates, and every resolution timestamp.
func fromDomain(m *match.Match) MatchDTO {
	return MatchDTO{
		ID:              m.ID().Bytes(),
		LoadID:          m.LoadID().Bytes(),
		CarrierID:       m.CarrierID().Bytes(),
		Status:          int(m.Status()),
		Score:           m.Score(),
		DeadheadMiles:   m.DeadheadMiles(),
		FuelEstimate:    m.FuelEstimate(),
		MarginEstimate:  m.MarginEstimate(),
		RateOffered:     m.RateOffered(),
		RateAccepted:    m.RateAccepted(),
		RejectionReason: m.RejectionReason().String(),
		CreatedAt:       m.CreatedAt(),
		MatchedAt:       m.MatchedAt(),
		AcceptedAt:      m.AcceptedAt(),
		RejectedAt:      m.RejectedAt(),
		ExpiredAt:       m.ExpiredAt(),
		CancelledAt:     m.CancelledAt(),
	}
}

// toDomain converts a database DTO to a match domain aggregate.
// Reconstructs the complete aggregate including its resolution state using RestoreMatch.
func toDomain(dto MatchDTO) (*match.Match, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return match.RestoreMatch(match.Params{
		ID:             id,
		LoadID:         loadID,
		CarrierID:      carrierID,
		Score:          dto.Score,
		DeadheadMiles:  dto.DeadheadMiles,
		FuelEstimate:   dto.FuelEstimate,
		MarginEstimate: dto.MarginEstimate,
		CreatedAt:      dto.CreatedAt,
	}, match.Snapshot{
		Status:          match.Status(dto.Status),
		RateOffered:     dto.RateOffered,
		RateAccepted:    dto.RateAccepted,
		RejectionReason: match.RejectionReason(dto.RejectionReason),
		MatchedAt:       dto.MatchedAt,
		AcceptedAt:      dto.AcceptedAt,
		RejectedAt:      dto.RejectedAt,
		ExpiredAt:       dto.ExpiredAt,
		CancelledAt:     dto.CancelledAt,
	})
}
