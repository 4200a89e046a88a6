// Package loadrepo provides data transfer objects and mapping functions for load persistence.
// This package implements the repository pattern for the load domain aggregate, handling
// the conversion between domain entities and database representations.
package loadrepo

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Maps load domain entities to relational database tables with proper indexing
// for efficient querying by status and expiry.
type LoadDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference             string    `gorm:"type:varchar(64);not null;index"`
	EquipmentType         string    `gorm:"type:varchar(32);not null"`
	WeightLbs             int
	Pickup                StopDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery              StopDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Hazmat                bool
	TemperatureControlled bool
	TeamDriver            bool
	RateQuoted            float64
	RateTotal             float64
	ExpiresAt             time.Time `gorm:"index"`
	Status                int       `gorm:"index"`
}

// TableName specifies the database table name for load entities.
// Overrides GORM's default naming convention to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// StopDTO represents an embedded stop within the load table: the position,
// the US state it falls in, and the scheduled date of the touch.
type StopDTO struct {
	Lat   float64 `gorm:"type:double precision"`
	Lon   float64 `gorm:"type:double precision"`
	State string  `gorm:"type:varchar(2)"`
	Date  time.Time
}

// fromDomain converts a load domain aggregate to its database representation.
// Maps all load attributes including both stops and the special-handling flags.
func fromDomain(l *load.Load) LoadDTO {
	return LoadDTO{
		ID:                    l.ID().Bytes(),
		Reference:             l.Reference(),
		EquipmentType:         l.EquipmentType().String(),
		WeightLbs:             l.WeightLbs(),
		Pickup:                stopFromDomain(l.Pickup()),
		Delivery:              stopFromDomain(l.Delivery()),
		Hazmat:                l.Hazmat(),
		TemperatureControlled: l.TemperatureControlled(),
		TeamDriver:            l.TeamDriver(),
		RateQuoted:            l.RateQuoted(),
		RateTotal:             l.RateTotal(),
		ExpiresAt:             l.ExpiresAt(),
		Status:                int(l.Status()),
	}
}

func stopFromDomain(stop load.Stop) StopDTO {
	return StopDTO{
		Lat:   stop.Location().Lat(),
		Lon:   stop.Location().Lon(),
		State: stop.State(),
		Date:  stop.Date(),
	}
}

// toDomain converts a database DTO to a load domain aggregate.
// Reconstructs the complete aggregate including status using RestoreLoad.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := stopToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := stopToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(load.Params{
		ID:                    id,
		Reference:             dto.Reference,
		EquipmentType:         kernel.EquipmentType(dto.EquipmentType),
		WeightLbs:             dto.WeightLbs,
		Pickup:                pickup,
		Delivery:              delivery,
		Hazmat:                dto.Hazmat,
		TemperatureControlled: dto.TemperatureControlled,
		TeamDriver:            dto.TeamDriver,
		RateQuoted:            dto.RateQuoted,
		RateTotal:             dto.RateTotal,
		ExpiresAt:             dto.ExpiresAt,
	}, load.Status(dto.Status))
}

func stopToDomain(dto StopDTO) (load.Stop, error) {
	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return load.Stop{}, err
	}

	return load.NewStop(location, dto.State, dto.Date)
}
