// Package carrierdir provides a Postgres-backed carrier directory. The
// matching core treats the carrier context as external and read-only; this
// adapter serves capability snapshots from a directory table kept in sync by
// whatever owns carrier onboarding.
package carrierdir

import (
	"time"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierDTO represents the database structure for carrier capability snapshots.
// Equipment types and service areas are Postgres text arrays; vehicles live in
// a child table.
type CarrierDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Active             bool           `gorm:"index"`
	Verified           bool
	EquipmentTypes     pq.StringArray `gorm:"type:text[]"`
	ServiceAreas       pq.StringArray `gorm:"type:text[]"`
	SafetyRating       float64
	OnTimePercentage   float64
	InsuranceExpiresAt time.Time
	HazmatCertified    bool
	Location           GeoPointDTO  `gorm:"embedded;embeddedPrefix:location_"`
	Vehicles           []VehicleDTO `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carrier entities.
// Overrides GORM's default naming convention to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// GeoPointDTO represents the embedded current position within the carrier table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lon float64 `gorm:"type:double precision"`
}

// VehicleDTO represents the database structure for one vehicle in a carrier's fleet.
// Links to the carrier via foreign key.
type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CapacityLbs int       `gorm:"type:int;not null"`
	Available   bool
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a capability snapshot to its database representation.
func fromDomain(capability carrier.Capability) CarrierDTO {
	carrierID := capability.ID.Bytes()

	equipmentTypes := make(pq.StringArray, 0, len(capability.EquipmentTypes))
	for _, equipmentType := range capability.EquipmentTypes {
		equipmentTypes = append(equipmentTypes, equipmentType.String())
	}

	vehicles := make([]VehicleDTO, 0, len(capability.Vehicles))
	for _, vehicle := range capability.Vehicles {
		vehicles = append(vehicles, VehicleDTO{
			ID:          vehicle.ID.Bytes(),
			CarrierID:   carrierID,
			CapacityLbs: vehicle.CapacityLbs,
			Available:   vehicle.Available,
		})
	}

	return CarrierDTO{
		ID:                 carrierID,
		Name:               capability.Name,
		Active:             capability.Active,
		Verified:           capability.Verified,
		EquipmentTypes:     equipmentTypes,
		ServiceAreas:       pq.StringArray(capability.ServiceAreas),
		SafetyRating:       capability.SafetyRating,
		OnTimePercentage:   capability.OnTimePercentage,
		InsuranceExpiresAt: capability.InsuranceExpiresAt,
		HazmatCertified:    capability.HazmatCertified,
		Location: GeoPointDTO{
			Lat: capability.CurrentLocation.Lat(),
			Lon: capability.CurrentLocation.Lon(),
		},
		Vehicles: vehicles,
	}
}

// toDomain converts a database DTO to a capability snapshot.
func toDomain(dto CarrierDTO) (carrier.Capability, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return carrier.Capability{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lon)
	if err != nil {
		return carrier.Capability{}, err
	}

	equipmentTypes := make([]kernel.EquipmentType, 0, len(dto.EquipmentTypes))
	for _, equipmentType := range dto.EquipmentTypes {
		equipmentTypes = append(equipmentTypes, kernel.EquipmentType(equipmentType))
	}

	vehicles := make([]carrier.Vehicle, 0, len(dto.Vehicles))
	for _, vehicleDTO := range dto.Vehicles {
		vehicleID, vehicleErr := kernel.UUIDFromBytes(vehicleDTO.ID[:])
		if vehicleErr != nil {
			return carrier.Capability{}, vehicleErr
		}

		vehicles = append(vehicles, carrier.Vehicle{
			ID:          vehicleID,
			CapacityLbs: vehicleDTO.CapacityLbs,
			Available:   vehicleDTO.Available,
		})
	}

	return carrier.Capability{
		ID:                 id,
		Name:               dto.Name,
		Active:             dto.Active,
		Verified:           dto.Verified,
		EquipmentTypes:     equipmentTypes,
		ServiceAreas:       []string(dto.ServiceAreas),
		SafetyRating:       dto.SafetyRating,
		OnTimePercentage:   dto.OnTimePercentage,
		InsuranceExpiresAt: dto.InsuranceExpiresAt,
		HazmatCertified:    dto.HazmatCertified,
		CurrentLocation:    location,
		Vehicles:           vehicles,
	}, nil
}
