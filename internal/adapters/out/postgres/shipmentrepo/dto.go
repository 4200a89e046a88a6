// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment domain aggregate and its append-only tracking events, handling the
// conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables. A match executes
// at most one shipment, enforced by the unique index on match_id.
type ShipmentDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LoadID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Status              int
	ScheduledPickupAt   time.Time
	ScheduledDeliveryAt time.Time
	ActualPickupAt      *time.Time
	ActualDeliveryAt    *time.Time
	DeliveredOnTime     *bool
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TrackingEventDTO represents the database structure for persisting tracking events.
// Events are append-only rows: the repository exposes no update or delete for them.
// Optional readings are nullable columns.
type TrackingEventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType    string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:varchar(64)"`
	Location     GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	TemperatureC *float64
	HumidityPct  *float64
	Description  string
	Source       string    `gorm:"type:varchar(32);not null"`
	OccurredAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking event entities.
// Overrides GORM's default naming convention to use "tracking_events".
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// GeoPointDTO represents the embedded, nullable reported position within the
// tracking event table. Both coordinates are nil when the source reported none.
type GeoPointDTO struct {
	Lat *float64 `gorm:"type:double precision"`
	Lon *float64 `gorm:"type:double precision"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps the schedule, the actual milestone dates, and the on-time flag.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                  s.ID().Bytes(),
		MatchID:             s.MatchID().Bytes(),
		LoadID:              s.LoadID().Bytes(),
		Status:              int(s.Status()),
		ScheduledPickupAt:   s.ScheduledPickupAt(),
		ScheduledDeliveryAt: s.ScheduledDeliveryAt(),
		ActualPickupAt:      s.ActualPickupAt(),
		ActualDeliveryAt:    s.ActualDeliveryAt(),
		DeliveredOnTime:     s.DeliveredOnTime(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including its execution state using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	matchID, err := kernel.UUIDFromBytes(dto.MatchID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.Params{
		ID:                  id,
		MatchID:             matchID,
		LoadID:              loadID,
		ScheduledPickupAt:   dto.ScheduledPickupAt,
		ScheduledDeliveryAt: dto.ScheduledDeliveryAt,
	}, shipment.Snapshot{
		Status:           shipment.Status(dto.Status),
		ActualPickupAt:   dto.ActualPickupAt,
		ActualDeliveryAt: dto.ActualDeliveryAt,
		DeliveredOnTime:  dto.DeliveredOnTime,
	})
}

// eventFromDomain converts a tracking event to its database representation.
func eventFromDomain(e *shipment.TrackingEvent) TrackingEventDTO {
	var location GeoPointDTO
	if point := e.Location(); point != nil {
		lat := point.Lat()
		lon := point.Lon()
		location = GeoPointDTO{Lat: &lat, Lon: &lon}
	}

	return TrackingEventDTO{
		ID:           e.ID().Bytes(),
		ShipmentID:   e.ShipmentID().Bytes(),
		EventType:    e.EventType().String(),
		Status:       e.Status(),
		Location:     location,
		TemperatureC: e.TemperatureC(),
		HumidityPct:  e.HumidityPct(),
		Description:  e.Description(),
		Source:       e.Source(),
		OccurredAt:   e.OccurredAt(),
	}
}

// eventToDomain converts a database DTO to a tracking event.
func eventToDomain(dto TrackingEventDTO) (*shipment.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Location.Lat != nil && dto.Location.Lon != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Location.Lat, *dto.Location.Lon)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return shipment.RestoreTrackingEvent(shipment.TrackingEventParams{
		ID:           id,
		ShipmentID:   shipmentID,
		EventType:    shipment.EventType(dto.EventType),
		Status:       dto.Status,
		Location:     location,
		TemperatureC: dto.TemperatureC,
		HumidityPct:  dto.HumidityPct,
		Description:  dto.Description,
		Source:       dto.Source,
		OccurredAt:   dto.OccurredAt,
	})
}
