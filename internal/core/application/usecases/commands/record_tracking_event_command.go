package commands

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventParams carries the attributes of an incoming tracking
// event. Optional readings are pointers so absent and zero are
// distinguishable.
type RecordTrackingEventParams struct {
	// ShipmentID is the shipment the event belongs to.
	ShipmentID kernel.UUID
	// EventType classifies the event; see shipment.EventTypes.
	EventType shipment.EventType
	// Status is free-form status text from the reporting system.
	Status string
	// Location is where the event occurred, when known.
	Location *kernel.GeoPoint
	// TemperatureC and HumidityPct are sensor readings, when present.
	TemperatureC *float64
	HumidityPct  *float64
	// Description is free-form human-readable detail.
	Description string
	// Source names the reporting system, e.g. "eld", "driver_app".
	Source string
	// OccurredAt is when the event happened out on the road.
	OccurredAt time.Time
}

// RecordTrackingEventCommand represents a tracking event arriving from the
// field. The event is always appended to the shipment's history; milestone
// types additionally drive the shipment lifecycle.
//
// Example:
//
//	cmd, err := NewRecordTrackingEventCommand(RecordTrackingEventParams{
//	    ShipmentID: shipmentID,
//	    EventType:  shipment.EventTypePickupCompleted,
//	    Source:     "driver_app",
//	    OccurredAt: time.Now().UTC(),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid tracking event: %w", err)
//	}
//
//	handler := NewRecordTrackingEventCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("tracking ingestion failed: %w", err)
//	}
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	eventType    shipment.EventType
	status       string
	location     *kernel.GeoPoint
	temperatureC *float64
	humidityPct  *float64
	description  string
	source       string
	occurredAt   time.Time

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to record a tracking
// event. Validates the shipment id, event type, source, timestamp, and the
// optional location and readings. Pointer targets are copied so the command
// owns its data.
func NewRecordTrackingEventCommand(params RecordTrackingEventParams) (RecordTrackingEventCommand, error) {
	recordCommand := RecordTrackingEventCommand{
		status:      params.Status,
		description: params.Description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recordCommand.setShipmentID(params.ShipmentID),
		recordCommand.setEventType(params.EventType),
		recordCommand.setLocation(params.Location),
		recordCommand.setReadings(params.TemperatureC, params.HumidityPct),
		recordCommand.setSource(params.Source),
		recordCommand.setOccurredAt(params.OccurredAt),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return recordCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordTrackingEventCommandIsNotConstructed if validation fails.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the shipment the event belongs to.
func (c RecordTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EventType returns the event classification.
func (c RecordTrackingEventCommand) EventType() shipment.EventType {
	return c.eventType
}

// Status returns the free-form status text.
func (c RecordTrackingEventCommand) Status() string {
	return c.status
}

// Location returns where the event occurred, nil when unknown.
func (c RecordTrackingEventCommand) Location() *kernel.GeoPoint {
	return c.location
}

// TemperatureC returns the temperature reading, nil when absent.
func (c RecordTrackingEventCommand) TemperatureC() *float64 {
	return c.temperatureC
}

// HumidityPct returns the humidity reading, nil when absent.
func (c RecordTrackingEventCommand) HumidityPct() *float64 {
	return c.humidityPct
}

// Description returns the free-form detail text.
func (c RecordTrackingEventCommand) Description() string {
	return c.description
}

// Source returns the reporting system name.
func (c RecordTrackingEventCommand) Source() string {
	return c.source
}

// OccurredAt returns when the event happened.
func (c RecordTrackingEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *RecordTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordTrackingEventCommand) setEventType(eventType shipment.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}

func (c *RecordTrackingEventCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}

	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}

	point := *location
	c.location = &point
	return nil
}

func (c *RecordTrackingEventCommand) setReadings(temperatureC, humidityPct *float64) error {
	if humidityPct != nil && (*humidityPct < 0 || *humidityPct > 100) {
		return errs.NewValueIsOutOfRangeError("humidityPct", *humidityPct, 0, 100)
	}

	if temperatureC != nil {
		value := *temperatureC
		c.temperatureC = &value
	}
	if humidityPct != nil {
		value := *humidityPct
		c.humidityPct = &value
	}

	return nil
}

func (c *RecordTrackingEventCommand) setSource(source string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}

	c.source = source
	return nil
}

func (c *RecordTrackingEventCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}

	c.occurredAt = occurredAt
	return nil
}
