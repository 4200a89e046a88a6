package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
)

var (
	testNow      = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	pickupDate   = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	deliveryDate = pickupDate.Add(48 * time.Hour)
)

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func atlanta(t *testing.T) kernel.GeoPoint {
	t.Helper()
	return geoPoint(t, 33.7490, -84.3880)
}

func miami(t *testing.T) kernel.GeoPoint {
	t.Helper()
	return geoPoint(t, 25.7617, -80.1918)
}

func buildPostedLoad(t *testing.T) *load.Load {
	t.Helper()

	pickup, err := load.NewStop(atlanta(t), "GA", pickupDate)
	require.NoError(t, err)
	delivery, err := load.NewStop(miami(t), "FL", deliveryDate)
	require.NoError(t, err)

	l, err := load.NewLoad(load.Params{
		ID:            kernel.NewUUID(),
		Reference:     "LD-2025-00417",
		EquipmentType: kernel.EquipmentDryVan,
		WeightLbs:     25000,
		Pickup:        pickup,
		Delivery:      delivery,
		RateQuoted:    2400,
		RateTotal:     2750,
		ExpiresAt:     pickupDate.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	return l
}

func buildMatchedLoad(t *testing.T) *load.Load {
	t.Helper()

	l := buildPostedLoad(t)
	require.NoError(t, l.MarkMatched())
	return l
}

func buildPendingMatch(t *testing.T, l *load.Load) *match.Match {
	t.Helper()

	m, err := match.NewMatch(match.Params{
		ID:             kernel.NewUUID(),
		LoadID:         l.ID(),
		CarrierID:      kernel.NewUUID(),
		Score:          192.5,
		DeadheadMiles:  42,
		FuelEstimate:   184.6,
		MarginEstimate: 635.4,
		CreatedAt:      testNow.Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	return m
}

func buildOfferedMatch(t *testing.T, l *load.Load, rate float64) *match.Match {
	t.Helper()

	m := buildPendingMatch(t, l)
	require.NoError(t, m.MakeOffer(rate, testNow.Add(-time.Hour)))
	return m
}

func buildCapability(t *testing.T) carrier.Capability {
	t.Helper()

	return carrier.Capability{
		ID:               kernel.NewUUID(),
		Name:             "Peach State Freight LLC",
		Active:           true,
		Verified:         true,
		EquipmentTypes:   []kernel.EquipmentType{kernel.EquipmentDryVan, kernel.EquipmentReefer},
		ServiceAreas:     []string{"GA", "FL", "AL"},
		SafetyRating:     4.5,
		OnTimePercentage: 95,
		// well past any test's evaluation instant
		InsuranceExpiresAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentLocation:    geoPoint(t, 33.4735, -82.0105),
		Vehicles: []carrier.Vehicle{
			{ID: kernel.NewUUID(), CapacityLbs: 44000, Available: true},
		},
	}
}

func buildPendingShipment(t *testing.T, l *load.Load, m *match.Match) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(shipment.Params{
		ID:                  kernel.NewUUID(),
		MatchID:             m.ID(),
		LoadID:              l.ID(),
		ScheduledPickupAt:   pickupDate,
		ScheduledDeliveryAt: deliveryDate,
	})
	require.NoError(t, err)
	return s
}
