package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
)

var (
	pickupDate   = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	deliveryDate = time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	filterNow    = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
)

// buildLoad returns a dry van load from Atlanta, GA to Miami, FL. The mutate
// hook adjusts params before construction.
func buildLoad(t *testing.T, mutate func(params *load.Params)) *load.Load {
	t.Helper()

	atlanta, err := kernel.NewGeoPoint(33.7490, -84.3880)
	require.NoError(t, err)
	miami, err := kernel.NewGeoPoint(25.7617, -80.1918)
	require.NoError(t, err)

	pickup, err := load.NewStop(atlanta, "GA", pickupDate)
	require.NoError(t, err)
	delivery, err := load.NewStop(miami, "FL", deliveryDate)
	require.NoError(t, err)

	params := load.Params{
		ID:            kernel.NewUUID(),
		Reference:     "LD-2025-00417",
		EquipmentType: kernel.EquipmentDryVan,
		WeightLbs:     25000,
		Pickup:        pickup,
		Delivery:      delivery,
		RateQuoted:    2400,
		RateTotal:     2750,
		ExpiresAt:     pickupDate.Add(-24 * time.Hour),
	}
	if mutate != nil {
		mutate(&params)
	}

	l, err := load.NewLoad(params)
	require.NoError(t, err)
	return l
}

// buildCapability returns a Georgia dry van carrier that passes every
// eligibility rule for the load buildLoad produces. The mutate hook adjusts
// the snapshot before returning.
func buildCapability(t *testing.T, mutate func(c *carrier.Capability)) carrier.Capability {
	t.Helper()

	augusta, err := kernel.NewGeoPoint(33.4735, -82.0105)
	require.NoError(t, err)

	capability := carrier.Capability{
		ID:                 kernel.NewUUID(),
		Name:               "Peach State Freight LLC",
		Active:             true,
		Verified:           true,
		EquipmentTypes:     []kernel.EquipmentType{kernel.EquipmentDryVan, kernel.EquipmentReefer},
		ServiceAreas:       []string{"GA", "FL", "AL"},
		SafetyRating:       4.5,
		OnTimePercentage:   95,
		InsuranceExpiresAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentLocation:    augusta,
		Vehicles: []carrier.Vehicle{
			{ID: kernel.NewUUID(), CapacityLbs: 44000, Available: true},
		},
	}
	if mutate != nil {
		mutate(&capability)
	}
	return capability
}
