package load_test

import (
	"testing"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func mustStop(t *testing.T, lat, lon float64, state string, date time.Time) load.Stop {
	t.Helper()
	stop, err := load.NewStop(mustGeoPoint(t, lat, lon), state, date)
	require.NoError(t, err)
	return stop
}

func validLoadParams(t *testing.T) load.Params {
	t.Helper()
	pickupDate := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	deliveryDate := pickupDate.Add(48 * time.Hour)

	return load.Params{
		ID:            kernel.NewUUID(),
		Reference:     "LD-2025-00417",
		EquipmentType: kernel.EquipmentDryVan,
		WeightLbs:     25000,
		Pickup:        mustStop(t, 33.7490, -84.3880, "GA", pickupDate),
		Delivery:      mustStop(t, 25.7617, -80.1918, "FL", deliveryDate),
		RateQuoted:    2400,
		RateTotal:     2750,
		ExpiresAt:     pickupDate.Add(-24 * time.Hour),
	}
}

func TestNewLoad(t *testing.T) {
	t.Run("should create a posted load from valid params", func(t *testing.T) {
		params := validLoadParams(t)

		l, err := load.NewLoad(params)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, load.Posted, l.Status())
		assert.Equal(t, params.ID, l.ID())
		assert.Equal(t, "LD-2025-00417", l.Reference())
		assert.Equal(t, kernel.EquipmentDryVan, l.EquipmentType())
		assert.Equal(t, 25000, l.WeightLbs())
		assert.True(t, l.HasWeight())
		assert.Equal(t, "GA", l.Pickup().State())
		assert.Equal(t, "FL", l.Delivery().State())
		assert.InDelta(t, 2400, l.RateQuoted(), 1e-9)
		assert.InDelta(t, 2750, l.RateTotal(), 1e-9)
	})

	t.Run("should allow unspecified weight", func(t *testing.T) {
		params := validLoadParams(t)
		params.WeightLbs = 0

		l, err := load.NewLoad(params)

		require.NoError(t, err)
		assert.False(t, l.HasWeight())
	})

	t.Run("should default total rate to quoted rate", func(t *testing.T) {
		params := validLoadParams(t)
		params.RateTotal = 0

		l, err := load.NewLoad(params)

		require.NoError(t, err)
		assert.InDelta(t, 2400, l.RateTotal(), 1e-9)
	})

	t.Run("should reject invalid params", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(p *load.Params)
			sentinel error
		}{
			{
				name:     "zero id",
				mutate:   func(p *load.Params) { p.ID = kernel.UUID{} },
				sentinel: errs.ErrValueIsRequired,
			},
			{
				name:     "empty reference",
				mutate:   func(p *load.Params) { p.Reference = "" },
				sentinel: errs.ErrValueIsRequired,
			},
			{
				name:     "unknown equipment",
				mutate:   func(p *load.Params) { p.EquipmentType = "hovercraft" },
				sentinel: errs.ErrValueIsInvalid,
			},
			{
				name:     "negative weight",
				mutate:   func(p *load.Params) { p.WeightLbs = -10 },
				sentinel: errs.ErrValueIsInvalid,
			},
			{
				name:     "zero value pickup stop",
				mutate:   func(p *load.Params) { p.Pickup = load.Stop{} },
				sentinel: errs.ErrValueIsRequired,
			},
			{
				name:     "negative quoted rate",
				mutate:   func(p *load.Params) { p.RateQuoted = -5 },
				sentinel: errs.ErrValueIsOutOfRange,
			},
			{
				name: "no positive rate at all",
				mutate: func(p *load.Params) {
					p.RateQuoted = 0
					p.RateTotal = 0
				},
				sentinel: errs.ErrValueIsRequired,
			},
			{
				name:     "zero expiry",
				mutate:   func(p *load.Params) { p.ExpiresAt = time.Time{} },
				sentinel: errs.ErrValueIsRequired,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params := validLoadParams(t)
				tt.mutate(&params)

				l, err := load.NewLoad(params)

				require.Error(t, err)
				assert.Nil(t, l)
				assert.ErrorIs(t, err, tt.sentinel)
			})
		}
	})

	t.Run("should reject delivery date before pickup date", func(t *testing.T) {
		params := validLoadParams(t)
		params.Delivery = mustStop(t, 25.7617, -80.1918, "FL", params.Pickup.Date().Add(-time.Hour))

		_, err := load.NewLoad(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "deliveryDate")
	})

	t.Run("should allow same-day pickup and delivery", func(t *testing.T) {
		params := validLoadParams(t)
		params.Delivery = mustStop(t, 25.7617, -80.1918, "FL", params.Pickup.Date())

		_, err := load.NewLoad(params)

		require.NoError(t, err)
	})
}

func TestRestoreLoad(t *testing.T) {
	t.Run("should restore load with persisted status", func(t *testing.T) {
		params := validLoadParams(t)

		l, err := load.RestoreLoad(params, load.InTransit)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, load.InTransit, l.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		params := validLoadParams(t)

		l, err := load.RestoreLoad(params, load.Unknown)

		require.Error(t, err)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLoad_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var l load.Load

		require.ErrorIs(t, l.Validate(), load.ErrLoadIsNotConstructed)
	})

	t.Run("should fail for nil", func(t *testing.T) {
		var l *load.Load

		require.ErrorIs(t, l.Validate(), load.ErrLoadIsNotConstructed)
	})
}

func TestLoad_Transitions(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		l, err := load.NewLoad(validLoadParams(t))
		require.NoError(t, err)

		require.NoError(t, l.MarkMatched())
		assert.Equal(t, load.Matched, l.Status())

		require.NoError(t, l.Accept())
		assert.Equal(t, load.Accepted, l.Status())

		require.NoError(t, l.MarkPickedUp())
		assert.Equal(t, load.PickedUp, l.Status())

		require.NoError(t, l.MarkInTransit())
		assert.Equal(t, load.InTransit, l.Status())

		require.NoError(t, l.MarkDelivered())
		assert.Equal(t, load.Delivered, l.Status())
	})

	t.Run("should accept directly from posted", func(t *testing.T) {
		l, err := load.NewLoad(validLoadParams(t))
		require.NoError(t, err)

		require.NoError(t, l.Accept())
		assert.Equal(t, load.Accepted, l.Status())
	})

	t.Run("should allow re-running candidate generation while matched", func(t *testing.T) {
		l, err := load.NewLoad(validLoadParams(t))
		require.NoError(t, err)

		require.NoError(t, l.MarkMatched())
		require.NoError(t, l.MarkMatched())
		assert.Equal(t, load.Matched, l.Status())
	})

	t.Run("should cancel from posted, matched, and accepted", func(t *testing.T) {
		for _, prepare := range []func(l *load.Load){
			func(*load.Load) {},
			func(l *load.Load) { require.NoError(t, l.MarkMatched()) },
			func(l *load.Load) { require.NoError(t, l.Accept()) },
		} {
			l, err := load.NewLoad(validLoadParams(t))
			require.NoError(t, err)
			prepare(l)

			require.NoError(t, l.Cancel())
			assert.Equal(t, load.Cancelled, l.Status())
		}
	})

	t.Run("should reject cancellation once picked up", func(t *testing.T) {
		l, err := load.NewLoad(validLoadParams(t))
		require.NoError(t, err)
		require.NoError(t, l.Accept())
		require.NoError(t, l.MarkPickedUp())

		err = l.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "picked_up")
		assert.Contains(t, err.Error(), "cancel")
	})

	t.Run("should reject milestones before acceptance", func(t *testing.T) {
		l, err := load.NewLoad(validLoadParams(t))
		require.NoError(t, err)

		require.ErrorIs(t, l.MarkPickedUp(), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, l.MarkInTransit(), errs.ErrInvalidStateTransition)
		require.ErrorIs(t, l.MarkDelivered(), errs.ErrInvalidStateTransition)
	})
}

func TestLoad_Expire(t *testing.T) {
	t.Run("should expire a posted load after the window passes", func(t *testing.T) {
		params := validLoadParams(t)
		l, err := load.NewLoad(params)
		require.NoError(t, err)

		err = l.Expire(params.ExpiresAt.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, load.Expired, l.Status())
	})

	t.Run("should expire exactly at the deadline", func(t *testing.T) {
		params := validLoadParams(t)
		l, err := load.NewLoad(params)
		require.NoError(t, err)

		assert.True(t, l.IsExpired(params.ExpiresAt))
		require.NoError(t, l.Expire(params.ExpiresAt))
	})

	t.Run("should refuse to expire before the deadline", func(t *testing.T) {
		params := validLoadParams(t)
		l, err := load.NewLoad(params)
		require.NoError(t, err)

		err = l.Expire(params.ExpiresAt.Add(-time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, load.Posted, l.Status())
	})

	t.Run("should refuse to expire a matched load", func(t *testing.T) {
		params := validLoadParams(t)
		l, err := load.NewLoad(params)
		require.NoError(t, err)
		require.NoError(t, l.MarkMatched())

		err = l.Expire(params.ExpiresAt.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestNewStop(t *testing.T) {
	date := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should normalize the state code", func(t *testing.T) {
		stop, err := load.NewStop(mustGeoPoint(t, 33.7490, -84.3880), " ga ", date)

		require.NoError(t, err)
		assert.Equal(t, "GA", stop.State())
	})

	t.Run("should reject malformed state codes", func(t *testing.T) {
		for _, state := range []string{"", "G", "GAX", "G1"} {
			_, err := load.NewStop(mustGeoPoint(t, 33.7490, -84.3880), state, date)
			require.Error(t, err, "state %q", state)
		}
	})

	t.Run("should reject zero date", func(t *testing.T) {
		_, err := load.NewStop(mustGeoPoint(t, 33.7490, -84.3880), "GA", time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value location", func(t *testing.T) {
		_, err := load.NewStop(kernel.GeoPoint{}, "GA", date)

		require.Error(t, err)
	})
}
