package load_test

import (
	"fmt"
	"testing"

	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(load.Unknown))
		assert.Equal(t, 1, int(load.Posted))
		assert.Equal(t, 2, int(load.Matched))
		assert.Equal(t, 3, int(load.Accepted))
		assert.Equal(t, 4, int(load.PickedUp))
		assert.Equal(t, 5, int(load.InTransit))
		assert.Equal(t, 6, int(load.Delivered))
		assert.Equal(t, 7, int(load.Cancelled))
		assert.Equal(t, 8, int(load.Expired))
	})
}

func TestLoadStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []load.Status{
			load.Posted,
			load.Matched,
			load.Accepted,
			load.PickedUp,
			load.InTransit,
			load.Delivered,
			load.Cancelled,
			load.Expired,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := load.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []load.Status{load.Status(-1), load.Status(9), load.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestLoadStatus_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		assert.Equal(t, "posted", load.Posted.String())
		assert.Equal(t, "matched", load.Matched.String())
		assert.Equal(t, "accepted", load.Accepted.String())
		assert.Equal(t, "picked_up", load.PickedUp.String())
		assert.Equal(t, "in_transit", load.InTransit.String())
		assert.Equal(t, "delivered", load.Delivered.String())
		assert.Equal(t, "cancelled", load.Cancelled.String())
		assert.Equal(t, "expired", load.Expired.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", load.Unknown.String())
		assert.Equal(t, "unknown", load.Status(42).String())
	})
}

func TestLoadStatus_Apply(t *testing.T) {
	t.Run("should permit every legal transition", func(t *testing.T) {
		legal := []struct {
			from  load.Status
			event load.Event
			want  load.Status
		}{
			{load.Posted, load.EventMatch, load.Matched},
			{load.Posted, load.EventAccept, load.Accepted},
			{load.Posted, load.EventCancel, load.Cancelled},
			{load.Posted, load.EventExpire, load.Expired},
			{load.Matched, load.EventMatch, load.Matched},
			{load.Matched, load.EventAccept, load.Accepted},
			{load.Matched, load.EventCancel, load.Cancelled},
			{load.Accepted, load.EventPickUp, load.PickedUp},
			{load.Accepted, load.EventCancel, load.Cancelled},
			{load.PickedUp, load.EventStartTransit, load.InTransit},
			{load.InTransit, load.EventDeliver, load.Delivered},
		}

		for _, tc := range legal {
			t.Run(fmt.Sprintf("%s + %s -> %s", tc.from, tc.event, tc.want), func(t *testing.T) {
				next, err := tc.from.Apply(tc.event)

				require.NoError(t, err)
				assert.Equal(t, tc.want, next)
				assert.True(t, tc.from.CanApply(tc.event))
			})
		}
	})

	t.Run("should reject illegal transitions naming state and event", func(t *testing.T) {
		illegal := []struct {
			from  load.Status
			event load.Event
		}{
			{load.Posted, load.EventPickUp},
			{load.Posted, load.EventDeliver},
			{load.Matched, load.EventExpire},
			{load.Matched, load.EventStartTransit},
			{load.Accepted, load.EventMatch},
			{load.Accepted, load.EventExpire},
			{load.Accepted, load.EventDeliver},
			{load.PickedUp, load.EventCancel},
			{load.PickedUp, load.EventDeliver},
			{load.InTransit, load.EventCancel},
			{load.InTransit, load.EventPickUp},
			{load.Delivered, load.EventCancel},
			{load.Cancelled, load.EventAccept},
			{load.Expired, load.EventMatch},
			{load.Unknown, load.EventMatch},
		}

		for _, tc := range illegal {
			t.Run(fmt.Sprintf("%s + %s", tc.from, tc.event), func(t *testing.T) {
				next, err := tc.from.Apply(tc.event)

				require.Error(t, err)
				assert.Equal(t, load.Status(0), next)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), tc.from.String())
				assert.Contains(t, err.Error(), tc.event.String())
				assert.False(t, tc.from.CanApply(tc.event))
			})
		}
	})
}

func TestLoadStatus_IsTerminal(t *testing.T) {
	t.Run("should mark delivered, cancelled, expired as terminal", func(t *testing.T) {
		assert.True(t, load.Delivered.IsTerminal())
		assert.True(t, load.Cancelled.IsTerminal())
		assert.True(t, load.Expired.IsTerminal())
	})

	t.Run("should keep working statuses non-terminal", func(t *testing.T) {
		for _, status := range []load.Status{load.Posted, load.Matched, load.Accepted, load.PickedUp, load.InTransit} {
			assert.False(t, status.IsTerminal(), status.String())
		}
	})
}

func TestLoadStatus_IsActive(t *testing.T) {
	t.Run("should treat non-terminal valid statuses as active", func(t *testing.T) {
		assert.True(t, load.Posted.IsActive())
		assert.True(t, load.InTransit.IsActive())
	})

	t.Run("should treat terminal and invalid statuses as inactive", func(t *testing.T) {
		assert.False(t, load.Delivered.IsActive())
		assert.False(t, load.Expired.IsActive())
		assert.False(t, load.Unknown.IsActive())
	})
}
