package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freightmatch/internal/pkg/errs"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should return nil for valid statuses", func(t *testing.T) {
		statuses := []Status{PendingPickup, PickedUp, InTransit, Delivered, Exception}

		for _, status := range statuses {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("should return error for invalid statuses", func(t *testing.T) {
		statuses := []Status{Unknown, Status(99), Status(-1)}

		for _, status := range statuses {
			err := status.Validate()

			assert.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return snake_case names", func(t *testing.T) {
		assert.Equal(t, "pending_pickup", PendingPickup.String())
		assert.Equal(t, "picked_up", PickedUp.String())
		assert.Equal(t, "in_transit", InTransit.String())
		assert.Equal(t, "delivered", Delivered.String())
		assert.Equal(t, "exception", Exception.String())
	})

	t.Run("should fall back to unknown for invalid status", func(t *testing.T) {
		assert.Equal(t, "unknown", Unknown.String())
		assert.Equal(t, "unknown", Status(99).String())
	})
}

func TestEvent_String(t *testing.T) {
	t.Run("should return operation names", func(t *testing.T) {
		assert.Equal(t, "pick_up", EventPickUp.String())
		assert.Equal(t, "start_transit", EventStartTransit.String())
		assert.Equal(t, "deliver", EventDeliver.String())
		assert.Equal(t, "mark_exception", EventMarkException.String())
	})
}

func TestStatus_Apply(t *testing.T) {
	t.Run("should transition on legal events", func(t *testing.T) {
		tests := []struct {
			name  string
			from  Status
			event Event
			want  Status
		}{
			{"pending pickup is picked up", PendingPickup, EventPickUp, PickedUp},
			{"picked up starts transit", PickedUp, EventStartTransit, InTransit},
			{"in transit is delivered", InTransit, EventDeliver, Delivered},
			{"pending pickup hits exception", PendingPickup, EventMarkException, Exception},
			{"picked up hits exception", PickedUp, EventMarkException, Exception},
			{"in transit hits exception", InTransit, EventMarkException, Exception},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				assert.True(t, test.from.CanApply(test.event))

				got, err := test.from.Apply(test.event)

				assert.NoError(t, err)
				assert.Equal(t, test.want, got)
			})
		}
	})

	t.Run("should return error on illegal events", func(t *testing.T) {
		tests := []struct {
			name  string
			from  Status
			event Event
		}{
			{"pending pickup cannot start transit", PendingPickup, EventStartTransit},
			{"pending pickup cannot deliver", PendingPickup, EventDeliver},
			{"picked up cannot be picked up again", PickedUp, EventPickUp},
			{"picked up cannot deliver", PickedUp, EventDeliver},
			{"in transit cannot be picked up", InTransit, EventPickUp},
			{"delivered cannot deliver again", Delivered, EventDeliver},
			{"delivered cannot hit exception", Delivered, EventMarkException},
			{"exception cannot recover to transit", Exception, EventStartTransit},
			{"exception cannot hit exception again", Exception, EventMarkException},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				assert.False(t, test.from.CanApply(test.event))

				got, err := test.from.Apply(test.event)

				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), test.from.String())
				assert.Contains(t, err.Error(), test.event.String())
				assert.Equal(t, Unknown, got)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report delivered and exception as terminal", func(t *testing.T) {
		assert.True(t, Delivered.IsTerminal())
		assert.True(t, Exception.IsTerminal())
	})

	t.Run("should report execution statuses as not terminal", func(t *testing.T) {
		assert.False(t, PendingPickup.IsTerminal())
		assert.False(t, PickedUp.IsTerminal())
		assert.False(t, InTransit.IsTerminal())
	})
}
