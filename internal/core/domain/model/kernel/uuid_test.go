package kernel_test

import (
	"testing"

	"freightmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-zero UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create distinct UUIDs on each call", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should normalize alternate encodings to canonical form", func(t *testing.T) {
		for _, input := range []string{
			"{7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f}",
			"urn:uuid:7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f",
			"7f1c2d3e4a5b4c6d8e9f0a1b2c3d4e5f",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"LD-2024-0042",
			"7f1c2d3e-4a5b-4c6d-8e9f",
			"7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f-trailer",
			"zz1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the underlying bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject short byte slices", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x1c, 0x2d})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the all-zero UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("should render lowercase hyphenated form", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying uuid.UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("should return a copy that does not alias the original", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should be symmetric for identical values", func(t *testing.T) {
		first, _ := kernel.UUIDFromString("7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f")
		second, _ := kernel.UUIDFromString("7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f")

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("should treat zero values as equal to each other only", func(t *testing.T) {
		var zero1, zero2 kernel.UUID
		constructed := kernel.NewUUID()

		assert.True(t, zero1.IsEqual(zero2))
		assert.False(t, zero1.IsEqual(constructed))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject zero value UUID", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should catch zero value identifier fields", func(t *testing.T) {
		// Mirrors how aggregates carry identifiers: an unset field must
		// fail validation rather than pass as a real ID.
		type Shipment struct {
			ID kernel.UUID
		}

		var s Shipment
		assert.Error(t, s.ID.Validate())

		s.ID = kernel.NewUUID()
		assert.NoError(t, s.ID.Validate())
	})
}
