package parcel_test

import (
	"strings"
	"testing"
	"time"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDimensions(t *testing.T) parcel.Dimensions {
	t.Helper()
	dims, err := parcel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	return dims
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"books", mustDimensions(t), 1500, 1000, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	id := kernel.NewUUID()
	sender := kernel.NewUUID()
	recipient := kernel.NewUUID()
	dims := mustDimensions(t)
	now := time.Now()

	t.Run("registers with valid attributes", func(t *testing.T) {
		p, err := parcel.NewParcel(id, sender, recipient, "books", dims, 1500, 1000, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.Sender().IsEqual(sender))
		assert.True(t, p.Recipient().IsEqual(recipient))
		assert.Equal(t, parcel.Registered, p.Status())
		assert.False(t, p.Carrier().IsAssigned())
		assert.Equal(t, now, p.RegisteredAt())
		assert.True(t, p.AcceptedAt().IsZero())
		assert.True(t, p.DeliveredAt().IsZero())
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := parcel.NewParcel(id, sender, recipient, "books", dims, 1500, 0, now)

		require.ErrorIs(t, err, parcel.ErrInvalidPrice)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := parcel.NewParcel(id, sender, recipient, "", dims, 1500, 1000, now)

		require.ErrorIs(t, err, parcel.ErrDescriptionIsRequired)
	})

	t.Run("rejects oversized description", func(t *testing.T) {
		long := strings.Repeat("x", 301)

		_, err := parcel.NewParcel(id, sender, recipient, long, dims, 1500, 1000, now)

		require.ErrorIs(t, err, parcel.ErrDescriptionIsTooLong)
	})

	t.Run("rejects zero-value dimensions", func(t *testing.T) {
		var zeroDims parcel.Dimensions

		_, err := parcel.NewParcel(id, sender, recipient, "books", zeroDims, 1500, 1000, now)

		require.ErrorIs(t, err, parcel.ErrDimensionsAreNotConstructed)
	})

	t.Run("joins multiple validation errors", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := parcel.NewParcel(zeroID, sender, recipient, "", dims, 1500, 0, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("accepts positive sides", func(t *testing.T) {
		dims, err := parcel.NewDimensions(30, 20, 10)

		require.NoError(t, err)
		assert.Equal(t, uint32(30), dims.Length())
		assert.Equal(t, uint32(20), dims.Width())
		assert.Equal(t, uint32(10), dims.Height())
		assert.Equal(t, "30x20x10", dims.String())
	})

	t.Run("rejects any zero side", func(t *testing.T) {
		for _, sides := range [][3]uint32{{0, 20, 10}, {30, 0, 10}, {30, 20, 0}} {
			_, err := parcel.NewDimensions(sides[0], sides[1], sides[2])
			require.ErrorIs(t, err, parcel.ErrInvalidDimensions)
		}
	})
}

func TestParcel_Accept(t *testing.T) {
	carrierID := kernel.NewUUID()

	t.Run("moves registered parcel to in transit", func(t *testing.T) {
		p := newTestParcel(t)
		now := time.Now()

		require.NoError(t, p.Accept(carrierID, now))

		assert.Equal(t, parcel.InTransit, p.Status())
		assert.True(t, p.Carrier().IsAssigned())
		id, _ := p.Carrier().CarrierID()
		assert.True(t, id.IsEqual(carrierID))
		assert.Equal(t, now, p.AcceptedAt())
	})

	t.Run("cannot accept twice", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Accept(carrierID, time.Now()))

		err := p.Accept(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, parcel.ErrInvalidStatus)
		// the original carrier stays bound
		id, _ := p.Carrier().CarrierID()
		assert.True(t, id.IsEqual(carrierID))
	})
}

func TestParcel_MarkDelivered(t *testing.T) {
	carrierID := kernel.NewUUID()

	t.Run("moves in-transit parcel to delivered", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Accept(carrierID, time.Now()))
		now := time.Now()

		require.NoError(t, p.MarkDelivered(now))

		assert.Equal(t, parcel.Delivered, p.Status())
		assert.Equal(t, now, p.DeliveredAt())
	})

	t.Run("registered parcel cannot be delivered", func(t *testing.T) {
		p := newTestParcel(t)

		require.ErrorIs(t, p.MarkDelivered(time.Now()), parcel.ErrInvalidStatus)
		assert.True(t, p.DeliveredAt().IsZero())
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Accept(carrierID, time.Now()))
		require.NoError(t, p.MarkDelivered(time.Now()))

		require.ErrorIs(t, p.MarkDelivered(time.Now()), parcel.ErrInvalidStatus)
	})
}

func TestRestoreParcel(t *testing.T) {
	id := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	assignment, err := parcel.AssignedCarrier(carrierID)
	require.NoError(t, err)
	registered := time.Now().Add(-2 * time.Hour)
	accepted := time.Now().Add(-1 * time.Hour)

	p, err := parcel.RestoreParcel(
		id, kernel.NewUUID(), kernel.NewUUID(), assignment,
		"books", mustDimensions(t), 1500, 1000,
		parcel.InTransit, registered, accepted, time.Time{})

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, parcel.InTransit, p.Status())
	assert.True(t, p.Carrier().IsAssigned())
	assert.Equal(t, registered, p.RegisteredAt())
	assert.Equal(t, accepted, p.AcceptedAt())

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			id, kernel.NewUUID(), kernel.NewUUID(), assignment,
			"books", mustDimensions(t), 1500, 1000,
			parcel.Status(42), registered, accepted, time.Time{})

		require.ErrorIs(t, err, parcel.ErrInvalidStatus)
	})
}
