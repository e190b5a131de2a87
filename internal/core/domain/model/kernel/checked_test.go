package kernel_test

import (
	"math"
	"testing"

	"parcelchain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAddU8(t *testing.T) {
	sum, err := kernel.CheckedAddU8(90, 10)
	require.NoError(t, err)
	assert.Equal(t, uint8(100), sum)

	_, err = kernel.CheckedAddU8(math.MaxUint8, 1)
	require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)

	sum, err = kernel.CheckedAddU8(math.MaxUint8, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(math.MaxUint8), sum)
}

func TestCheckedAddU32(t *testing.T) {
	sum, err := kernel.CheckedAddU32(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), sum)

	_, err = kernel.CheckedAddU32(math.MaxUint32, 1)
	require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)
}

func TestCheckedAddU64(t *testing.T) {
	sum, err := kernel.CheckedAddU64(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), sum)

	_, err = kernel.CheckedAddU64(math.MaxUint64, 1)
	require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)
}

func TestCheckedMulDiv(t *testing.T) {
	t.Run("basis point fee", func(t *testing.T) {
		fee, err := kernel.CheckedMulDiv(1000, 200, 10000)

		require.NoError(t, err)
		assert.Equal(t, uint64(20), fee)
	})

	t.Run("floors the quotient", func(t *testing.T) {
		fee, err := kernel.CheckedMulDiv(999, 200, 10000)

		require.NoError(t, err)
		assert.Equal(t, uint64(19), fee)
	})

	t.Run("large amounts do not overflow the intermediate", func(t *testing.T) {
		fee, err := kernel.CheckedMulDiv(math.MaxUint64, 200, 10000)

		require.NoError(t, err)
		// floor(MaxUint64 * 200 / 10000)
		assert.Equal(t, uint64(368934881474191032), fee)
	})

	t.Run("quotient overflow fails", func(t *testing.T) {
		_, err := kernel.CheckedMulDiv(math.MaxUint64, 3, 2)

		require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)
	})

	t.Run("division by zero fails", func(t *testing.T) {
		_, err := kernel.CheckedMulDiv(1, 1, 0)

		require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)
	})
}
