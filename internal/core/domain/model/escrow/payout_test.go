package escrow_test

import (
	"math"
	"testing"

	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayout(t *testing.T) {
	t.Run("2 percent of 1000", func(t *testing.T) {
		payout, err := escrow.ComputePayout(1000, 200)

		require.NoError(t, err)
		assert.Equal(t, uint64(20), payout.PlatformFee())
		assert.Equal(t, uint64(980), payout.CarrierAmount())
		assert.Equal(t, uint64(1000), payout.Total())
	})

	t.Run("rounding remainder accrues to carrier", func(t *testing.T) {
		// 999 * 200 / 10000 = 19.98 -> fee 19, carrier 980
		payout, err := escrow.ComputePayout(999, 200)

		require.NoError(t, err)
		assert.Equal(t, uint64(19), payout.PlatformFee())
		assert.Equal(t, uint64(980), payout.CarrierAmount())
	})

	t.Run("zero fee rate pays everything to carrier", func(t *testing.T) {
		payout, err := escrow.ComputePayout(1000, 0)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), payout.PlatformFee())
		assert.Equal(t, uint64(1000), payout.CarrierAmount())
	})

	t.Run("full fee rate pays everything to platform", func(t *testing.T) {
		payout, err := escrow.ComputePayout(1000, 10000)

		require.NoError(t, err)
		assert.Equal(t, uint64(1000), payout.PlatformFee())
		assert.Equal(t, uint64(0), payout.CarrierAmount())
	})

	t.Run("conserves value across amounts and rates", func(t *testing.T) {
		amounts := []uint64{1, 3, 999, 1000, 123456789, math.MaxUint64}
		rates := []uint16{0, 1, 199, 200, 9999, 10000}

		for _, amount := range amounts {
			for _, rate := range rates {
				payout, err := escrow.ComputePayout(amount, rate)

				require.NoError(t, err)
				assert.Equal(t, amount, payout.CarrierAmount()+payout.PlatformFee(),
					"amount=%d rate=%d", amount, rate)
			}
		}
	})

	t.Run("zero value payout fails validation", func(t *testing.T) {
		var zero escrow.Payout

		require.Error(t, zero.Validate())
	})
}

func TestComputePayout_Overflow(t *testing.T) {
	// a rate above 100% could mint value; it must fail instead
	_, err := escrow.ComputePayout(math.MaxUint64, math.MaxUint16)

	require.ErrorIs(t, err, kernel.ErrArithmeticOverflow)
}
