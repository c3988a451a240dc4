package forum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stake-plus/stakeboard/src/forum"
)

func TestReputationScore(t *testing.T) {
	cases := []struct {
		name                        string
		up, down, threads, replies  uint64
		want                        uint64
	}{
		{"zero", 0, 0, 0, 0, 0},
		{"one thread", 0, 0, 1, 0, 5},
		{"thread and reply", 0, 0, 1, 1, 7},
		{"mixed activity", 3, 0, 2, 4, 48},
		{"downvotes floor", 10, 4, 0, 0, 83}, // 100*100/120 = 83.33 -> 83
		{"single downvote", 1, 1, 1, 1, 16},  // 17*100/105 = 16.19 -> 16
		{"heavy downvotes", 1, 100, 0, 0, 1}, // 10*100/600 = 1.66 -> 1
		{"all downvotes no base", 0, 5, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := forum.ReputationScore(tc.up, tc.down, tc.threads, tc.replies)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSplitFee(t *testing.T) {
	author, fee := forum.SplitFee(1_000_000, 250)
	require.Equal(t, uint64(975_000), author)
	require.Equal(t, uint64(25_000), fee)

	// Floor division: the fee rounds down, the author keeps the remainder.
	author, fee = forum.SplitFee(999, 250)
	require.Equal(t, uint64(24), fee)
	require.Equal(t, uint64(975), author)

	author, fee = forum.SplitFee(1_000_000, 0)
	require.Equal(t, uint64(1_000_000), author)
	require.Equal(t, uint64(0), fee)

	author, fee = forum.SplitFee(12345, 10000)
	require.Equal(t, uint64(0), author)
	require.Equal(t, uint64(12345), fee)

	// No rounding leakage: the parts always sum back to the price.
	for _, price := range []uint64{1, 7, 999, 12345, 1_000_000} {
		for _, rate := range []uint64{0, 1, 250, 333, 9999, 10000} {
			a, f := forum.SplitFee(price, rate)
			require.Equal(t, price, a+f, "price %d rate %d", price, rate)
		}
	}
}
