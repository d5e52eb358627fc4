package crypto_test

import (
	"testing"

	"github.com/NethermindEth/juno-l2-sync/core/crypto"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/stretchr/testify/require"
)

func hexFelt(t *testing.T, s string) *felt.Felt {
	t.Helper()
	f, err := felt.FromHex(s)
	require.NoError(t, err)
	return f
}

// TestPedersen_Deterministic checks the point-table construction is a
// pure function of its inputs: recomputing it twice must agree.
func TestPedersen_Deterministic(t *testing.T) {
	a, b := hexFelt(t, "0x1"), hexFelt(t, "0x2")
	require.True(t, crypto.Pedersen(a, b).Equal(crypto.Pedersen(a, b)))
}

// TestPedersen_NotCommutative exercises the asymmetry built into the
// algorithm: a's window lands on P1/P2 and b's on P3/P4, so swapping the
// operands must change the result except in degenerate cases.
func TestPedersen_NotCommutative(t *testing.T) {
	a, b := hexFelt(t, "0x1"), hexFelt(t, "0x2")
	require.False(t, crypto.Pedersen(a, b).Equal(crypto.Pedersen(b, a)))
}

// TestPedersen_SensitiveToEveryOperand guards against a folding bug where
// one operand's bits never reach the accumulator.
func TestPedersen_SensitiveToEveryOperand(t *testing.T) {
	a, b := hexFelt(t, "0x1"), hexFelt(t, "0x2")
	base := crypto.Pedersen(a, b)

	require.False(t, base.Equal(crypto.Pedersen(hexFelt(t, "0x3"), b)))
	require.False(t, base.Equal(crypto.Pedersen(a, hexFelt(t, "0x3"))))
}

// TestPedersenArray_ChainsPairwise checks the n-ary fold reduces to
// repeated two-ary Pedersen calls in order.
func TestPedersenArray_ChainsPairwise(t *testing.T) {
	a, b, c := hexFelt(t, "0x1"), hexFelt(t, "0x2"), hexFelt(t, "0x3")
	want := crypto.Pedersen(crypto.Pedersen(a, b), c)
	got := crypto.PedersenArray(a, b, c)
	require.True(t, want.Equal(got))
}

// TestPoseidon_Deterministic mirrors TestPedersen_Deterministic for the
// Hades sponge.
func TestPoseidon_Deterministic(t *testing.T) {
	a, b := hexFelt(t, "0x1"), hexFelt(t, "0x2")
	require.True(t, crypto.Poseidon(a, b).Equal(crypto.Poseidon(a, b)))
}

// TestPoseidonArray_RateBoundaryConsistent exercises the sponge across a
// rate (2-element) boundary: five elements need three permutation calls
// via the fixed rate-2/capacity-1 parameterization, and the result must
// still be a pure function of the input sequence.
func TestPoseidonArray_RateBoundaryConsistent(t *testing.T) {
	elements := []*felt.Felt{
		hexFelt(t, "0x1"), hexFelt(t, "0x2"), hexFelt(t, "0x3"),
		hexFelt(t, "0x4"), hexFelt(t, "0x5"),
	}
	first := crypto.PoseidonArray(elements...)
	second := crypto.PoseidonArray(elements...)
	require.True(t, first.Equal(second))

	truncated := crypto.PoseidonArray(elements[:4]...)
	require.False(t, first.Equal(truncated))
}

// TestPoseidonArray_EmptyIsZeroState confirms the zero-length fold
// squeezes the untouched all-zero sponge state rather than panicking.
func TestPoseidonArray_EmptyIsZeroState(t *testing.T) {
	require.True(t, crypto.PoseidonArray().IsZero())
}
