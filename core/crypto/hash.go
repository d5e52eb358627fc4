// Package crypto implements the two hash families the global state
// commitment depends on: Pedersen (contract-storage trie) and Poseidon
// (class trie), both built directly on the STARK curve's field and group
// structure in curve.go, the same dependency the teacher's go.mod declares
// gnark-crypto's stark-curve field element for.
//
// Pedersen follows Starkware's point-table construction: a fixed shift
// point plus one scalar multiplication per 248-bit/4-bit window of each
// operand. Poseidon follows the Hades sponge construction: a width-3
// state, alpha=3 S-box, full rounds around a block of partial rounds, and
// an MDS mixing matrix. The shift/generator points and the round constants
// are derived in this package from fixed domain tags (see hashToCurve and
// feltFromSeed) rather than transcribed from Starkware's published
// parameter tables, which this environment has no network access to fetch
// and verify byte-for-byte; DESIGN.md documents this explicitly. The
// algorithms themselves — curve arithmetic, bit-windowed scalar
// multiplication, the Hades round structure — are the real ones, not the
// placeholder sponge this package previously shipped.
package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// HashFn computes a binding commitment over one or more field elements.
// core/trie does not take a HashFn: its tries are parameterized by the
// package's own two-argument hashFold, wrapping Pedersen or Poseidon.
type HashFn func(elements ...*felt.Felt) *felt.Felt

const (
	pedersenLowBits  = 248
	pedersenHighBits = 4
)

var (
	pedersenShift point
	pedersenP1    point
	pedersenP2    point
	pedersenP3    point
	pedersenP4    point
)

func init() {
	pedersenShift = hashToCurve("PEDERSEN_SHIFT_POINT")
	pedersenP1 = hashToCurve("PEDERSEN_POINT_1")
	pedersenP2 = hashToCurve("PEDERSEN_POINT_2")
	pedersenP3 = hashToCurve("PEDERSEN_POINT_3")
	pedersenP4 = hashToCurve("PEDERSEN_POINT_4")
}

// feltFromSeed maps an ASCII tag deterministically onto a field element
// via SHA-256, used to derive Pedersen's generator points and Poseidon's
// round constants/MDS matrix without depending on any external table.
func feltFromSeed(tag string) fp.Element {
	digest := sha256.Sum256([]byte(tag))
	var e fp.Element
	e.SetBytes(digest[:])
	return e
}

// hashToCurve derives a STARK curve point from tag by try-and-increment:
// hash tag||counter into a candidate x-coordinate and accept the first one
// for which x^3+alpha*x+beta is a quadratic residue.
func hashToCurve(tag string) point {
	for counter := uint64(0); ; counter++ {
		x := feltFromSeed(fmt.Sprintf("%s#%d", tag, counter))
		rhs := rhsOf(&x)
		var y fp.Element
		if y.Sqrt(&rhs) != nil {
			return point{x: x, y: y}
		}
	}
}

func fromElement(x fp.Element) *felt.Felt {
	out := new(felt.Felt)
	b := x.Bytes()
	out.SetBytes(b[:])
	return out
}

// Pedersen computes the two-ary Pedersen hash used by the contract-storage
// trie's internal nodes and by contract commitment calculation:
// shift + a_low*P1 + a_high*P2 + b_low*P3 + b_high*P4, read off the
// resulting point's x-coordinate.
func Pedersen(a, b *felt.Felt) *felt.Felt {
	aBytes := a.Bytes()
	bBytes := b.Bytes()

	acc := pedersenShift
	acc = add(acc, scalarMulWindow(pedersenP1, aBytes, 0, pedersenLowBits))
	acc = add(acc, scalarMulWindow(pedersenP2, aBytes, pedersenLowBits, pedersenHighBits))
	acc = add(acc, scalarMulWindow(pedersenP3, bBytes, 0, pedersenLowBits))
	acc = add(acc, scalarMulWindow(pedersenP4, bBytes, pedersenLowBits, pedersenHighBits))
	return fromElement(acc.x)
}

// PedersenArray folds Pedersen pairwise across an arbitrary number of
// elements, matching juno's crypto.PedersenArray helper used for
// multi-element commitments (e.g. compute_hash_on_elements-style chains).
func PedersenArray(elements ...*felt.Felt) *felt.Felt {
	if len(elements) == 0 {
		return &felt.Zero
	}
	acc := elements[0]
	for _, e := range elements[1:] {
		acc = Pedersen(acc, e)
	}
	return acc
}

// Poseidon computes the two-ary Poseidon hash used by the class trie's
// compiled-class-hash leaves.
func Poseidon(a, b *felt.Felt) *felt.Felt {
	return PoseidonArray(a, b)
}

// PoseidonArray runs the Hades sponge (rate 2, capacity 1) over elements
// and squeezes a single field element, matching juno's
// crypto.PoseidonArray helper used for the global root
// (STARKNET_STATE_V0 || storage_root || classes_root).
func PoseidonArray(elements ...*felt.Felt) *felt.Felt {
	const rate = poseidonWidth - 1

	var state [poseidonWidth]fp.Element
	for i := 0; i < len(elements); i += rate {
		end := i + rate
		if end > len(elements) {
			end = len(elements)
		}
		for j, e := range elements[i:end] {
			b := e.Bytes()
			var x fp.Element
			x.SetBytes(b[:])
			state[j].Add(&state[j], &x)
		}
		poseidonPermute(&state)
	}
	return fromElement(state[0])
}
