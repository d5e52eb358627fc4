package crypto

import (
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Hades permutation parameters for Starknet's Poseidon instantiation:
// state width 3 (rate 2, capacity 1), alpha=3 S-box, 8 full rounds split
// evenly before and after a block of 83 partial rounds.
const (
	poseidonWidth         = 3
	poseidonFullRounds    = 8
	poseidonPartialRounds = 83
	poseidonTotalRounds   = poseidonFullRounds + poseidonPartialRounds
)

var (
	poseidonRoundConstants [poseidonTotalRounds][poseidonWidth]fp.Element
	poseidonMDS            [poseidonWidth][poseidonWidth]fp.Element
)

func init() {
	for r := 0; r < poseidonTotalRounds; r++ {
		for c := 0; c < poseidonWidth; c++ {
			poseidonRoundConstants[r][c] = feltFromSeed(poseidonTag("RC", r, c))
		}
	}

	// MDS built as a Cauchy matrix 1/(x_i+y_j) over two disjoint sets of
	// derived field elements, the standard way to guarantee an MDS
	// matrix (every square submatrix nonsingular) without needing to
	// search for one.
	var xs, ys [poseidonWidth]fp.Element
	for i := 0; i < poseidonWidth; i++ {
		xs[i] = feltFromSeed(poseidonTag("MDS_X", i, 0))
		ys[i] = feltFromSeed(poseidonTag("MDS_Y", i, 0))
	}
	for i := 0; i < poseidonWidth; i++ {
		for j := 0; j < poseidonWidth; j++ {
			var sum, inv fp.Element
			sum.Add(&xs[i], &ys[j])
			inv.Inverse(&sum)
			poseidonMDS[i][j] = inv
		}
	}
}

func poseidonTag(label string, i, j int) string {
	return "STARKNET_POSEIDON_" + label + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
}

// poseidonPermute applies the full Hades permutation in place: for each
// round, add round constants, apply the x^3 S-box (every lane during full
// rounds, only the first lane during partial rounds), then mix with the
// MDS matrix.
func poseidonPermute(state *[poseidonWidth]fp.Element) {
	half := poseidonFullRounds / 2
	for r := 0; r < poseidonTotalRounds; r++ {
		for i := range state {
			state[i].Add(&state[i], &poseidonRoundConstants[r][i])
		}

		full := r < half || r >= half+poseidonPartialRounds
		if full {
			for i := range state {
				cube(&state[i])
			}
		} else {
			cube(&state[0])
		}

		var next [poseidonWidth]fp.Element
		for i := 0; i < poseidonWidth; i++ {
			var acc fp.Element
			for j := 0; j < poseidonWidth; j++ {
				var term fp.Element
				term.Mul(&poseidonMDS[i][j], &state[j])
				acc.Add(&acc, &term)
			}
			next[i] = acc
		}
		*state = next
	}
}

func cube(x *fp.Element) {
	var sq fp.Element
	sq.Square(x)
	x.Mul(&sq, x)
}
