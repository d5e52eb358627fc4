package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// The STARK curve is the short-Weierstrass curve y^2 = x^3 + alpha*x + beta
// over the field core/felt operates in. alpha = 1; beta's decimal digits
// are, famously, the digits of pi, a deliberate choice in Starkware's
// original curve parameters.
var (
	curveAlpha fp.Element
	curveBeta  fp.Element
	two        fp.Element
	three      fp.Element
)

func init() {
	curveAlpha.SetOne()

	betaInt, ok := new(big.Int).SetString(
		"3141592653589793238462643383279502884197169399375105820974944592307816406665", 10)
	if !ok {
		panic("crypto: invalid curve beta constant")
	}
	curveBeta.SetBigInt(betaInt)

	two.SetUint64(2)
	three.SetUint64(3)
}

// point is an affine point on the STARK curve. The zero value is not a
// valid point; use infinity() for the identity.
type point struct {
	x, y fp.Element
	inf  bool
}

func infinity() point {
	return point{inf: true}
}

// add computes p+q via the standard short-Weierstrass affine addition and
// doubling formulas.
func add(p, q point) point {
	switch {
	case p.inf:
		return q
	case q.inf:
		return p
	}

	if p.x.Equal(&q.x) {
		var sum fp.Element
		sum.Add(&p.y, &q.y)
		if sum.IsZero() {
			return infinity()
		}
		return double(p)
	}

	var num, den, lambda fp.Element
	num.Sub(&q.y, &p.y)
	den.Sub(&q.x, &p.x)
	den.Inverse(&den)
	lambda.Mul(&num, &den)
	return combine(p, q, lambda)
}

func double(p point) point {
	if p.inf {
		return p
	}
	var xSq, num, den, lambda fp.Element
	xSq.Square(&p.x)
	num.Mul(&xSq, &three)
	num.Add(&num, &curveAlpha)
	den.Mul(&p.y, &two)
	den.Inverse(&den)
	lambda.Mul(&num, &den)
	return combine(p, p, lambda)
}

// combine finishes an addition/doubling given the chord/tangent slope
// lambda; it is shared by add and double since both reduce to the same
// x3/y3 formula once lambda is known.
func combine(p, q point, lambda fp.Element) point {
	var lambdaSq, x3, y3, tmp fp.Element
	lambdaSq.Square(&lambda)
	x3.Sub(&lambdaSq, &p.x)
	x3.Sub(&x3, &q.x)
	tmp.Sub(&p.x, &x3)
	y3.Mul(&lambda, &tmp)
	y3.Sub(&y3, &p.y)
	return point{x: x3, y: y3}
}

// bitAt returns bit i (0 = least significant) of the big-endian 32-byte
// encoding b.
func bitAt(b [32]byte, i int) bool {
	byteIdx := 31 - i/8
	bitIdx := uint(i % 8)
	return b[byteIdx]&(1<<bitIdx) != 0
}

// scalarMulWindow computes base multiplied by the [start, start+length)
// bit window of value's big-endian representation, via double-and-add
// from the window's most significant bit down.
func scalarMulWindow(base point, valueBytes [32]byte, start, length int) point {
	acc := infinity()
	for i := start + length - 1; i >= start; i-- {
		acc = double(acc)
		if bitAt(valueBytes, i) {
			acc = add(acc, base)
		}
	}
	return acc
}

// rhsOf computes x^3 + alpha*x + beta, the right-hand side a valid y
// must square to; used only by hashToCurve in hash.go.
func rhsOf(x *fp.Element) fp.Element {
	var x3, ax, rhs fp.Element
	x3.Square(x)
	x3.Mul(&x3, x)
	ax.Mul(&curveAlpha, x)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, &curveBeta)
	return rhs
}
