// Package felt implements the 252-bit Starknet field element used as the
// canonical representation for block hashes, class hashes, and storage
// values throughout the sync core.
package felt

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Felt is a field element in the Starknet prime field. The zero value is
// the additive identity.
type Felt struct {
	impl fp.Element
}

// Zero is the additive identity of the field.
var Zero = Felt{}

// SetBytes interprets b as a big-endian integer and reduces it modulo the
// field prime, matching starknet-rs's byte convention.
func (z *Felt) SetBytes(b []byte) *Felt {
	z.impl.SetBytes(b)
	return z
}

// SetUint64 sets z to v.
func (z *Felt) SetUint64(v uint64) *Felt {
	z.impl.SetUint64(v)
	return z
}

// SetBigInt sets z to the reduction of v.
func (z *Felt) SetBigInt(v *big.Int) *Felt {
	z.impl.SetBigInt(v)
	return z
}

// Bytes returns the canonical 32-byte big-endian encoding of z.
func (z *Felt) Bytes() [32]byte {
	return z.impl.Bytes()
}

// Marshal is an alias of Bytes returning a slice, used for DB keys.
func (z *Felt) Marshal() []byte {
	b := z.impl.Bytes()
	return b[:]
}

// Equal reports whether z and x represent the same field element.
func (z *Felt) Equal(x *Felt) bool {
	if x == nil {
		return z.IsZero()
	}
	return z.impl.Equal(&x.impl)
}

// IsZero reports whether z is the additive identity.
func (z *Felt) IsZero() bool {
	return z.impl.IsZero()
}

// String returns the "0x"-prefixed hex representation of z.
func (z *Felt) String() string {
	return "0x" + hex.EncodeToString(trimLeadingZeroBytes(z.Marshal()))
}

func trimLeadingZeroBytes(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return b[i:]
}

// FromHex parses a "0x"-prefixed or bare hex string into a new Felt.
func FromHex(s string) (*Felt, error) {
	if len(s) >= 2 && s[0:2] == "0x" {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("felt: invalid hex string: %w", err)
	}
	f := new(Felt)
	f.SetBytes(b)
	return f, nil
}

// MarshalJSON renders the felt as a "0x..." JSON string, matching the
// feeder gateway's wire format.
func (z Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

// UnmarshalJSON parses the "0x..." JSON string produced by the gateway.
func (z *Felt) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("felt: empty json value")
	}
	s := string(data[1 : len(data)-1])
	if s == "" {
		*z = Zero
		return nil
	}
	f, err := FromHex(s)
	if err != nil {
		return err
	}
	*z = *f
	return nil
}
