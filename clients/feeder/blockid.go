package feeder

import (
	"strconv"

	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// BlockID selects which block the feeder gateway should answer about, per
// spec.md §6: Number(Height), Hash(BlockHash), or Pending.
type BlockID struct {
	number  uint64
	hash    *felt.Felt
	pending bool
}

// BlockIDNumber selects a block by height.
func BlockIDNumber(height uint64) BlockID { return BlockID{number: height} }

// BlockIDHash selects a block by hash.
func BlockIDHash(hash *felt.Felt) BlockID { return BlockID{hash: hash} }

// BlockIDPending selects the gateway's current pending block.
func BlockIDPending() BlockID { return BlockID{pending: true} }

// queryValue renders the BlockID as the query-string value the feeder
// gateway's get_block/get_state_update endpoints expect.
func (b BlockID) queryValue() string {
	switch {
	case b.pending:
		return "pending"
	case b.hash != nil:
		return b.hash.String()
	default:
		return strconv.FormatUint(b.number, 10)
	}
}
