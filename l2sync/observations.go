package l2sync

import (
	"sync"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// ObservationStore is the Shared Observation Store (SOS) per spec.md §4.6:
// four independently-locked slots (BSFC writes the verified tip, TO writes
// the other three) that external readers consult, each guarded by its own
// mutex so a slow reader of one slot never blocks a writer of another.
type ObservationStore struct {
	tipMu  sync.RWMutex
	tip    core.L2Tip
	tipSet bool

	highestMu     sync.RWMutex
	highestHash   *felt.Felt
	highestHeight uint64

	pendingBlockMu sync.RWMutex
	pendingBlock   *feeder.Block

	pendingStateMu     sync.RWMutex
	pendingStateUpdate *core.StateUpdate
}

func NewObservationStore() *ObservationStore {
	return &ObservationStore{}
}

// SetVerifiedTip records the most recently SCE-verified height. Only
// called after Verify succeeds, per spec.md §4.1/§4.6.
func (o *ObservationStore) SetVerifiedTip(tip core.L2Tip) {
	o.tipMu.Lock()
	defer o.tipMu.Unlock()
	o.tip = tip
	o.tipSet = true
}

// VerifiedTip returns the current verified tip and whether one has ever
// been set (false before the first height is verified).
func (o *ObservationStore) VerifiedTip() (core.L2Tip, bool) {
	o.tipMu.RLock()
	defer o.tipMu.RUnlock()
	return o.tip, o.tipSet
}

// SetHighestKnown records TO's most recent observation of the gateway's
// highest known block.
func (o *ObservationStore) SetHighestKnown(hash *felt.Felt, height uint64) {
	o.highestMu.Lock()
	defer o.highestMu.Unlock()
	o.highestHash = hash
	o.highestHeight = height
}

// HighestKnown returns the last value TO wrote, or (nil, 0) if TO has
// never ticked.
func (o *ObservationStore) HighestKnown() (*felt.Felt, uint64) {
	o.highestMu.RLock()
	defer o.highestMu.RUnlock()
	return o.highestHash, o.highestHeight
}

// SetPendingBlock records the gateway's current pending block, replacing
// whatever was previously observed for the pending slot.
func (o *ObservationStore) SetPendingBlock(b *feeder.Block) {
	o.pendingBlockMu.Lock()
	defer o.pendingBlockMu.Unlock()
	o.pendingBlock = b
}

func (o *ObservationStore) PendingBlock() *feeder.Block {
	o.pendingBlockMu.RLock()
	defer o.pendingBlockMu.RUnlock()
	return o.pendingBlock
}

// SetPendingStateUpdate records the gateway's current pending state
// update, independently of SetPendingBlock: spec.md §4.4's design notes
// call out that these two pending observations may legitimately disagree
// on which pending block they describe, and that is not itself an error.
func (o *ObservationStore) SetPendingStateUpdate(su *core.StateUpdate) {
	o.pendingStateMu.Lock()
	defer o.pendingStateMu.Unlock()
	o.pendingStateUpdate = su
}

func (o *ObservationStore) PendingStateUpdate() *core.StateUpdate {
	o.pendingStateMu.RLock()
	defer o.pendingStateMu.RUnlock()
	return o.pendingStateUpdate
}
