package l2sync

import (
	"context"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/utils"
)

// TipObserver (TO) is spec.md §4.5: a stateless query against the
// gateway's pending block, writing what it learns into the shared
// observation store. Its caller (BSFC) is responsible for the "at most
// once per second" cadence gate per spec.md §4.4 — TO itself just does
// the fetch-and-record on demand, mirroring the teacher's
// update_starknet_data helper which is invoked from the sync loop rather
// than run on its own ticker.
type TipObserver struct {
	gw  Gateway
	sos *ObservationStore
	log utils.SimpleLogger
}

func NewTipObserver(gw Gateway, sos *ObservationStore, log utils.SimpleLogger) *TipObserver {
	if log == nil {
		log = utils.NewNopZapLogger()
	}
	return &TipObserver{gw: gw, sos: sos, log: log}
}

// Tick fetches the gateway's current pending block and records the
// highest-known observation (the pending block's parent hash and height,
// skipped when the pending block is block 0) regardless of the catch-up
// gate below, but only publishes the
// pending block/state update once the locally verified tip has actually
// caught up to that pending block's parent: per spec.md §4.5 step 3 /
// §8 scenario 5, if the locally-known best hash does not equal the
// pending block's parent_block_hash, pending_block and
// pending_state_update stay at their previous values and only
// highest_known moves. A fetch failure here is not fatal to BSFC: per
// spec.md §4.5 the tip observation is best-effort and logged, never
// retried inline.
func (t *TipObserver) Tick(ctx context.Context) {
	block, err := t.gw.Block(ctx, feeder.BlockIDPending())
	if err != nil {
		t.log.Warnw("tip observer: pending block fetch failed", "err", err)
		return
	}

	if block.BlockNumber > 0 {
		t.sos.SetHighestKnown(block.ParentBlockHash, block.BlockNumber-1)
	}

	tip, tipSet := t.sos.VerifiedTip()
	if !tipSet || !tip.BlockHash.Equal(block.ParentBlockHash) {
		return
	}

	t.sos.SetPendingBlock(block)

	update, err := t.gw.StateUpdate(ctx, feeder.BlockIDPending())
	if err != nil {
		t.log.Warnw("tip observer: pending state update fetch failed", "err", err)
		return
	}
	converted, err := convertStateUpdate(update)
	if err != nil {
		t.log.Warnw("tip observer: pending state update conversion failed", "err", err)
		return
	}
	t.sos.SetPendingStateUpdate(converted)
}
