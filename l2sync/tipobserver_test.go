package l2sync_test

import (
	"context"
	"testing"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/NethermindEth/juno-l2-sync/l2sync"
	"github.com/NethermindEth/juno-l2-sync/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestTick_PublishesPendingWhenCaughtUp covers spec.md §8 scenario 5's
// happy path: the locally verified tip's hash matches the pending block's
// parent_block_hash, so both pending slots are populated.
func TestTick_PublishesPendingWhenCaughtUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tipHash := hexFelt(t, "0x1234")
	pendingBlock := &feeder.Block{BlockNumber: 2, ParentBlockHash: tipHash}
	pendingUpdate := &feeder.StateUpdate{BlockHash: hexFelt(t, "0x5678"), OldRoot: &felt.Zero, StateDiff: &feeder.StateDiff{}}

	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Block(gomock.Any(), feeder.BlockIDPending()).Return(pendingBlock, nil)
	gw.EXPECT().StateUpdate(gomock.Any(), feeder.BlockIDPending()).Return(pendingUpdate, nil)

	sos := l2sync.NewObservationStore()
	sos.SetVerifiedTip(core.L2Tip{Height: 1, GlobalRoot: &felt.Zero, BlockHash: tipHash})

	to := l2sync.NewTipObserver(gw, sos, nil)
	to.Tick(context.Background())

	require.Same(t, pendingBlock, sos.PendingBlock())
	require.NotNil(t, sos.PendingStateUpdate())
	require.True(t, sos.PendingStateUpdate().BlockHash.Equal(pendingUpdate.BlockHash))

	highestHash, highestHeight := sos.HighestKnown()
	require.True(t, highestHash.Equal(tipHash))
	require.EqualValues(t, 1, highestHeight)
}

// TestTick_NotCaughtUpOnlyUpdatesHighestKnown covers spec.md §8 scenario 5's
// other branch: the locally verified tip disagrees with the pending
// block's parent, so only highest_known moves and neither pending slot is
// touched (nor is the state update ever fetched).
func TestTick_NotCaughtUpOnlyUpdatesHighestKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	localTip := hexFelt(t, "0x1")
	otherParent := hexFelt(t, "0x999")
	pendingBlock := &feeder.Block{BlockNumber: 5, ParentBlockHash: otherParent}

	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Block(gomock.Any(), feeder.BlockIDPending()).Return(pendingBlock, nil)
	// No StateUpdate call expected: the gate must short-circuit before it.

	sos := l2sync.NewObservationStore()
	sos.SetVerifiedTip(core.L2Tip{Height: 1, GlobalRoot: &felt.Zero, BlockHash: localTip})

	staleBlock := &feeder.Block{BlockNumber: 1}
	sos.SetPendingBlock(staleBlock)

	to := l2sync.NewTipObserver(gw, sos, nil)
	to.Tick(context.Background())

	require.Same(t, staleBlock, sos.PendingBlock())
	require.Nil(t, sos.PendingStateUpdate())

	highestHash, highestHeight := sos.HighestKnown()
	require.True(t, highestHash.Equal(otherParent))
	require.EqualValues(t, 4, highestHeight)
}

// TestTick_NoVerifiedTipYetDoesNotPublishPending covers the startup case:
// before anything has ever been verified, Tick must not publish pending
// data (there is no local best hash to compare against).
func TestTick_NoVerifiedTipYetDoesNotPublishPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pendingBlock := &feeder.Block{BlockNumber: 0, ParentBlockHash: &felt.Zero}

	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Block(gomock.Any(), feeder.BlockIDPending()).Return(pendingBlock, nil)

	sos := l2sync.NewObservationStore()

	to := l2sync.NewTipObserver(gw, sos, nil)
	to.Tick(context.Background())

	require.Nil(t, sos.PendingBlock())
	require.Nil(t, sos.PendingStateUpdate())
}
