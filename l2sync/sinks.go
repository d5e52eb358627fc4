package l2sync

import (
	"context"
	"fmt"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// ClassBatch is the unit CD hands to the class sink: every class fetched
// for one height, dispatched together so a downstream consumer never
// observes a state diff referencing an undelivered class, per spec.md §6.
type ClassBatch struct {
	Height  core.Height
	Classes []core.ContractClassDefinition
}

// BlockSink receives validated blocks in height order.
//
//go:generate mockgen -destination=../mocks/mock_sinks.go -package=mocks github.com/NethermindEth/juno-l2-sync/l2sync BlockSink,StateUpdateSink,ClassSink
type BlockSink interface {
	SendBlock(ctx context.Context, height core.Height, block *feeder.Block) error
}

// StateUpdateSink receives verified state updates in height order. Its
// mock is generated by the directive on BlockSink.
type StateUpdateSink interface {
	SendStateUpdate(ctx context.Context, height core.Height, update *core.StateUpdate) error
}

// ClassSink receives class batches, one per height that introduced new
// classes (heights that introduce none never produce a batch). Its mock is
// generated by the directive on BlockSink.
type ClassSink interface {
	SendClasses(ctx context.Context, batch ClassBatch) error
}

// SealResult is the consensus layer's answer to a SealCommand: either the
// accepted block's hash, or an error.
type SealResult struct {
	Hash *felt.Felt
	Err  error
}

// SealCommand asks consensus to seal a new block, per spec.md §6's
// "notify consensus" external interface. ParentHash is nil to mean "the
// current tip". Reply is a buffered, single-use channel the sender reads
// exactly once.
type SealCommand struct {
	CreateEmpty bool
	Finalize    bool
	ParentHash  *felt.Felt
	Reply       chan SealResult
}

// ConsensusSink is the channel BSFC sends SealCommands on; spec.md §6
// treats consensus as a peer process reachable only by message passing.
type ConsensusSink chan<- SealCommand

// SealNewBlock sends cmd on sink and waits for its reply or ctx
// cancellation. It allocates cmd.Reply if the caller left it nil.
func SealNewBlock(ctx context.Context, sink ConsensusSink, cmd SealCommand) (*felt.Felt, error) {
	if cmd.Reply == nil {
		cmd.Reply = make(chan SealResult, 1)
	}
	select {
	case sink <- cmd:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrConsensusSeal, ctx.Err())
	}
	select {
	case res := <-cmd.Reply:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConsensusSeal, res.Err)
		}
		return res.Hash, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrConsensusSeal, ctx.Err())
	}
}
