package l2sync

import (
	"context"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// Gateway is the external interface BSFC, CD, and TO consume, per
// spec.md §6. clients/feeder.Client satisfies it directly; tests wire in
// a mock instead of spinning up an httptest server per case.
//
//go:generate mockgen -destination=../mocks/mock_gateway.go -package=mocks github.com/NethermindEth/juno-l2-sync/l2sync Gateway
type Gateway interface {
	Block(ctx context.Context, id feeder.BlockID) (*feeder.Block, error)
	StateUpdate(ctx context.Context, id feeder.BlockID) (*feeder.StateUpdate, error)
	ClassDefinition(ctx context.Context, id feeder.BlockID, classHash *felt.Felt) (*feeder.ClassDefinition, error)
}

var _ Gateway = (*feeder.Client)(nil)
