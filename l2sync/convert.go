package l2sync

import (
	"fmt"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// convertStateUpdate adapts the feeder gateway's wire-shaped StateUpdate
// (maps keyed by hex address string) into core's ordered StateDiff, per
// spec.md §3's data model. Map iteration order is non-deterministic, so
// the resulting StorageDiffs/Nonces orderings are not stable across
// calls; SCE's Verify only depends on per-key last-write-wins within a
// diff, not on cross-key ordering, so this is safe.
func convertStateUpdate(su *feeder.StateUpdate) (*core.StateUpdate, error) {
	diff := su.StateDiff

	deployed := make([]core.DeployedContract, len(diff.DeployedContracts))
	for i, d := range diff.DeployedContracts {
		deployed[i] = core.DeployedContract{Address: d.Address, ClassHash: d.ClassHash}
	}

	declared := make([]core.DeclaredClass, len(diff.DeclaredClasses))
	for i, d := range diff.DeclaredClasses {
		declared[i] = core.DeclaredClass{ClassHash: d.ClassHash, CompiledClassHash: d.CompiledClassHash}
	}

	replaced := make([]core.ReplacedClass, len(diff.ReplacedClasses))
	for i, r := range diff.ReplacedClasses {
		replaced[i] = core.ReplacedClass{Address: r.Address, ClassHash: r.ClassHash}
	}

	var storageDiffs []core.StorageDiff
	for addrHex, items := range diff.StorageDiffs {
		addr, err := felt.FromHex(addrHex)
		if err != nil {
			return nil, fmt.Errorf("l2sync: storage diff address %q: %w", addrHex, err)
		}
		for _, item := range items {
			storageDiffs = append(storageDiffs, core.StorageDiff{Address: addr, Key: item.Key, Value: item.Value})
		}
	}

	var nonces []core.NonceUpdate
	for addrHex, nonce := range diff.Nonces {
		addr, err := felt.FromHex(addrHex)
		if err != nil {
			return nil, fmt.Errorf("l2sync: nonce update address %q: %w", addrHex, err)
		}
		nonces = append(nonces, core.NonceUpdate{Address: addr, Nonce: nonce})
	}

	return &core.StateUpdate{
		BlockHash: su.BlockHash,
		OldRoot:   su.OldRoot,
		NewRoot:   su.NewRoot,
		StateDiff: &core.StateDiff{
			DeployedContracts: deployed,
			DeclaredClasses:   declared,
			StorageDiffs:      storageDiffs,
			Nonces:            nonces,
			ReplacedClasses:   replaced,
		},
	}, nil
}
