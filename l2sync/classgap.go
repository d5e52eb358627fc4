package l2sync

import (
	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// ClassStorageView lets CGR ask whether a class is already known at a
// given block anchor without depending on the full State/ContractStore
// surface, per spec.md §4.2.
//
//go:generate mockgen -destination=../mocks/mock_classstorageview.go -package=mocks github.com/NethermindEth/juno-l2-sync/l2sync ClassStorageView
type ClassStorageView interface {
	Has(blockHash *felt.Felt, classHash *felt.Felt) (bool, error)
}

// MissingClasses is the Class-Gap Resolver (CGR): given a state diff, it
// returns the deduplicated set of class hashes the diff references that
// are not already known at anchor, preserving first-seen order across
// deployed_contracts then declared_classes, per spec.md §4.2's algorithm.
// anchor == nil means "assume nothing is known" (used at genesis).
func MissingClasses(diff *core.StateDiff, anchor *felt.Felt, view ClassStorageView) ([]*felt.Felt, error) {
	candidates := aggregateClassHashes(diff)
	if anchor == nil {
		return candidates, nil
	}

	missing := make([]*felt.Felt, 0, len(candidates))
	for _, ch := range candidates {
		known, err := view.Has(anchor, ch)
		if err != nil {
			return nil, err
		}
		if !known {
			missing = append(missing, ch)
		}
	}
	return missing, nil
}

// aggregateClassHashes unions the class hashes referenced by a diff's
// deployed_contracts and declared_classes, deduplicated and in
// first-seen order.
func aggregateClassHashes(diff *core.StateDiff) []*felt.Felt {
	seen := make(map[felt.Felt]struct{}, len(diff.DeployedContracts)+len(diff.DeclaredClasses))
	out := make([]*felt.Felt, 0, len(diff.DeployedContracts)+len(diff.DeclaredClasses))

	add := func(f *felt.Felt) {
		if f == nil {
			return
		}
		if _, ok := seen[*f]; ok {
			return
		}
		seen[*f] = struct{}{}
		out = append(out, f)
	}

	for _, d := range diff.DeployedContracts {
		add(d.ClassHash)
	}
	for _, d := range diff.DeclaredClasses {
		add(d.ClassHash)
	}
	return out
}
