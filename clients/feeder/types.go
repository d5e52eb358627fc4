package feeder

import (
	"encoding/json"

	"github.com/NethermindEth/juno-l2-sync/core/felt"
)

// Block is the feeder gateway's block payload. Only the fields the sync
// core actually consumes are typed; everything else rides along opaquely
// in Payload per spec.md §6 ("payload passed through opaquely").
type Block struct {
	BlockNumber     uint64          `json:"block_number"`
	BlockHash       *felt.Felt      `json:"block_hash"`
	ParentBlockHash *felt.Felt      `json:"parent_block_hash"`
	Status          string          `json:"status"`
	Payload         json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the typed fields this module needs while keeping
// the full original payload around for downstream consumers that want
// more than block_number/parent_block_hash.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = Block(a)
	b.Payload = append(json.RawMessage(nil), data...)
	return nil
}

// DeployedContract is the feeder gateway's wire shape for a newly
// deployed contract in a state diff.
type DeployedContract struct {
	Address   *felt.Felt `json:"address"`
	ClassHash *felt.Felt `json:"class_hash"`
}

// DeclaredClass is the feeder gateway's wire shape for a declared class
// in a state diff (Sierra classes carry a compiled_class_hash; legacy
// Cairo 0 declarations may omit it).
type DeclaredClass struct {
	ClassHash         *felt.Felt `json:"class_hash"`
	CompiledClassHash *felt.Felt `json:"compiled_class_hash,omitempty"`
}

// StorageDiffItem is a single (key, value) storage write for one
// contract address.
type StorageDiffItem struct {
	Key   *felt.Felt `json:"key"`
	Value *felt.Felt `json:"value"`
}

// ReplacedClass is the feeder gateway's wire shape for a contract
// instance rebound to a new class.
type ReplacedClass struct {
	Address   *felt.Felt `json:"address"`
	ClassHash *felt.Felt `json:"class_hash"`
}

// StateDiff is the feeder gateway's wire shape for a state update's diff
// section.
type StateDiff struct {
	DeployedContracts []DeployedContract            `json:"deployed_contracts"`
	DeclaredClasses   []DeclaredClass                `json:"declared_classes"`
	StorageDiffs      map[string][]StorageDiffItem  `json:"storage_diffs"`
	Nonces            map[string]*felt.Felt          `json:"nonces"`
	ReplacedClasses   []ReplacedClass                `json:"replaced_classes"`
}

// StateUpdate is the feeder gateway's get_state_update response.
type StateUpdate struct {
	BlockHash *felt.Felt `json:"block_hash"`
	OldRoot   *felt.Felt `json:"old_root"`
	NewRoot   *felt.Felt `json:"new_root"`
	StateDiff *StateDiff `json:"state_diff"`
}

// ClassDefinition is the feeder gateway's get_class_by_hash response: the
// raw class bytes, kept opaque per spec.md §3's ContractClass definition.
type ClassDefinition struct {
	Definition json.RawMessage `json:"-"`
}

func (c *ClassDefinition) UnmarshalJSON(data []byte) error {
	c.Definition = append(json.RawMessage(nil), data...)
	return nil
}

// TransactionStatus is the feeder gateway's get_transaction response
// status envelope; out of scope for this core but kept for parity with
// the teacher's client surface.
type TransactionStatus struct {
	Status string `json:"status"`
}
