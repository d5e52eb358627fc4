package core

import "github.com/NethermindEth/juno-l2-sync/core/felt"

// Height identifies an L2 block by its monotonically increasing position.
type Height = uint64

// BlockHash, ClassHash, and Address are all 252-bit field elements; the
// distinct names exist only to document intent at call sites, mirroring
// the teacher's convention of passing *felt.Felt everywhere but naming
// parameters for what they represent.
type (
	BlockHash = felt.Felt
	ClassHash = felt.Felt
	Address   = felt.Felt
)

// DeployedContract records a newly deployed contract instance.
type DeployedContract struct {
	Address   *felt.Felt
	ClassHash *felt.Felt
}

// DeclaredClass records a class declaration and its compiled-class
// commitment.
type DeclaredClass struct {
	ClassHash         *felt.Felt
	CompiledClassHash *felt.Felt
}

// StorageDiff records a single storage-slot write for a contract.
type StorageDiff struct {
	Address *felt.Felt
	Key     *felt.Felt
	Value   *felt.Felt
}

// NonceUpdate records a contract's new nonce.
type NonceUpdate struct {
	Address *felt.Felt
	Nonce   *felt.Felt
}

// ReplacedClass records a contract instance being rebound to a new class.
type ReplacedClass struct {
	Address   *felt.Felt
	ClassHash *felt.Felt
}

// StateDiff is the per-height set of state mutations, in the order
// required by spec.md §4.1: declared classes, deployed contracts, storage
// writes, nonce updates, contract replacements.
type StateDiff struct {
	DeployedContracts []DeployedContract
	DeclaredClasses   []DeclaredClass
	StorageDiffs      []StorageDiff
	Nonces            []NonceUpdate
	ReplacedClasses   []ReplacedClass
}

// StateUpdate is the per-height verified commitment envelope fetched from
// the gateway. BlockHash is mandatory for confirmed heights and nil only
// for the pending slot.
type StateUpdate struct {
	BlockHash *felt.Felt
	OldRoot   *felt.Felt
	NewRoot   *felt.Felt
	StateDiff *StateDiff
}

// ContractClassDefinition is the raw, gateway-fetched class payload plus
// its content address.
type ContractClassDefinition struct {
	Hash       *felt.Felt
	Definition []byte
}

// L2Tip is the most recently SCE-verified height, written to the
// observation store only after verification succeeds.
type L2Tip struct {
	Height     Height
	GlobalRoot *felt.Felt
	BlockHash  *felt.Felt
}
