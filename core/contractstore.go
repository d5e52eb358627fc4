package core

import (
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/NethermindEth/juno-l2-sync/core/trie"
)

// ContractStore is the persistence surface for per-contract state: class
// binding, nonce, deployment height, and the backing Storage for that
// contract's own Pedersen storage trie. It plays the role the teacher's
// db.Transaction + NewContract(addr, txn) pair plays in core/state.go,
// generalized to an explicit interface since the KV layer is an opaque
// external collaborator per spec.md §6.
type ContractStore interface {
	ClassHash(addr *felt.Felt) (*felt.Felt, error)
	SetClassHash(addr, classHash *felt.Felt) error

	Nonce(addr *felt.Felt) (*felt.Felt, error)
	SetNonce(addr, nonce *felt.Felt) error

	DeploymentHeight(addr *felt.Felt) (height uint64, deployed bool, err error)
	SetDeploymentHeight(addr *felt.Felt, height uint64) error

	// StorageTrie returns the trie.Storage backing this contract's own
	// per-key storage trie, created lazily on first use.
	StorageTrie(addr *felt.Felt) trie.Storage

	Purge(addr *felt.Felt) error
}

// ClassRecord is what SCE persists when a class is declared: the height
// it first appeared at, plus an opaque handle to its compiled form. It
// mirrors the teacher's own DeclaredClass{At, Class} record in
// core/state.go, renamed to avoid colliding with the state-diff
// DeclaredClass entry in types.go.
type ClassRecord struct {
	At                uint64
	CompiledClassHash *felt.Felt
}

// ClassStore is SCE's persistence surface for declared-class records,
// keyed by class hash. It is distinct from the gateway-facing
// ClassStorageView that CGR consults (core types.ContractClassDefinition
// vs. this lightweight commitment-only record).
type ClassStore interface {
	Get(classHash *felt.Felt) (*ClassRecord, bool, error)
	Put(classHash *felt.Felt, record ClassRecord) error
	Delete(classHash *felt.Felt) error
}

// MemContractStore is an in-memory ContractStore, used by tests and
// suitable as a reference implementation when no persistent KV store is
// wired in.
type MemContractStore struct {
	classHash  map[felt.Felt]*felt.Felt
	nonce      map[felt.Felt]*felt.Felt
	deployedAt map[felt.Felt]uint64
	storages   map[felt.Felt]*memTrieStorage
}

func NewMemContractStore() *MemContractStore {
	return &MemContractStore{
		classHash:  make(map[felt.Felt]*felt.Felt),
		nonce:      make(map[felt.Felt]*felt.Felt),
		deployedAt: make(map[felt.Felt]uint64),
		storages:   make(map[felt.Felt]*memTrieStorage),
	}
}

func (m *MemContractStore) ClassHash(addr *felt.Felt) (*felt.Felt, error) {
	if v, ok := m.classHash[*addr]; ok {
		return v, nil
	}
	return &felt.Zero, nil
}

func (m *MemContractStore) SetClassHash(addr, classHash *felt.Felt) error {
	m.classHash[*addr] = classHash
	return nil
}

func (m *MemContractStore) Nonce(addr *felt.Felt) (*felt.Felt, error) {
	if v, ok := m.nonce[*addr]; ok {
		return v, nil
	}
	return &felt.Zero, nil
}

func (m *MemContractStore) SetNonce(addr, nonce *felt.Felt) error {
	m.nonce[*addr] = nonce
	return nil
}

func (m *MemContractStore) DeploymentHeight(addr *felt.Felt) (uint64, bool, error) {
	h, ok := m.deployedAt[*addr]
	return h, ok, nil
}

func (m *MemContractStore) SetDeploymentHeight(addr *felt.Felt, height uint64) error {
	m.deployedAt[*addr] = height
	return nil
}

func (m *MemContractStore) StorageTrie(addr *felt.Felt) trie.Storage {
	s, ok := m.storages[*addr]
	if !ok {
		s = newMemTrieStorage()
		m.storages[*addr] = s
	}
	return s
}

func (m *MemContractStore) Purge(addr *felt.Felt) error {
	delete(m.classHash, *addr)
	delete(m.nonce, *addr)
	delete(m.deployedAt, *addr)
	delete(m.storages, *addr)
	return nil
}

// MemClassStore is an in-memory ClassStore for tests and default wiring.
type MemClassStore struct {
	records map[felt.Felt]ClassRecord
}

func NewMemClassStore() *MemClassStore {
	return &MemClassStore{records: make(map[felt.Felt]ClassRecord)}
}

func (m *MemClassStore) Get(classHash *felt.Felt) (*ClassRecord, bool, error) {
	r, ok := m.records[*classHash]
	if !ok {
		return nil, false, nil
	}
	return &r, true, nil
}

func (m *MemClassStore) Put(classHash *felt.Felt, record ClassRecord) error {
	m.records[*classHash] = record
	return nil
}

func (m *MemClassStore) Delete(classHash *felt.Felt) error {
	delete(m.records, *classHash)
	return nil
}
