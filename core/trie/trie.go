// Package trie implements the two persistent Merkle tries the global state
// commitment is built from: a height-251 sparse trie keyed by contract
// address (hashed with Pedersen) and one keyed by class hash (hashed with
// Poseidon). Both share this package; only the hashFold differs (each trie
// is handed its own Storage), mirroring core/state.go's NewTriePedersen /
// NewTriePoseidon split in the teacher.
package trie

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/juno-l2-sync/core/crypto"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/bits-and-blooms/bitset"
)

// Height is the depth of the global tries, fixed by the Starknet
// commitment scheme.
const Height = 251

// ErrKeyNotFound is returned by Storage.Get when no node is stored under
// the given path.
var ErrKeyNotFound = errors.New("trie: key not found")

// Storage is the persistent backing for trie nodes, keyed by bit path.
// It is deliberately minimal: the trie backend itself is an external
// collaborator per spec.md §6 ("persistent trie backend ... treated as
// opaque"); this interface is the contract a concrete KV store must
// satisfy to back a Trie.
type Storage interface {
	Get(path *bitset.BitSet) (*felt.Felt, error)
	Put(path *bitset.BitSet, value *felt.Felt) error
	Delete(path *bitset.BitSet) error
	// Iterate calls fn once per currently-persisted (path, value) pair.
	// Root() uses this to fold the full leaf set on every call since this
	// package does not cache internal node hashes across Trie instances
	// (a new Trie is constructed per height, mirroring the teacher's
	// globalTrie helper).
	Iterate(fn func(path *bitset.BitSet, value *felt.Felt) error) error
}

// NewTrieFunc constructs a Trie over the given storage, rooted at rootKey
// (nil for an empty trie). It matches the signature the teacher's
// globalTrie helper expects from trie.NewTriePedersen / NewTriePoseidon.
type NewTrieFunc func(storage Storage, height uint8, rootKey *bitset.BitSet) (*Trie, error)

// NewTriePedersen constructs the contract-storage global trie.
func NewTriePedersen(storage Storage, height uint8, rootKey *bitset.BitSet) (*Trie, error) {
	return newTrie(storage, height, rootKey, pedersenFold)
}

// NewTriePoseidon constructs the class global trie.
func NewTriePoseidon(storage Storage, height uint8, rootKey *bitset.BitSet) (*Trie, error) {
	return newTrie(storage, height, rootKey, poseidonFold)
}

func newTrie(storage Storage, height uint8, rootKey *bitset.BitSet, fold hashFold) (*Trie, error) {
	if height == 0 || height > 251 {
		return nil, fmt.Errorf("trie: invalid height %d", height)
	}
	return &Trie{
		storage: storage,
		height:  height,
		rootKey: rootKey,
		fold:    fold,
		dirty:   make(map[string]*felt.Felt),
	}, nil
}

// hashFold combines a node's two children (or, at the leaf, is unused)
// into its parent's value. Supplied by the two hash-family constructors
// above so Trie itself stays hash-agnostic.
type hashFold func(left, right *felt.Felt) *felt.Felt

func pedersenFold(left, right *felt.Felt) *felt.Felt {
	return crypto.Pedersen(left, right)
}

func poseidonFold(left, right *felt.Felt) *felt.Felt {
	return crypto.Poseidon(left, right)
}

// Trie is a height-251 sparse Merkle trie. Unset leaves are implicitly
// zero; computeRoot folds empty subtrees to felt.Zero without
// materializing them. Only the root is memoized, until the next Put.
type Trie struct {
	storage Storage
	height  uint8
	rootKey *bitset.BitSet
	fold    hashFold

	dirty map[string]*felt.Felt // path string -> leaf value, pending Commit
	root  *felt.Felt
}

// Put sets the value at key, returning the key's previous value (Zero if
// unset). A zero value removes the leaf from storage on Commit.
func (t *Trie) Put(key, value *felt.Felt) (*felt.Felt, error) {
	path := keyPath(key, t.height)

	old, err := t.Get(key)
	if err != nil {
		return nil, err
	}

	t.dirty[pathKey(path)] = value
	t.root = nil // invalidate memoized root until Commit recomputes it
	return old, nil
}

// Get returns the value stored at key, or felt.Zero if unset.
func (t *Trie) Get(key *felt.Felt) (*felt.Felt, error) {
	path := keyPath(key, t.height)
	if v, ok := t.dirty[pathKey(path)]; ok {
		return v, nil
	}
	v, err := t.storage.Get(path)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return &felt.Zero, nil
		}
		return nil, err
	}
	return v, nil
}

// Root returns the trie's current commitment, folding every dirty leaf
// into the (possibly empty) set of previously committed leaves.
func (t *Trie) Root() (*felt.Felt, error) {
	if t.root != nil {
		return t.root, nil
	}

	leaves := make(map[string]*felt.Felt)
	if err := t.collectLeaves(leaves); err != nil {
		return nil, err
	}

	root := computeRoot(leaves, t.fold, int(t.height))
	t.root = root
	return root, nil
}

// Commit persists all pending Put calls to storage and updates the root
// key pointer, the same two-phase shape as the teacher's globalTrie
// closer().
func (t *Trie) Commit() error {
	for pathStr, value := range t.dirty {
		path := pathFromString(pathStr)
		if value.IsZero() {
			if err := t.storage.Delete(path); err != nil {
				return err
			}
			continue
		}
		if err := t.storage.Put(path, value); err != nil {
			return err
		}
	}
	t.dirty = make(map[string]*felt.Felt)

	root, err := t.Root()
	if err != nil {
		return err
	}
	if root.IsZero() {
		t.rootKey = nil
	} else {
		rk := bitset.New(uint(t.height))
		rk.Set(0)
		t.rootKey = rk
	}
	return nil
}

// RootKey exposes the persisted pointer to the current root, matching the
// teacher's trie.RootKey() used to decide whether the DB's root-key entry
// needs updating.
func (t *Trie) RootKey() *bitset.BitSet {
	return t.rootKey
}

func (t *Trie) collectLeaves(out map[string]*felt.Felt) error {
	if err := t.storage.Iterate(func(path *bitset.BitSet, value *felt.Felt) error {
		out[pathKey(path)] = value
		return nil
	}); err != nil {
		return err
	}

	for pathStr, v := range t.dirty {
		if v.IsZero() {
			delete(out, pathStr)
			continue
		}
		out[pathStr] = v
	}
	return nil
}

func keyPath(key *felt.Felt, height uint8) *bitset.BitSet {
	b := key.Bytes()
	bs := bitset.New(uint(height))
	for i := uint8(0); i < height; i++ {
		byteIdx := 31 - i/8
		bitIdx := i % 8
		if b[byteIdx]&(1<<bitIdx) != 0 {
			bs.Set(uint(i))
		}
	}
	return bs
}

// pathKey returns a stable map key for a bit path, via its binary
// encoding rather than its human-readable String() form.
func pathKey(path *bitset.BitSet) string {
	b, err := path.MarshalBinary()
	if err != nil {
		panic(err) // BitSet.MarshalBinary never fails
	}
	return string(b)
}

func pathFromString(s string) *bitset.BitSet {
	bs := new(bitset.BitSet)
	if err := bs.UnmarshalBinary([]byte(s)); err != nil {
		return bitset.New(0)
	}
	return bs
}

// computeRoot folds a sparse set of non-zero leaves, keyed by their
// marshaled bit-path, bottom-up into a single root value. Leaves is
// intentionally small (only dirty/non-zero paths); empty subtrees fold to
// felt.Zero without being materialized.
func computeRoot(leaves map[string]*felt.Felt, fold hashFold, height int) *felt.Felt {
	if len(leaves) == 0 {
		return &felt.Zero
	}
	if height == 0 {
		for _, v := range leaves {
			return v
		}
	}

	left := make(map[string]*felt.Felt)
	right := make(map[string]*felt.Felt)
	for path, v := range leaves {
		bs := pathFromString(path)
		if bs.Test(uint(height - 1)) {
			right[path] = v
		} else {
			left[path] = v
		}
	}

	leftRoot := computeRoot(left, fold, height-1)
	rightRoot := computeRoot(right, fold, height-1)
	return fold(leftRoot, rightRoot)
}
