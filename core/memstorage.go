package core

import (
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/NethermindEth/juno-l2-sync/core/trie"
	"github.com/bits-and-blooms/bitset"
)

// memTrieStorage is a minimal in-memory trie.Storage, used as the default
// backing for tests and for embedders that have not yet wired in a
// persistent KV store. A production deployment supplies its own
// trie.Storage backed by the opaque trie backend described in spec.md §6.
type memTrieStorage struct {
	nodes map[string]*felt.Felt
}

func newMemTrieStorage() *memTrieStorage {
	return &memTrieStorage{nodes: make(map[string]*felt.Felt)}
}

func (s *memTrieStorage) key(path *bitset.BitSet) string {
	b, err := path.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (s *memTrieStorage) Get(path *bitset.BitSet) (*felt.Felt, error) {
	v, ok := s.nodes[s.key(path)]
	if !ok {
		return nil, trie.ErrKeyNotFound
	}
	return v, nil
}

func (s *memTrieStorage) Put(path *bitset.BitSet, value *felt.Felt) error {
	s.nodes[s.key(path)] = value
	return nil
}

func (s *memTrieStorage) Delete(path *bitset.BitSet) error {
	delete(s.nodes, s.key(path))
	return nil
}

func (s *memTrieStorage) Iterate(fn func(path *bitset.BitSet, value *felt.Felt) error) error {
	for k, v := range s.nodes {
		bs := new(bitset.BitSet)
		if err := bs.UnmarshalBinary([]byte(k)); err != nil {
			return err
		}
		if err := fn(bs, v); err != nil {
			return err
		}
	}
	return nil
}

// NewMemGlobalTrieStorage returns a fresh in-memory trie.Storage suitable
// for backing either of State's two global tries.
func NewMemGlobalTrieStorage() trie.Storage {
	return newMemTrieStorage()
}
