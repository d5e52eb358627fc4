package core

import (
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/fxamacker/cbor/v2"
)

// classRecordWire is the on-disk shape of a ClassRecord. Declared
// separately from ClassRecord so cbor's struct tags stay a storage
// concern rather than leaking into the in-memory type every caller uses.
type classRecordWire struct {
	At                uint64 `cbor:"1,keyasint"`
	CompiledClassHash []byte `cbor:"2,keyasint"`
}

// EncodeClassRecord serializes a ClassRecord for a persistent ClassStore,
// the same way the teacher's core/state.go DB layer wraps its own
// encoder.Marshal around declared-class records before writing them to a
// bucket. The in-memory MemClassStore never calls this; it exists for a
// persistent ClassStore implementation to reuse.
func EncodeClassRecord(r ClassRecord) ([]byte, error) {
	wire := classRecordWire{At: r.At}
	if r.CompiledClassHash != nil {
		wire.CompiledClassHash = r.CompiledClassHash.Marshal()
	}
	return cbor.Marshal(wire)
}

// DecodeClassRecord is EncodeClassRecord's inverse.
func DecodeClassRecord(b []byte) (ClassRecord, error) {
	var wire classRecordWire
	if err := cbor.Unmarshal(b, &wire); err != nil {
		return ClassRecord{}, err
	}
	r := ClassRecord{At: wire.At}
	if len(wire.CompiledClassHash) > 0 {
		r.CompiledClassHash = new(felt.Felt).SetBytes(wire.CompiledClassHash)
	}
	return r, nil
}
