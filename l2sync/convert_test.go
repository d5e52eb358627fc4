package l2sync

import (
	"testing"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/stretchr/testify/require"
)

func TestConvertStateUpdate_FlattensStorageAndNonceMaps(t *testing.T) {
	addr, err := felt.FromHex("0x1")
	require.NoError(t, err)
	key, err := felt.FromHex("0x2")
	require.NoError(t, err)
	val, err := felt.FromHex("0x3")
	require.NoError(t, err)
	nonce, err := felt.FromHex("0x4")
	require.NoError(t, err)

	su := &feeder.StateUpdate{
		BlockHash: addr,
		StateDiff: &feeder.StateDiff{
			StorageDiffs: map[string][]feeder.StorageDiffItem{
				addr.String(): {{Key: key, Value: val}},
			},
			Nonces: map[string]*felt.Felt{
				addr.String(): nonce,
			},
		},
	}

	converted, err := convertStateUpdate(su)
	require.NoError(t, err)
	require.Len(t, converted.StateDiff.StorageDiffs, 1)
	require.True(t, converted.StateDiff.StorageDiffs[0].Address.Equal(addr))
	require.True(t, converted.StateDiff.StorageDiffs[0].Key.Equal(key))
	require.True(t, converted.StateDiff.StorageDiffs[0].Value.Equal(val))
	require.Len(t, converted.StateDiff.Nonces, 1)
	require.True(t, converted.StateDiff.Nonces[0].Nonce.Equal(nonce))
}

func TestConvertStateUpdate_RejectsMalformedAddress(t *testing.T) {
	su := &feeder.StateUpdate{
		StateDiff: &feeder.StateDiff{
			StorageDiffs: map[string][]feeder.StorageDiffItem{
				"not-hex": {{}},
			},
		},
	}

	_, err := convertStateUpdate(su)
	require.Error(t, err)
}
