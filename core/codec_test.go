package core_test

import (
	"testing"

	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeClassRecord_RoundTrips(t *testing.T) {
	record := core.ClassRecord{At: 7, CompiledClassHash: hexFelt(t, "0xABCDEF")}

	encoded, err := core.EncodeClassRecord(record)
	require.NoError(t, err)

	decoded, err := core.DecodeClassRecord(encoded)
	require.NoError(t, err)
	require.Equal(t, record.At, decoded.At)
	require.True(t, record.CompiledClassHash.Equal(decoded.CompiledClassHash))
}
