package l2sync_test

import (
	"testing"

	"github.com/NethermindEth/juno-l2-sync/core"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/NethermindEth/juno-l2-sync/l2sync"
	"github.com/NethermindEth/juno-l2-sync/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hexFelt(t *testing.T, s string) *felt.Felt {
	t.Helper()
	f, err := felt.FromHex(s)
	require.NoError(t, err)
	return f
}

func TestMissingClasses_NoAnchorReturnsEverything(t *testing.T) {
	diff := &core.StateDiff{
		DeployedContracts: []core.DeployedContract{{Address: hexFelt(t, "0x1"), ClassHash: hexFelt(t, "0xaa")}},
		DeclaredClasses:   []core.DeclaredClass{{ClassHash: hexFelt(t, "0xbb")}},
	}

	missing, err := l2sync.MissingClasses(diff, nil, nil)
	require.NoError(t, err)
	require.Len(t, missing, 2)
	require.True(t, missing[0].Equal(hexFelt(t, "0xaa")))
	require.True(t, missing[1].Equal(hexFelt(t, "0xbb")))
}

func TestMissingClasses_DedupesAcrossCategories(t *testing.T) {
	shared := hexFelt(t, "0xaa")
	diff := &core.StateDiff{
		DeployedContracts: []core.DeployedContract{{Address: hexFelt(t, "0x1"), ClassHash: shared}},
		DeclaredClasses:   []core.DeclaredClass{{ClassHash: shared}},
	}

	missing, err := l2sync.MissingClasses(diff, nil, nil)
	require.NoError(t, err)
	require.Len(t, missing, 1)
}

func TestMissingClasses_SkipsAlreadyKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anchor := hexFelt(t, "0xff")
	known := hexFelt(t, "0xaa")
	unknown := hexFelt(t, "0xbb")

	view := mocks.NewMockClassStorageView(ctrl)
	view.EXPECT().Has(anchor, known).Return(true, nil)
	view.EXPECT().Has(anchor, unknown).Return(false, nil)

	diff := &core.StateDiff{
		DeclaredClasses: []core.DeclaredClass{{ClassHash: known}, {ClassHash: unknown}},
	}

	missing, err := l2sync.MissingClasses(diff, anchor, view)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.True(t, missing[0].Equal(unknown))
}
