package l2sync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/NethermindEth/juno-l2-sync/l2sync"
	"github.com/NethermindEth/juno-l2-sync/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDownloadClasses_FetchesEachHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anchor := feeder.BlockIDNumber(10)
	h1, h2 := hexFelt(t, "0x1"), hexFelt(t, "0x2")

	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ClassDefinition(gomock.Any(), anchor, h1).Return(&feeder.ClassDefinition{Definition: []byte("one")}, nil)
	gw.EXPECT().ClassDefinition(gomock.Any(), anchor, h2).Return(&feeder.ClassDefinition{Definition: []byte("two")}, nil)

	defs, err := l2sync.DownloadClasses(context.Background(), gw, anchor, []*felt.Felt{h1, h2}, 0)
	require.NoError(t, err)
	require.Len(t, defs, 2)
}

func TestDownloadClasses_FailsFastOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anchor := feeder.BlockIDNumber(10)
	h1 := hexFelt(t, "0x1")

	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ClassDefinition(gomock.Any(), anchor, h1).Return(nil, errors.New("not found"))

	_, err := l2sync.DownloadClasses(context.Background(), gw, anchor, []*felt.Felt{h1}, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, l2sync.ErrClassDownloadAborted)
}
