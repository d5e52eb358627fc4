package feeder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NethermindEth/juno-l2-sync/clients/feeder"
	"github.com/stretchr/testify/require"
)

func TestClient_Block_EncodesBlockID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("blockNumber")
		w.Write([]byte(`{"block_number":5,"block_hash":"0x5","parent_block_hash":"0x4","status":"ACCEPTED_ON_L2"}`))
	}))
	defer srv.Close()

	c := feeder.NewClient(srv.URL).WithBackoff(feeder.NopBackoff).WithMaxRetries(0)

	block, err := c.Block(context.Background(), feeder.BlockIDNumber(5))
	require.NoError(t, err)
	require.Equal(t, "5", gotQuery)
	require.EqualValues(t, 5, block.BlockNumber)
}

func TestClient_Block_PendingQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("blockNumber")
		w.Write([]byte(`{"block_number":5,"block_hash":"0x0","parent_block_hash":"0x4","status":"PENDING"}`))
	}))
	defer srv.Close()

	c := feeder.NewClient(srv.URL).WithBackoff(feeder.NopBackoff).WithMaxRetries(0)

	_, err := c.Block(context.Background(), feeder.BlockIDPending())
	require.NoError(t, err)
	require.Equal(t, "pending", gotQuery)
}

func TestClient_Get_RetriesOnFailureThenSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"block_number":1,"block_hash":"0x1","parent_block_hash":"0x0","status":"ACCEPTED_ON_L2"}`))
	}))
	defer srv.Close()

	c := feeder.NewClient(srv.URL).
		WithBackoff(feeder.NopBackoff).
		WithMaxRetries(5).
		WithMinWait(time.Millisecond).
		WithMaxWait(time.Millisecond)

	block, err := c.Block(context.Background(), feeder.BlockIDNumber(1))
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
	require.EqualValues(t, 1, block.BlockNumber)
}

func TestClient_Get_GivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := feeder.NewClient(srv.URL).
		WithBackoff(feeder.NopBackoff).
		WithMaxRetries(2).
		WithMinWait(time.Millisecond).
		WithMaxWait(time.Millisecond)

	_, err := c.Block(context.Background(), feeder.BlockIDNumber(1))
	require.Error(t, err)
}
