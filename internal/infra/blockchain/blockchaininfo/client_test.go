package blockchaininfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/mixscan"
	"github.com/gabapcia/btcwatch/internal/pkg/fault"
	httpclient "github.com/gabapcia/btcwatch/internal/pkg/transport/http"
	"github.com/gabapcia/btcwatch/internal/pkg/transport/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a server answering with handler and a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conn := rest.NewClient(httpclient.NewClient(
		httpclient.WithTimeout(time.Second),
		httpclient.WithRetryMax(0),
	), server.URL)

	return NewClient(conn)
}

// respond returns a handler writing body with status.
func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestTransactionResponse_toAddrwatchTransaction(t *testing.T) {
	t.Run("keeps absent fields nil and present ones non-nil", func(t *testing.T) {
		absent := TransactionResponse{Hash: "a"}.toAddrwatchTransaction()
		assert.Nil(t, absent.Inputs)
		assert.Nil(t, absent.Outputs)

		empty := TransactionResponse{Hash: "b", Inputs: []InputResponse{}, Out: []OutputResponse{}}.toAddrwatchTransaction()
		assert.NotNil(t, empty.Inputs)
		assert.NotNil(t, empty.Outputs)
		assert.Empty(t, empty.Inputs)
	})

	t.Run("maps addresses and values, tolerating coinbase inputs", func(t *testing.T) {
		tx := TransactionResponse{
			Hash: "c",
			Inputs: []InputResponse{
				{PrevOut: &PrevOutResponse{Addr: "from", Value: 7}},
				{PrevOut: nil},
			},
			Out: []OutputResponse{{Addr: "to", Value: 6}, {Value: 0}},
		}.toAddrwatchTransaction()

		assert.Equal(t, addrwatch.Transaction{
			Hash:    "c",
			Inputs:  []addrwatch.Input{{Address: "from", Amount: 7}, {}},
			Outputs: []addrwatch.Output{{Address: "to", Amount: 6}, {}},
		}, tx)
	})
}

func TestBlockResponse_toMixscanBlock(t *testing.T) {
	t.Run("converts every transaction", func(t *testing.T) {
		block, err := BlockResponse{
			Hash:   "blockhash",
			Height: 100,
			Tx: []TransactionResponse{{
				Hash: "t",
				Inputs: []InputResponse{
					{PrevOut: &PrevOutResponse{Addr: "X", Value: 10}},
					{PrevOut: &PrevOutResponse{Addr: "Y", Value: 5}},
				},
				Out: []OutputResponse{{Addr: "Z", Value: 14}, {Addr: "W", Value: 1}},
			}},
		}.toMixscanBlock()
		require.NoError(t, err)

		assert.Equal(t, mixscan.Block{
			Height: 100,
			Hash:   "blockhash",
			Transactions: []mixscan.Transaction{{
				Hash:    "t",
				Inputs:  []mixscan.Party{{Address: "X", Amount: 10}, {Address: "Y", Amount: 5}},
				Outputs: []mixscan.Party{{Address: "Z", Amount: 14}, {Address: "W", Amount: 1}},
			}},
		}, block)
	})

	t.Run("missing tx field is a schema fault", func(t *testing.T) {
		_, err := BlockResponse{Hash: "h"}.toMixscanBlock()
		assert.ErrorIs(t, err, fault.ErrSchema)
	})
}

func TestClient_UnconfirmedTransactions(t *testing.T) {
	t.Run("decodes the unconfirmed feed", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/unconfirmed-transactions", r.URL.Path)
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			w.Write([]byte(`{"txs":[{"hash":"h1","inputs":[{"prev_out":{"addr":"1A1z","value":5}}],"out":[]}]}`))
		})

		txs, err := c.UnconfirmedTransactions(t.Context())
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, "h1", txs[0].Hash)
		assert.Equal(t, "1A1z", txs[0].Inputs[0].Address)
		assert.NotNil(t, txs[0].Outputs)
	})

	t.Run("missing txs is a schema fault", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusOK, `{"transactions":[]}`))

		_, err := c.UnconfirmedTransactions(t.Context())
		assert.ErrorIs(t, err, fault.ErrSchema)
	})

	t.Run("wrongly typed fields are schema faults", func(t *testing.T) {
		for _, body := range []string{
			`{"txs":"x"}`,
			`{"txs":[{"hash":"h","inputs":[{"prev_out":{"addr":5,"value":1}}],"out":[]}]}`,
		} {
			c := newTestClient(t, respond(http.StatusOK, body))

			_, err := c.UnconfirmedTransactions(t.Context())
			assert.ErrorIs(t, err, fault.ErrSchema, body)
		}
	})

	t.Run("empty txs is not a fault", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusOK, `{"txs":[]}`))

		txs, err := c.UnconfirmedTransactions(t.Context())
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("non-JSON body is a parse fault", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusOK, `<html>`))

		_, err := c.UnconfirmedTransactions(t.Context())
		assert.ErrorIs(t, err, fault.ErrParse)
	})

	t.Run("non-2xx status is a response fault", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusInternalServerError, `{"txs":[]}`))

		_, err := c.UnconfirmedTransactions(t.Context())
		assert.ErrorIs(t, err, fault.ErrResponse)
	})
}

func TestClient_AddressTransactions(t *testing.T) {
	t.Run("requests the address page with limit and offset", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rawaddr/1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", r.URL.Path)
			assert.Equal(t, "500", r.URL.Query().Get("limit"))
			assert.Equal(t, "1000", r.URL.Query().Get("offset"))
			w.Write([]byte(`{"txs":[{"hash":"h","inputs":[{"prev_out":{"addr":"a","value":1}}],"out":[{"addr":"b","value":2}]}]}`))
		})

		txs, err := c.AddressTransactions(t.Context(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 500, 1000)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, "b", txs[0].Outputs[0].Address)
	})

	t.Run("omits a zero offset", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("offset"))
			w.Write([]byte(`{"txs":[]}`))
		})

		_, err := c.AddressTransactions(t.Context(), "addr", 10, 0)
		require.NoError(t, err)
	})

	t.Run("keeps absent inputs and outputs nil", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusOK, `{"txs":[{"hash":"h"}]}`))

		txs, err := c.AddressTransactions(t.Context(), "addr", 10, 0)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Nil(t, txs[0].Inputs)
		assert.Nil(t, txs[0].Outputs)
	})
}

func TestClient_BlockByHeight(t *testing.T) {
	t.Run("decodes the block", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rawblock/100", r.URL.Path)
			w.Write([]byte(`{"hash":"bh","height":100,"tx":[{"hash":"t","inputs":[{"prev_out":{"addr":"X","value":10}},{"prev_out":{"addr":"Y","value":5}}],"out":[{"addr":"Z","value":14},{"addr":"W","value":1}]}]}`))
		})

		block, err := c.BlockByHeight(t.Context(), 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), block.Height)
		require.Len(t, block.Transactions, 1)
		assert.True(t, mixscan.IsMixingCandidate(block.Transactions[0]))
	})

	t.Run("not found is a response fault", func(t *testing.T) {
		c := newTestClient(t, respond(http.StatusNotFound, `Block not found`))

		_, err := c.BlockByHeight(t.Context(), 1)
		assert.ErrorIs(t, err, fault.ErrResponse)
	})
}
