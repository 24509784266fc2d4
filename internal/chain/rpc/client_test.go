package rpc

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode returns an httptest server that answers JSON-RPC calls using
// the supplied method handlers.
func fakeNode(t *testing.T, handlers map[string]func(params []json.RawMessage) (any, *Error)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
			ID     uint64            `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		handler, ok := handlers[req.Method]
		require.True(t, ok, "unexpected method %s", req.Method)

		result, rpcErr := handler(req.Params)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChainID(t *testing.T) {
	t.Parallel()

	srv := fakeNode(t, map[string]func([]json.RawMessage) (any, *Error){
		"eth_chainId": func([]json.RawMessage) (any, *Error) { return "0x7a69", nil },
	})

	client := NewClient(srv.URL)
	id, err := client.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(31337), id)
}

func TestEstimateGas(t *testing.T) {
	t.Parallel()

	srv := fakeNode(t, map[string]func([]json.RawMessage) (any, *Error){
		"eth_estimateGas": func(params []json.RawMessage) (any, *Error) {
			var msg map[string]string
			require.NoError(t, json.Unmarshal(params[0], &msg))
			assert.Equal(t, "0x5", msg["value"])
			return "0x186a0", nil
		},
	})

	client := NewClient(srv.URL)
	gas, err := client.EstimateGas(context.Background(), CallMsg{
		From:  "0x1111111111111111111111111111111111111111",
		To:    "0x2222222222222222222222222222222222222222",
		Value: big.NewInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), gas)
}

func TestEstimateGasNodeError(t *testing.T) {
	t.Parallel()

	srv := fakeNode(t, map[string]func([]json.RawMessage) (any, *Error){
		"eth_estimateGas": func([]json.RawMessage) (any, *Error) {
			return nil, &Error{Code: -32000, Message: "execution reverted"}
		},
	})

	client := NewClient(srv.URL)
	_, err := client.EstimateGas(context.Background(), CallMsg{To: "0x22"})
	require.Error(t, err)

	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
}

func TestGetTransactionCountDefaultsToPending(t *testing.T) {
	t.Parallel()

	srv := fakeNode(t, map[string]func([]json.RawMessage) (any, *Error){
		"eth_getTransactionCount": func(params []json.RawMessage) (any, *Error) {
			var block string
			require.NoError(t, json.Unmarshal(params[1], &block))
			assert.Equal(t, "pending", block)
			return "0x2a", nil
		},
	})

	client := NewClient(srv.URL)
	nonce, err := client.GetTransactionCount(context.Background(), "0x1111111111111111111111111111111111111111", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), nonce)
}

func TestSendRawTransaction(t *testing.T) {
	t.Parallel()

	const wantHash = "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"

	srv := fakeNode(t, map[string]func([]json.RawMessage) (any, *Error){
		"eth_sendRawTransaction": func(params []json.RawMessage) (any, *Error) {
			var raw string
			require.NoError(t, json.Unmarshal(params[0], &raw))
			assert.Equal(t, "0x01020304", raw)
			return wantHash, nil
		},
	})

	client := NewClient(srv.URL)
	hash, err := client.SendRawTransaction(context.Background(), []byte{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, wantHash, hash)
}

func TestCallTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // force connection errors

	client := NewClient(srv.URL)
	_, err := client.Call(context.Background(), "eth_gasPrice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRPCRequest)
}

func TestCallMsgMarshalOmitsEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(CallMsg{To: "0x2222222222222222222222222222222222222222"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "gas")
	assert.NotContains(t, m, "value")
	assert.NotContains(t, m, "data")
	assert.NotContains(t, m, "from")
}

func TestParseHexBigInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "with prefix", input: "0x10", expected: 16},
		{name: "without prefix", input: "ff", expected: 255},
		{name: "empty is zero", input: "", expected: 0},
		{name: "garbage", input: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := parseHexBigInt(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Int64())
		})
	}
}
