package tx

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

func TestParseNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "decimal", input: "500", expected: 500},
		{name: "hex", input: "0x5", expected: 5},
		{name: "hex uppercase prefix", input: "0X1f", expected: 31},
		{name: "with whitespace", input: " 42 ", expected: 42},
		{name: "zero", input: "0", expected: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "five", wantErr: true},
		{name: "bare 0x", input: "0x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := ParseNumeric(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, signeterr.Is(err, signeterr.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Int64())
		})
	}
}

func TestParseHexBytes(t *testing.T) {
	t.Parallel()

	b, err := ParseHexBytes("0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	b, err = ParseHexBytes("00ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, b)

	b, err = ParseHexBytes("0x")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = ParseHexBytes("0xzz")
	require.Error(t, err)
	assert.True(t, signeterr.Is(err, signeterr.ErrInvalidData))
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	// Known EIP-55 vector
	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	addr, err := ParseAddress(checksummed)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(checksummed), addr)

	// Lowercase always accepted
	_, err = ParseAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)

	// Mixed case with broken checksum rejected
	_, err = ParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD")
	require.Error(t, err)
	assert.True(t, signeterr.Is(err, signeterr.ErrInvalidAddress))

	// Not an address at all
	_, err = ParseAddress("bob.eth")
	require.Error(t, err)
	assert.True(t, signeterr.Is(err, signeterr.ErrInvalidAddress))
}

func TestChecksumAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		},
		{
			input:    "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
			expected: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ChecksumAddress(tt.input))
		})
	}
}

func TestParseRawParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    RawParams
		wantErr bool
	}{
		{
			name:  "plain object",
			input: `{"from":"0xaa","to":"0xbb","value":"0x5","data":"0x00"}`,
			want:  RawParams{From: "0xaa", To: "0xbb", Value: "0x5", Data: "0x00"},
		},
		{
			name:  "array wrapped",
			input: ` [{"from":"0xaa","value":"12"}]`,
			want:  RawParams{From: "0xaa", Value: "12"},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  RawParams{},
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantErr: true,
		},
		{
			name:    "not json",
			input:   `to=0xbb`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRawParams(json.RawMessage(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestRequestMarshalJSON(t *testing.T) {
	t.Parallel()

	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	req := &Request{
		From:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		To:    &to,
		Value: big.NewInt(5),
		Data:  []byte{0xde, 0xad},
		Gas:   120000,
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "0x5", m["value"])
	assert.Equal(t, "0xdead", m["data"])
	assert.Equal(t, "0x1d4c0", m["gas"])
	assert.Equal(t, to.Hex(), m["to"])
}

func TestRequestMarshalJSONOmitsEmpty(t *testing.T) {
	t.Parallel()

	req := &Request{From: common.HexToAddress("0x1111111111111111111111111111111111111111")}
	data, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "to")
	assert.NotContains(t, m, "value")
	assert.NotContains(t, m, "data")
	assert.NotContains(t, m, "gas")
}

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	req := &Request{Value: big.NewInt(1)}

	require.NoError(t, req.ApplyPatch(json.RawMessage(`{"value":"0x10","data":"0xcafe"}`)))
	assert.Equal(t, big.NewInt(16), req.Value)
	assert.Equal(t, []byte{0xca, 0xfe}, req.Data)

	// Partial patch leaves other fields alone
	require.NoError(t, req.ApplyPatch(json.RawMessage(`{"value":"42"}`)))
	assert.Equal(t, big.NewInt(42), req.Value)
	assert.Equal(t, []byte{0xca, 0xfe}, req.Data)

	// Unknown fields are ignored
	require.NoError(t, req.ApplyPatch(json.RawMessage(`{"event":"update"}`)))
	assert.Equal(t, big.NewInt(42), req.Value)
}

func TestApplyPatchInvalid(t *testing.T) {
	t.Parallel()

	req := &Request{Value: big.NewInt(1)}

	require.Error(t, req.ApplyPatch(json.RawMessage(`{"value":"not-a-number"}`)))
	require.Error(t, req.ApplyPatch(json.RawMessage(`{"data":"0xzz"}`)))

	// Failed patches must not partially mutate the draft
	assert.Equal(t, big.NewInt(1), req.Value)
	assert.Nil(t, req.Data)
}

func TestCallMsg(t *testing.T) {
	t.Parallel()

	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	req := &Request{
		From:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		To:    &to,
		Value: big.NewInt(7),
		Gas:   21000,
	}

	msg := req.CallMsg()
	assert.Equal(t, req.From.Hex(), msg.From)
	assert.Equal(t, to.Hex(), msg.To)
	assert.Equal(t, uint64(21000), msg.Gas)
	assert.Equal(t, big.NewInt(7), msg.Value)

	// Contract creation: no to field
	req.To = nil
	assert.Empty(t, req.CallMsg().To)
}
