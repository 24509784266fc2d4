// Package tx models the chain-agnostic mutable transaction draft that an
// orchestration owns from intake until signing.
package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mrz1836/signet/internal/chain/rpc"
)

// Request is a mutable transaction draft. It is owned exclusively by one
// orchestration for the duration of a send and consumed exactly once by
// the final sign/broadcast call.
type Request struct {
	From     common.Address
	To       *common.Address
	Value    *big.Int
	Data     []byte
	Gas      uint64
	Nonce    *uint64
	GasPrice *big.Int
}

// CallMsg converts the draft into an RPC call message for gas estimation
// and simulation.
func (r *Request) CallMsg() rpc.CallMsg {
	msg := rpc.CallMsg{
		From:  r.From.Hex(),
		Gas:   r.Gas,
		Value: r.Value,
		Data:  r.Data,
	}
	if r.To != nil {
		msg.To = r.To.Hex()
	}
	return msg
}

// MarshalJSON serializes the draft for the review channel payload.
// Numbers are 0x-hex strings, matching the wire shape reviewers expect.
func (r *Request) MarshalJSON() ([]byte, error) {
	out := map[string]string{
		"from": r.From.Hex(),
	}
	if r.To != nil {
		out["to"] = r.To.Hex()
	}
	if r.Value != nil {
		out["value"] = "0x" + r.Value.Text(16)
	}
	if len(r.Data) > 0 {
		out["data"] = "0x" + hex.EncodeToString(r.Data)
	}
	if r.Gas > 0 {
		out["gas"] = fmt.Sprintf("0x%x", r.Gas)
	}
	return json.Marshal(out)
}

// Patch is a partial edit produced by a reviewer. Only the fields the
// reviewer actually sent are applied.
type Patch struct {
	Data  *string `json:"data"`
	Value *string `json:"value"`
}

// ApplyPatch applies a reviewer edit to the draft. Recognized fields:
// data (hex byte string) and value (decimal or hex numeric string).
func (r *Request) ApplyPatch(raw json.RawMessage) error {
	var p Patch
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("parsing patch: %w", err)
	}

	// Parse everything before mutating so a bad field leaves the draft
	// untouched.
	var data []byte
	var value *big.Int
	var err error

	if p.Data != nil {
		if data, err = ParseHexBytes(*p.Data); err != nil {
			return err
		}
	}
	if p.Value != nil {
		if value, err = ParseNumeric(*p.Value); err != nil {
			return err
		}
	}

	if p.Data != nil {
		r.Data = data
	}
	if p.Value != nil {
		r.Value = value
	}

	return nil
}
