package tx

import (
	"encoding/json"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// RawParams is the tolerant parameter object accepted at intake.
// All fields are optional strings; numeric fields may be decimal or hex.
type RawParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// ParseRawParams decodes a raw parameter blob. A single-element array
// wrapping the object is accepted: some callers still send the legacy
// eth_sendTransaction params shape.
func ParseRawParams(raw json.RawMessage) (*RawParams, error) {
	trimmed := trimLeadingSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil || len(arr) == 0 {
			return nil, signeterr.WithSuggestion(
				signeterr.ErrInvalidInput,
				"transaction params must be an object or a single-element array",
			)
		}
		raw = arr[0]
	}

	params := &RawParams{}
	if err := json.Unmarshal(raw, params); err != nil {
		return nil, signeterr.Wrap(signeterr.ErrInvalidInput, "parsing transaction params")
	}

	return params, nil
}

func trimLeadingSpace(b []byte) []byte {
	for len(b) > 0 {
		switch b[0] {
		case ' ', '\t', '\n', '\r':
			b = b[1:]
		default:
			return b
		}
	}
	return b
}
