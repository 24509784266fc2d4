package tx

import (
	"encoding/hex"
	"math/big"
	"strings"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// ParseNumeric parses a tolerant numeric string: decimal ("500") or
// 0x-prefixed hex ("0x5"). Used for value fields from request params and
// review patches.
func ParseNumeric(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, signeterr.WithDetails(signeterr.ErrInvalidValue, map[string]string{
			"value": s,
		})
	}

	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = n.SetString(s[2:], 16)
	} else {
		_, ok = n.SetString(s, 10)
	}
	if !ok {
		return nil, signeterr.WithDetails(signeterr.ErrInvalidValue, map[string]string{
			"value": s,
		})
	}

	return n, nil
}

// ParseHexBytes parses a hex byte string, with or without 0x prefix.
func ParseHexBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return []byte{}, nil
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, signeterr.WithDetails(signeterr.ErrInvalidData, map[string]string{
			"data": s,
		})
	}
	return b, nil
}
