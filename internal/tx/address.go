package tx

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// ParseAddress parses a 0x-prefixed Ethereum address. Mixed-case input
// must carry a valid EIP-55 checksum; all-lower or all-upper input is
// accepted without one.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, signeterr.WithDetails(signeterr.ErrInvalidAddress, map[string]string{
			"address": s,
		})
	}

	hexPart := strings.TrimPrefix(s, "0x")
	if isMixedCase(hexPart) && ChecksumAddress(s) != "0x"+hexPart {
		return common.Address{}, signeterr.WithSuggestion(
			signeterr.WithDetails(signeterr.ErrInvalidAddress, map[string]string{
				"address": s,
			}),
			"address checksum mismatch; re-copy the address or use all lowercase",
		)
	}

	return common.HexToAddress(s), nil
}

// ChecksumAddress converts an address string to EIP-55 checksum format.
func ChecksumAddress(address string) string {
	addr := strings.ToLower(strings.TrimPrefix(address, "0x"))
	if len(addr) != common.AddressLength*2 {
		return address
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(addr))
	hash := hasher.Sum(nil)

	result := make([]byte, len(addr)+2)
	result[0] = '0'
	result[1] = 'x'

	for i := 0; i < len(addr); i++ {
		c := addr[i]
		// Uppercase the hex digit when the corresponding hash nibble >= 8
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 && c >= 'a' && c <= 'f' {
			c -= 32
		}
		result[i+2] = c
	}

	return string(result)
}

// isMixedCase reports whether a hex string contains both upper and lower
// case letters.
func isMixedCase(s string) bool {
	var hasUpper, hasLower bool
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'F':
			hasUpper = true
		case c >= 'a' && c <= 'f':
			hasLower = true
		}
	}
	return hasUpper && hasLower
}
