package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultShortenChars is the number of hex characters kept on each side by ShortenAddress
const DefaultShortenChars = 4

// GetValidAddress normalizes an EVM address. Surrounding whitespace and a
// missing 0x prefix are tolerated. With withChecksum the EIP-55 form is
// returned and mixed-case input must carry a valid checksum; otherwise the
// lowercase form is returned.
func GetValidAddress(input string, withChecksum bool) (string, bool) {
	s := strings.TrimSpace(input)
	hexPart := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		hexPart = s[2:]
	}
	if len(hexPart) != 2*common.AddressLength || !isHex(hexPart) {
		return "", false
	}

	normalized := "0x" + hexPart
	if !withChecksum {
		return strings.ToLower(normalized), true
	}

	checksummed := common.HexToAddress(normalized).Hex()
	lower, upper := strings.ToLower(hexPart), strings.ToUpper(hexPart)
	if hexPart != lower && hexPart != upper && checksummed[2:] != hexPart {
		return "", false
	}
	return checksummed, true
}

// AreAddressesEqual compares two addresses case-insensitively. Invalid or empty
// addresses are never equal to anything.
func AreAddressesEqual(a, b string) bool {
	validA, okA := GetValidAddress(a, false)
	validB, okB := GetValidAddress(b, false)
	return okA && okB && validA == validB
}

// ShortenAddress renders 0x1234...7890, keeping chars hex digits on each side
func ShortenAddress(address string, chars int) (string, error) {
	if len(address) != 2+2*common.AddressLength {
		return "", fmt.Errorf("%w: invalid 'address' parameter '%s'", ErrInvalidAddress, address)
	}
	if chars < 1 || chars > 19 {
		return "", fmt.Errorf("invalid 'chars' parameter '%d'", chars)
	}
	return address[:chars+2] + "..." + address[len(address)-chars:], nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
