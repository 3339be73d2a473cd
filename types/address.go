package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// AddressLength is the size in bytes of an Address.
const AddressLength = 20

// ErrBadAddressLength is returned when decoding a hex string of the wrong size.
var ErrBadAddressLength = errors.New("types: address must decode to 20 bytes")

// Address identifies a participant in the trust network. It is opaque,
// totally ordered and comparable, so it can be used directly as a map key
// and sorted for deterministic traversal.
type Address [AddressLength]byte

// ParseAddress decodes a "0x"-prefixed or bare hex string into an Address.
func ParseAddress(s string) (Address, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, err
	}
	if len(raw) != AddressLength {
		return Address{}, ErrBadAddressLength
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}

// String renders the address as a "0x"-prefixed lowercase hex string.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Short renders a truncated form suitable for logs and DOT labels.
func (a Address) Short() string {
	s := a.String()
	if len(s) <= 10 {
		return s
	}
	return s[:6] + ".." + s[len(s)-4:]
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// Less reports whether a sorts strictly before b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

// MarshalJSON renders the address as its "0x"-prefixed hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses the "0x"-prefixed hex string produced by MarshalJSON.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("types: address must be a hex string: %w", err)
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Token identifies the issuer of a unit of value; every token is named by
// its issuer's Address.
type Token = Address
