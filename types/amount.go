package types

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// Amount is a non-negative 256-bit integer, the unit in which balances,
// capacities and transfers are denominated. The zero value is zero.
type Amount struct {
	v uint256.Int
}

// NewAmount builds an Amount from a uint64.
func NewAmount(x uint64) Amount {
	var a Amount
	a.v.SetUint64(x)
	return a
}

// AmountFromDecimal parses a base-10 string into an Amount.
func AmountFromDecimal(s string) (Amount, error) {
	var a Amount
	if err := a.v.SetFromDecimal(s); err != nil {
		return Amount{}, err
	}
	return a, nil
}

// AmountMax returns the largest representable Amount (all bits set). It is
// the BFS bottleneck sentinel (every real edge capacity is strictly
// smaller, so the first min() along any augmenting path always replaces
// it) and the requestedFlow value meaning "no target" in ComputeFlow.
func AmountMax() Amount {
	var a Amount
	a.v.SetAllOne()
	return a
}

// Add returns a+b. Amounts never appear large enough in this engine to
// wrap 2^256 (capacities are bounded by real ledger balances), so overflow
// is not checked on the hot path.
func (a Amount) Add(b Amount) Amount {
	var r Amount
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a-b. The caller must ensure a >= b; every call site in this
// module guarantees that beforehand (by a Cmp check, a Min, or how the
// operands were built), so an underflow here means an invariant was already
// violated upstream.
func (a Amount) Sub(b Amount) Amount {
	var r Amount
	_, underflow := r.v.SubOverflow(&a.v, &b.v)
	if underflow {
		panic("types: Amount.Sub underflow on precondition a >= b")
	}
	return r
}

// Cmp returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Min returns the smaller of a and b.
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// String renders the amount in decimal.
func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON renders the amount as a decimal JSON string, since a raw
// JSON number cannot hold 256-bit precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v.Dec())
}

// UnmarshalJSON parses a decimal JSON string produced by MarshalJSON.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("types: amount must be a decimal string: %w", err)
	}
	parsed, err := AmountFromDecimal(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
