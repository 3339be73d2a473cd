// Package types defines the data shared across the flow engine and its
// surrounding collaborators: Address, Token, Amount, Edge and Transfer.
//
// Amount wraps github.com/holiman/uint256 so that participant balances and
// trust limits can hold ledger-scale (256-bit) values without overflow.
// Address is a fixed 20-byte identifier, totally ordered so every package
// downstream (layered, engine) can produce deterministic output regardless
// of map iteration order.
package types
