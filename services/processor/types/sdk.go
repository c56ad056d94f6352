package types

import "github.com/ledgernet/smoke-ledger-go/types/primitives"

type StateSdk interface {
	// read reports absence explicitly so the contract decides the default
	ReadUint32ByAddress(ctx Context, address primitives.CallerAddress) (uint32, bool, error)

	// write
	WriteUint32ByAddress(ctx Context, address primitives.CallerAddress, value uint32) error
}
