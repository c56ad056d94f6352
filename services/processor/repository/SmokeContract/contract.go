// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package smokecontract

import (
	"github.com/ledgernet/smoke-ledger-go/services/processor/types"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"math"
)

// SmokeContract keeps one uint32 per caller identity. It exists to exercise
// the two contracts every on-ledger program leans on: authorization checked
// before any mutation, and a well-defined default on reads of absent records.

var CONTRACT = types.ContractInfo{
	Name: "SmokeContract",
	Methods: []types.MethodInfo{
		METHOD_BUMP,
		METHOD_WRITE,
		METHOD_READ,
	},
	InitSingleton: newContract,
}

func newContract(base *types.BaseContract) types.Contract {
	return &contract{base}
}

type contract struct{ *types.BaseContract }

///////////////////////////////////////////////////////////////////////////

var METHOD_BUMP = types.MethodInfo{
	Name:           "bump",
	External:       true,
	RequiresAuth:   false,
	Implementation: (*contract).bump,
}

// no identity, no state; overflow saturates rather than wrapping or failing
func (c *contract) bump(ctx types.Context, n uint32) (uint32, error) {
	if n == math.MaxUint32 {
		return n, nil
	}
	return n + 1, nil
}

///////////////////////////////////////////////////////////////////////////

var METHOD_WRITE = types.MethodInfo{
	Name:           "write",
	External:       true,
	RequiresAuth:   true,
	Implementation: (*contract).write,
}

// overwrites unconditionally, last write wins
func (c *contract) write(ctx types.Context, addr []byte, value uint32) error {
	return c.State.WriteUint32ByAddress(ctx, primitives.CallerAddress(addr), value)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_READ = types.MethodInfo{
	Name:           "read",
	External:       true,
	RequiresAuth:   false,
	Implementation: (*contract).read,
}

func (c *contract) read(ctx types.Context, addr []byte) (uint32, error) {
	value, found, err := c.State.ReadUint32ByAddress(ctx, primitives.CallerAddress(addr))
	if err != nil {
		return 0, err
	}
	if !found {
		// absence of a record is a valid state observed as the literal zero
		return 0, nil
	}
	return value, nil
}
