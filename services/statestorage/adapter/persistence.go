// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
)

// ContractState is the full persisted image of one contract's namespace.
type ContractState map[string][]byte

type InstanceState map[primitives.ContractName]ContractState

// StatePersistence is the durable key-value region backing contract state.
// Read reports absence explicitly; mapping absent records to a default value
// is the contract's business, not the store's.
type StatePersistence interface {
	Write(diff InstanceState) error
	Read(contract primitives.ContractName, key string) ([]byte, bool, error)
}
