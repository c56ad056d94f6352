// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"github.com/ledgernet/smoke-ledger-go/services/statestorage/adapter"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
)

// transientState buffers an invocation's state access. Reads from persistence
// are cached clean; contract writes are marked dirty and only dirty pairs are
// committed, so a discarded invocation leaves persistence untouched.

type keyValuePair struct {
	key     string
	value   []byte
	isDirty bool
}

type transientContractState struct {
	pairs map[string]*keyValuePair
}

type transientState struct {
	contracts map[primitives.ContractName]*transientContractState
}

func newTransientState() *transientState {
	return &transientState{contracts: make(map[primitives.ContractName]*transientContractState)}
}

func (t *transientState) getValue(contract primitives.ContractName, key string) ([]byte, bool) {
	contractState, found := t.contracts[contract]
	if !found {
		return nil, false
	}
	pair, found := contractState.pairs[key]
	if !found {
		return nil, false
	}
	return pair.value, true
}

func (t *transientState) setValue(contract primitives.ContractName, key string, value []byte, isDirty bool) {
	contractState, found := t.contracts[contract]
	if !found {
		contractState = &transientContractState{pairs: make(map[string]*keyValuePair)}
		t.contracts[contract] = contractState
	}
	contractState.pairs[key] = &keyValuePair{key, value, isDirty}
}

func (t *transientState) forDirty(contract primitives.ContractName, f func(key string, value []byte)) {
	contractState, found := t.contracts[contract]
	if !found {
		return
	}
	for _, pair := range contractState.pairs {
		if pair.isDirty {
			f(pair.key, pair.value)
		}
	}
}

func (t *transientState) commitTo(persistence adapter.StatePersistence) error {
	diff := adapter.InstanceState{}
	for contract := range t.contracts {
		t.forDirty(contract, func(key string, value []byte) {
			if _, found := diff[contract]; !found {
				diff[contract] = adapter.ContractState{}
			}
			diff[contract][key] = value
		})
	}
	if len(diff) == 0 {
		return nil
	}
	return persistence.Write(diff)
}
