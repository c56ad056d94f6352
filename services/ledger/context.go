// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import "github.com/ledgernet/smoke-ledger-go/types/primitives"

type executionContext struct {
	contract       primitives.ContractName
	transientState *transientState
}

func (s *service) allocateExecutionContext(contract primitives.ContractName) primitives.ExecutionContextId {
	s.contextsMutex.Lock()
	defer s.contextsMutex.Unlock()

	s.lastContextId++
	res := s.lastContextId
	s.activeContexts[res] = &executionContext{
		contract:       contract,
		transientState: newTransientState(),
	}
	return res
}

func (s *service) destroyExecutionContext(contextId primitives.ExecutionContextId) {
	s.contextsMutex.Lock()
	defer s.contextsMutex.Unlock()

	delete(s.activeContexts, contextId)
}

func (s *service) loadExecutionContext(contextId primitives.ExecutionContextId) *executionContext {
	s.contextsMutex.RLock()
	defer s.contextsMutex.RUnlock()

	return s.activeContexts[contextId]
}
