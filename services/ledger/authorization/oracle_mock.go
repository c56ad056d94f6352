// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package authorization

import (
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/orbs-network/go-mock"
)

type OracleMock struct {
	mock.Mock
}

func (o *OracleMock) Verifies(addr primitives.CallerAddress, invocation *protocol.Invocation) bool {
	return o.Called(addr, invocation).Bool(0)
}

func (o *OracleMock) WhenVerifies(result bool) *OracleMock {
	o.When("Verifies", mock.Any, mock.Any).Return(result)
	return o
}
