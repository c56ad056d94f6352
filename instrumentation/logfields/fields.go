// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/orbs-network/scribe/log"
)

func Caller(addr primitives.CallerAddress) *log.Field {
	return log.Stringable("caller", addr)
}

func Method(name string) *log.Field {
	return log.String("method", name)
}

func InvocationHash(hash primitives.Sha256) *log.Field {
	return log.Stringable("invocationHash", hash)
}
