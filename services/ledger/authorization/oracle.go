// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package authorization

import (
	"github.com/ledgernet/smoke-ledger-go/crypto/digest"
	"github.com/ledgernet/smoke-ledger-go/crypto/signature"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
)

// Oracle decides whether an invocation carries valid proof that the claimed
// caller authorized it. The ledger depends on this interface only, never on a
// concrete signature scheme, so tests can substitute their own.
type Oracle interface {
	Verifies(addr primitives.CallerAddress, invocation *protocol.Invocation) bool
}

type ed25519Oracle struct {
}

func NewEd25519Oracle() Oracle {
	return &ed25519Oracle{}
}

// The proof is an ed25519 signature over the invocation hash, which covers
// the method name and every argument. The signer's derived address must match
// the claimed caller.
func (o *ed25519Oracle) Verifies(addr primitives.CallerAddress, invocation *protocol.Invocation) bool {
	if !invocation.IsSigned() {
		return false
	}

	signerAddress, err := digest.CalcCallerAddressOfEd25519PublicKey(invocation.SignerPublicKey)
	if err != nil {
		return false
	}
	if !signerAddress.Equal(addr) {
		return false
	}

	invocationHash := digest.CalcInvocationHash(invocation)
	return signature.VerifyEd25519(invocation.SignerPublicKey, invocationHash, invocation.Signature)
}
