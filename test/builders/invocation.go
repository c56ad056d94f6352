// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/ledgernet/smoke-ledger-go/crypto/digest"
	"github.com/ledgernet/smoke-ledger-go/crypto/keys"
	"github.com/ledgernet/smoke-ledger-go/crypto/signature"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
)

// Invocation test builder, see also CallerAddressOf for deriving the identity
// of a signing key pair.

type invocation struct {
	methodName string
	arguments  []*protocol.Argument
	signer     *keys.Ed25519KeyPair
}

func Invocation() *invocation {
	return &invocation{}
}

func (i *invocation) WithMethod(methodName string) *invocation {
	i.methodName = methodName
	return i
}

func (i *invocation) WithArgs(arguments ...*protocol.Argument) *invocation {
	i.arguments = arguments
	return i
}

func (i *invocation) SignedBy(signer *keys.Ed25519KeyPair) *invocation {
	i.signer = signer
	return i
}

func (i *invocation) Build() *protocol.Invocation {
	res := &protocol.Invocation{
		MethodName: i.methodName,
		Arguments:  i.arguments,
	}
	if i.signer != nil {
		sig, err := signature.SignEd25519(i.signer.PrivateKey(), digest.CalcInvocationHash(res))
		if err != nil {
			panic(err)
		}
		res.SignerPublicKey = i.signer.PublicKey()
		res.Signature = sig
	}
	return res
}

func CallerAddressOf(keyPair *keys.Ed25519KeyPair) primitives.CallerAddress {
	addr, err := digest.CalcCallerAddressOfEd25519PublicKey(keyPair.PublicKey())
	if err != nil {
		panic(err)
	}
	return addr
}

// WriteInvocation builds a correctly signed write by the given key pair.
func WriteInvocation(signer *keys.Ed25519KeyPair, value uint32) *protocol.Invocation {
	return Invocation().
		WithMethod("write").
		WithArgs(protocol.BytesArgument(CallerAddressOf(signer)), protocol.Uint32Argument(value)).
		SignedBy(signer).
		Build()
}

// ReadInvocation builds an unsigned read of the given caller's record.
func ReadInvocation(addr primitives.CallerAddress) *protocol.Invocation {
	return Invocation().
		WithMethod("read").
		WithArgs(protocol.BytesArgument(addr)).
		Build()
}

// BumpInvocation builds the pure arithmetic call, no identity involved.
func BumpInvocation(n uint32) *protocol.Invocation {
	return Invocation().
		WithMethod("bump").
		WithArgs(protocol.Uint32Argument(n)).
		Build()
}
