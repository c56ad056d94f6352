// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"bytes"
	"encoding/hex"
)

// CallerAddress is the opaque identifier of a principal able to authorize
// invocations. It is minted outside this program (derived from a signer's
// public key) and only ever received as a call argument.
type CallerAddress []byte

func (a CallerAddress) Equal(other CallerAddress) bool {
	return bytes.Equal(a, other)
}

func (a CallerAddress) KeyForMap() string {
	return string(a)
}

func (a CallerAddress) String() string {
	return hex.EncodeToString(a)
}

type Ed25519PublicKey []byte

func (k Ed25519PublicKey) Equal(other Ed25519PublicKey) bool {
	return bytes.Equal(k, other)
}

func (k Ed25519PublicKey) String() string {
	return hex.EncodeToString(k)
}

type Ed25519PrivateKey []byte

func (k Ed25519PrivateKey) Equal(other Ed25519PrivateKey) bool {
	return bytes.Equal(k, other)
}

func (k Ed25519PrivateKey) String() string {
	return hex.EncodeToString(k)
}

type Ed25519Sig []byte

func (s Ed25519Sig) Equal(other Ed25519Sig) bool {
	return bytes.Equal(s, other)
}

func (s Ed25519Sig) String() string {
	return hex.EncodeToString(s)
}

type Sha256 []byte

func (h Sha256) Equal(other Sha256) bool {
	return bytes.Equal(h, other)
}

func (h Sha256) String() string {
	return hex.EncodeToString(h)
}

// ExecutionContextId routes state SDK calls back to the invocation they
// belong to. Allocated per invocation, never reused within an instance run.
type ExecutionContextId uint64

// ContractName scopes state records in persistence; every contract owns a
// private namespace not addressable by other contracts.
type ContractName string

func (c ContractName) KeyForMap() string {
	return string(c)
}

func (c ContractName) String() string {
	return string(c)
}
