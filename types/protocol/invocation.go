// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/binary"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
)

type ArgumentType uint16

const (
	ARGUMENT_TYPE_UINT_32_VALUE ArgumentType = iota
	ARGUMENT_TYPE_BYTES_VALUE
)

// Argument is one typed value in an invocation's argument list. Wire
// serialization of arguments is owned by the host environment; inside the
// instance they travel as this in-memory union.
type Argument struct {
	Type        ArgumentType
	Uint32Value uint32
	BytesValue  []byte
}

func Uint32Argument(value uint32) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: value}
}

func BytesArgument(value []byte) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value}
}

func (a *Argument) IsTypeUint32Value() bool {
	return a.Type == ARGUMENT_TYPE_UINT_32_VALUE
}

func (a *Argument) IsTypeBytesValue() bool {
	return a.Type == ARGUMENT_TYPE_BYTES_VALUE
}

func (a *Argument) StringType() string {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return "uint32"
	case ARGUMENT_TYPE_BYTES_VALUE:
		return "bytes"
	}
	return "unknown"
}

// Raw returns the argument in its canonical encoding, the form covered by the
// invocation hash. Uint32 values encode little-endian over 4 bytes.
func (a *Argument) Raw() []byte {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, a.Uint32Value)
		return buf
	case ARGUMENT_TYPE_BYTES_VALUE:
		return a.BytesValue
	}
	return nil
}

// Invocation is one call into the instance: a method on the smoke contract
// plus its argument list. Methods that require authorization carry the
// signer's public key and an ed25519 signature over the invocation hash.
type Invocation struct {
	MethodName string
	Arguments  []*Argument

	SignerPublicKey primitives.Ed25519PublicKey
	Signature       primitives.Ed25519Sig
}

func (i *Invocation) IsSigned() bool {
	return len(i.SignerPublicKey) != 0 || len(i.Signature) != 0
}
