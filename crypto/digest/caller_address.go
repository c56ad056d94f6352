// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/ledgernet/smoke-ledger-go/crypto/hash"
	"github.com/ledgernet/smoke-ledger-go/crypto/keys"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/pkg/errors"
)

const (
	CALLER_ADDRESS_SIZE_BYTES    = 20
	CALLER_ADDRESS_SHA256_OFFSET = hash.SHA256_HASH_SIZE_BYTES - CALLER_ADDRESS_SIZE_BYTES
)

// CalcCallerAddressOfEd25519PublicKey derives the opaque on-ledger identity of
// an ed25519 signer: the low 20 bytes of the public key's sha256.
func CalcCallerAddressOfEd25519PublicKey(publicKey primitives.Ed25519PublicKey) (primitives.CallerAddress, error) {
	if len(publicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.New("public key invalid for caller address derivation")
	}
	res := hash.CalcSha256(publicKey)[CALLER_ADDRESS_SHA256_OFFSET:]
	return primitives.CallerAddress(res), nil
}
