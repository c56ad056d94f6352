// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"encoding/binary"
	"github.com/ledgernet/smoke-ledger-go/crypto/hash"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
)

// CalcInvocationHash digests the method name together with every argument in
// canonical encoding. An authorization proof signs this hash, binding the
// proof to one exact invocation; a signature captured for different arguments
// will not replay.
func CalcInvocationHash(invocation *protocol.Invocation) primitives.Sha256 {
	chunks := make([][]byte, 0, len(invocation.Arguments)*2+1)
	chunks = append(chunks, []byte(invocation.MethodName))
	for _, arg := range invocation.Arguments {
		raw := arg.Raw()
		lenBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(raw)))
		chunks = append(chunks, lenBuf, raw)
	}
	return hash.CalcSha256(chunks...)
}
