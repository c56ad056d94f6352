// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"encoding/binary"
	"github.com/ledgernet/smoke-ledger-go/services/processor/types"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/pkg/errors"
)

const uint32RecordSizeBytes = 4

// The ledger is the processor's state SDK handler: contract state access is
// routed here through the execution context, reads falling through the
// transient state to persistence and writes staying transient until commit.

func (s *service) ReadUint32ByAddress(ctx types.Context, address primitives.CallerAddress) (uint32, bool, error) {
	executionContext := s.loadExecutionContext(primitives.ExecutionContextId(ctx))
	if executionContext == nil {
		return 0, false, errors.Errorf("execution context %d not found", uint64(ctx))
	}

	key := address.KeyForMap()
	if value, found := executionContext.transientState.getValue(executionContext.contract, key); found {
		return decodeUint32Record(value)
	}

	value, found, err := s.persistence.Read(executionContext.contract, key)
	if err != nil {
		return 0, false, errors.Wrapf(err, "persistence read failed for address %s", address)
	}
	if !found {
		return 0, false, nil
	}

	executionContext.transientState.setValue(executionContext.contract, key, value, false)
	return decodeUint32Record(value)
}

func (s *service) WriteUint32ByAddress(ctx types.Context, address primitives.CallerAddress, value uint32) error {
	executionContext := s.loadExecutionContext(primitives.ExecutionContextId(ctx))
	if executionContext == nil {
		return errors.Errorf("execution context %d not found", uint64(ctx))
	}

	executionContext.transientState.setValue(executionContext.contract, address.KeyForMap(), encodeUint32Record(value), true)
	return nil
}

func encodeUint32Record(value uint32) []byte {
	buf := make([]byte, uint32RecordSizeBytes)
	binary.LittleEndian.PutUint32(buf, value)
	return buf
}

func decodeUint32Record(record []byte) (uint32, bool, error) {
	if len(record) != uint32RecordSizeBytes {
		return 0, false, errors.Errorf("state record has size %d, expected %d", len(record), uint32RecordSizeBytes)
	}
	return binary.LittleEndian.Uint32(record), true, nil
}
