// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package processor

import (
	"fmt"
	"github.com/ledgernet/smoke-ledger-go/instrumentation/metric"
	"github.com/ledgernet/smoke-ledger-go/services/processor/repository"
	"github.com/ledgernet/smoke-ledger-go/services/processor/types"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("processor")

// Processor executes prebuilt contract methods. The state SDK handler is
// registered once on system initialization (by the ledger constructor),
// before any call is processed.
type Processor interface {
	RegisterStateSdkHandler(handler types.StateSdk)
	MethodInfo(contractName primitives.ContractName, methodName string) (*types.MethodInfo, error)
	ProcessCall(executionContextId primitives.ExecutionContextId, contractName primitives.ContractName, methodName string, args []*protocol.Argument) ([]*protocol.Argument, error)
}

type contractInstance struct {
	info      types.ContractInfo
	singleton types.Contract
}

type service struct {
	logger    log.Logger
	instances map[primitives.ContractName]*contractInstance

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		processCallTime: m.NewLatency("Processor.ProcessCallTime.Millis", 10*time.Second),
	}
}

func NewProcessor(parentLogger log.Logger, metricFactory metric.Factory) Processor {
	return &service{
		logger:  parentLogger.WithTags(LogTag),
		metrics: getMetrics(metricFactory),
	}
}

func (s *service) RegisterStateSdkHandler(handler types.StateSdk) {
	base := types.NewBaseContract(handler)
	s.instances = make(map[primitives.ContractName]*contractInstance)
	for contractName, contractInfo := range repository.Contracts {
		s.instances[contractName] = &contractInstance{
			info:      contractInfo,
			singleton: contractInfo.InitSingleton(base),
		}
	}
}

func (s *service) MethodInfo(contractName primitives.ContractName, methodName string) (*types.MethodInfo, error) {
	instance, found := s.instances[contractName]
	if !found {
		return nil, errors.Errorf("contract instance not found for contract '%s'", contractName)
	}
	methodInfo, found := instance.info.MethodInfo(methodName)
	if !found {
		return nil, errors.Errorf("method '%s' not found on contract '%s'", methodName, contractName)
	}
	return methodInfo, nil
}

func (s *service) ProcessCall(executionContextId primitives.ExecutionContextId, contractName primitives.ContractName, methodName string, args []*protocol.Argument) ([]*protocol.Argument, error) {
	instance, found := s.instances[contractName]
	if !found {
		return nil, errors.Errorf("contract instance not found for contract '%s'", contractName)
	}
	methodInfo, found := instance.info.MethodInfo(methodName)
	if !found {
		return nil, errors.Errorf("method '%s' not found on contract '%s'", methodName, contractName)
	}
	if !methodInfo.External {
		return nil, errors.Errorf("method '%s' on contract '%s' is not callable externally", methodName, contractName)
	}

	start := time.Now()
	defer s.metrics.processCallTime.RecordSince(start)

	s.logger.Info("processor executing contract", log.Stringable("contract", contractName), log.String("method", methodName))

	functionNameForErrors := fmt.Sprintf("%s.%s", contractName, methodName)
	outputArgs, contractErr, err := s.processMethodCall(executionContextId, instance, methodInfo, args, functionNameForErrors)
	if err != nil {
		s.logger.Info("contract execution failed", log.Stringable("contract", contractName), log.String("method", methodName), log.Error(err))
		return nil, err
	}
	if contractErr != nil {
		s.logger.Info("contract returned error", log.Stringable("contract", contractName), log.String("method", methodName), log.Error(contractErr))
		return nil, contractErr
	}
	return outputArgs, nil
}
