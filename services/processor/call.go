// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package processor

import (
	"github.com/ledgernet/smoke-ledger-go/services/processor/types"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/pkg/errors"
	"reflect"
)

var errorInterfaceType = reflect.TypeOf((*error)(nil)).Elem()

func (s *service) processMethodCall(executionContextId primitives.ExecutionContextId, instance *contractInstance, methodInfo *types.MethodInfo, args []*protocol.Argument, functionNameForErrors string) (contractOutputArgs []*protocol.Argument, contractOutputErr error, err error) {

	defer func() {
		if r := recover(); r != nil {
			contractOutputErr = errors.Errorf("%s", r)
		}
	}()

	// verify input args
	inValues, err := s.prepareMethodInputArgsForCall(executionContextId, instance, methodInfo.Implementation, args, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	// execute the call
	outValues := reflect.ValueOf(methodInfo.Implementation).Call(inValues)

	// create output args
	contractOutputArgs, contractOutputErr, err = s.createMethodOutputArgs(outValues, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	// done
	return contractOutputArgs, contractOutputErr, err
}

// Implementations are method expressions: the receiver is the contract
// singleton and the second input is the execution context, both supplied
// here; the remaining inputs are translated from the invocation arguments.
func (s *service) prepareMethodInputArgsForCall(executionContextId primitives.ExecutionContextId, instance *contractInstance, methodInstance types.MethodInstance, args []*protocol.Argument, functionNameForErrors string) ([]reflect.Value, error) {
	methodType := reflect.ValueOf(methodInstance).Type()
	if methodType.Kind() != reflect.Func || methodType.NumIn() < 2 {
		return nil, errors.Errorf("method '%s' implementation is not a valid contract method", functionNameForErrors)
	}

	res := []reflect.Value{
		reflect.ValueOf(instance.singleton),
		reflect.ValueOf(types.Context(executionContextId)),
	}

	numCallArgs := methodType.NumIn() - 2
	if len(args) != numCallArgs {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", functionNameForErrors, numCallArgs, len(args))
	}

	for i := 0; i < numCallArgs; i++ {
		arg := args[i]

		// translate argument type
		switch methodType.In(i + 2).Kind() {
		case reflect.Uint32:
			if !arg.IsTypeUint32Value() {
				return nil, errors.Errorf("method '%s' expects arg %d to be uint32 but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.Uint32Value))
		case reflect.Slice:
			if methodType.In(i+2).Elem().Kind() != reflect.Uint8 {
				return nil, errors.Errorf("method '%s' arg %d slice type is not byte", functionNameForErrors, i)
			}
			if !arg.IsTypeBytesValue() {
				return nil, errors.Errorf("method '%s' expects arg %d to be bytes but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.BytesValue))
		default:
			return nil, errors.Errorf("method '%s' expects arg %d to be a known type but it has %s", functionNameForErrors, i, arg.StringType())
		}
	}

	return res, nil
}

func (s *service) createMethodOutputArgs(outValues []reflect.Value, functionNameForErrors string) ([]*protocol.Argument, error, error) {
	if len(outValues) == 0 || !outValues[len(outValues)-1].Type().Implements(errorInterfaceType) {
		return nil, nil, errors.Errorf("method '%s' must return an error as its last output", functionNameForErrors)
	}

	var contractErr error
	if errValue := outValues[len(outValues)-1].Interface(); errValue != nil {
		contractErr = errValue.(error)
	}

	res := []*protocol.Argument{}
	for i, outValue := range outValues[:len(outValues)-1] {
		switch outValue.Kind() {
		case reflect.Uint32:
			res = append(res, protocol.Uint32Argument(uint32(outValue.Uint())))
		case reflect.Slice:
			if outValue.Type().Elem().Kind() != reflect.Uint8 {
				return nil, nil, errors.Errorf("method '%s' output arg %d slice type is not byte", functionNameForErrors, i)
			}
			res = append(res, protocol.BytesArgument(outValue.Bytes()))
		default:
			return nil, nil, errors.Errorf("method '%s' output arg %d is of unsupported type", functionNameForErrors, i)
		}
	}
	return res, contractErr, nil
}
