package types

import (
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
)

type ContractInfo struct {
	Name          primitives.ContractName
	Methods       []MethodInfo
	InitSingleton func(*BaseContract) Contract
}

type MethodInfo struct {
	Name     string
	External bool

	// RequiresAuth marks methods that mutate state on behalf of a caller
	// identity. For these methods the first argument is the authorizing
	// address, and the ledger verifies the invocation's authorization proof
	// against it before dispatching.
	RequiresAuth bool

	Implementation interface{}
}

type MethodInstance interface{}

func (c *ContractInfo) MethodInfo(methodName string) (*MethodInfo, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == methodName {
			return &c.Methods[i], true
		}
	}
	return nil, false
}
