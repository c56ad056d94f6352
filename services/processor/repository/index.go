package repository

import (
	smokecontract "github.com/ledgernet/smoke-ledger-go/services/processor/repository/SmokeContract"
	"github.com/ledgernet/smoke-ledger-go/services/processor/types"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
)

var Contracts = map[primitives.ContractName]types.ContractInfo{
	smokecontract.CONTRACT.Name: smokecontract.CONTRACT,
	// add new prebuilt contracts here
}
