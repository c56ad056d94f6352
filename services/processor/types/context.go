package types

import "github.com/ledgernet/smoke-ledger-go/types/primitives"

// Context identifies the execution context a contract method runs under.
// State SDK calls carry it back to the ledger so reads and writes land in the
// invocation's transient state.
type Context primitives.ExecutionContextId
