// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"github.com/ledgernet/smoke-ledger-go/bootstrap/inprocess"
	"github.com/ledgernet/smoke-ledger-go/config"
	"github.com/ledgernet/smoke-ledger-go/crypto/digest"
	"github.com/ledgernet/smoke-ledger-go/crypto/keys"
	"github.com/ledgernet/smoke-ledger-go/crypto/signature"
	"github.com/ledgernet/smoke-ledger-go/services/ledger"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/orbs-network/scribe/log"
	"os"
)

func main() {
	demo := flag.Bool("demo", false, "run a few example invocations on startup")
	flag.Parse()

	logger := log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()))

	ctx := context.Background()
	instance := inprocess.NewInstance(ctx, config.ForProduction(), logger)

	if *demo {
		runDemo(ctx, instance.Ledger(), logger)
	}

	instance.WaitUntilShutdownByOsSignal()
}

// runDemo exercises each of the three operations once with a throwaway key.
func runDemo(ctx context.Context, l ledger.Ledger, logger log.Logger) {
	keyPair, err := keys.GenerateEd25519Key()
	if err != nil {
		logger.Error("failed generating demo key", log.Error(err))
		return
	}
	addr, err := digest.CalcCallerAddressOfEd25519PublicKey(keyPair.PublicKey())
	if err != nil {
		logger.Error("failed deriving demo caller address", log.Error(err))
		return
	}

	bump := &protocol.Invocation{
		MethodName: "bump",
		Arguments:  []*protocol.Argument{protocol.Uint32Argument(41)},
	}
	if outputs, err := l.Invoke(ctx, bump); err != nil {
		logger.Error("bump failed", log.Error(err))
	} else {
		logger.Info("bump(41)", log.Uint64("result", uint64(outputs[0].Uint32Value)))
	}

	write := &protocol.Invocation{
		MethodName: "write",
		Arguments: []*protocol.Argument{
			protocol.BytesArgument(addr),
			protocol.Uint32Argument(7),
		},
	}
	sig, err := signature.SignEd25519(keyPair.PrivateKey(), digest.CalcInvocationHash(write))
	if err != nil {
		logger.Error("failed signing demo write", log.Error(err))
		return
	}
	write.SignerPublicKey = keyPair.PublicKey()
	write.Signature = sig
	if _, err := l.Invoke(ctx, write); err != nil {
		logger.Error("write failed", log.Error(err))
		return
	}

	read := &protocol.Invocation{
		MethodName: "read",
		Arguments:  []*protocol.Argument{protocol.BytesArgument(addr)},
	}
	if outputs, err := l.Invoke(ctx, read); err != nil {
		logger.Error("read failed", log.Error(err))
	} else {
		logger.Info("read back stored record", log.Stringable("caller", addr), log.Uint64("value", uint64(outputs[0].Uint32Value)))
	}
}
