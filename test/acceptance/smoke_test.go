package acceptance

import (
	"context"
	"github.com/ledgernet/smoke-ledger-go/bootstrap/inprocess"
	"github.com/ledgernet/smoke-ledger-go/config"
	"github.com/ledgernet/smoke-ledger-go/services/ledger"
	"github.com/ledgernet/smoke-ledger-go/test"
	"github.com/ledgernet/smoke-ledger-go/test/builders"
	testKeys "github.com/ledgernet/smoke-ledger-go/test/crypto/keys"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func withInstance(t *testing.T, f func(ctx context.Context, instance *inprocess.Instance)) {
	test.WithContext(func(ctx context.Context) {
		instance := inprocess.NewInstance(ctx, config.ForTests(), log.DefaultTestingLogger(t))
		defer instance.GracefulShutdown()
		f(ctx, instance)
	})
}

func readValue(t *testing.T, ctx context.Context, instance *inprocess.Instance, addr []byte) uint32 {
	outputs, err := instance.Ledger().Invoke(ctx, builders.ReadInvocation(addr))
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	return outputs[0].Uint32Value
}

func TestSmokeScenario(t *testing.T) {
	withInstance(t, func(ctx context.Context, instance *inprocess.Instance) {
		userA := testKeys.Ed25519KeyPairForTests(0)
		userB := testKeys.Ed25519KeyPairForTests(1)

		outputs, err := instance.Ledger().Invoke(ctx, builders.BumpInvocation(1))
		require.NoError(t, err)
		require.EqualValues(t, 2, outputs[0].Uint32Value)

		require.EqualValues(t, 0, readValue(t, ctx, instance, builders.CallerAddressOf(userA)))

		_, err = instance.Ledger().Invoke(ctx, builders.WriteInvocation(userA, 7))
		require.NoError(t, err)
		require.EqualValues(t, 7, readValue(t, ctx, instance, builders.CallerAddressOf(userA)))

		// unsigned write carries no authorization proof at all
		unsigned := builders.Invocation().
			WithMethod("write").
			WithArgs(protocol.BytesArgument(builders.CallerAddressOf(userB)), protocol.Uint32Argument(5)).
			Build()
		_, err = instance.Ledger().Invoke(ctx, unsigned)
		require.Error(t, err)
		require.True(t, ledger.IsAuthorizationError(err), "expected an authorization error, got: %s", err)
		require.EqualValues(t, 0, readValue(t, ctx, instance, builders.CallerAddressOf(userB)))
	})
}

func TestWriteSignedByAnotherIdentityIsRejected(t *testing.T) {
	withInstance(t, func(ctx context.Context, instance *inprocess.Instance) {
		userA := testKeys.Ed25519KeyPairForTests(0)
		userB := testKeys.Ed25519KeyPairForTests(1)

		// userA signs a write against userB's record
		forged := builders.Invocation().
			WithMethod("write").
			WithArgs(protocol.BytesArgument(builders.CallerAddressOf(userB)), protocol.Uint32Argument(5)).
			SignedBy(userA).
			Build()

		_, err := instance.Ledger().Invoke(ctx, forged)
		require.Error(t, err)
		require.True(t, ledger.IsAuthorizationError(err))
		require.EqualValues(t, 0, readValue(t, ctx, instance, builders.CallerAddressOf(userB)))
	})
}

func TestTamperedSignedWriteIsRejected(t *testing.T) {
	withInstance(t, func(ctx context.Context, instance *inprocess.Instance) {
		userA := testKeys.Ed25519KeyPairForTests(0)

		signed := builders.WriteInvocation(userA, 7)
		tampered := &protocol.Invocation{
			MethodName: signed.MethodName,
			Arguments: []*protocol.Argument{
				signed.Arguments[0],
				protocol.Uint32Argument(999),
			},
			SignerPublicKey: signed.SignerPublicKey,
			Signature:       signed.Signature,
		}

		_, err := instance.Ledger().Invoke(ctx, tampered)
		require.Error(t, err)
		require.True(t, ledger.IsAuthorizationError(err))
		require.EqualValues(t, 0, readValue(t, ctx, instance, builders.CallerAddressOf(userA)))
	})
}

func TestRecordsSurviveAcrossManyInvocations(t *testing.T) {
	withInstance(t, func(ctx context.Context, instance *inprocess.Instance) {
		userA := testKeys.Ed25519KeyPairForTests(0)

		for value := uint32(1); value <= 10; value++ {
			_, err := instance.Ledger().Invoke(ctx, builders.WriteInvocation(userA, value))
			require.NoError(t, err)
		}
		require.EqualValues(t, 10, readValue(t, ctx, instance, builders.CallerAddressOf(userA)))
	})
}

func TestConcurrentWritersAreSerialized(t *testing.T) {
	withInstance(t, func(ctx context.Context, instance *inprocess.Instance) {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			signer := testKeys.Ed25519KeyPairForTests(i)
			value := uint32(i + 1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := instance.Ledger().Invoke(ctx, builders.WriteInvocation(signer, value))
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		for i := 0; i < 4; i++ {
			addr := builders.CallerAddressOf(testKeys.Ed25519KeyPairForTests(i))
			require.EqualValues(t, uint32(i+1), readValue(t, ctx, instance, addr))
		}
	})
}
