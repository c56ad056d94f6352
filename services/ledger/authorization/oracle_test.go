package authorization

import (
	"github.com/ledgernet/smoke-ledger-go/test/builders"
	testKeys "github.com/ledgernet/smoke-ledger-go/test/crypto/keys"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEd25519OracleVerifiesCorrectlySignedInvocation(t *testing.T) {
	signer := testKeys.Ed25519KeyPairForTests(0)
	invocation := builders.WriteInvocation(signer, 7)

	oracle := NewEd25519Oracle()
	require.True(t, oracle.Verifies(builders.CallerAddressOf(signer), invocation), "correctly signed invocation did not verify")
}

func TestEd25519OracleRejectsUnsignedInvocation(t *testing.T) {
	signer := testKeys.Ed25519KeyPairForTests(0)
	invocation := builders.Invocation().
		WithMethod("write").
		WithArgs(protocol.BytesArgument(builders.CallerAddressOf(signer)), protocol.Uint32Argument(7)).
		Build()

	oracle := NewEd25519Oracle()
	require.False(t, oracle.Verifies(builders.CallerAddressOf(signer), invocation), "unsigned invocation verified")
}

func TestEd25519OracleRejectsSignatureOverDifferentArguments(t *testing.T) {
	signer := testKeys.Ed25519KeyPairForTests(0)
	signed := builders.WriteInvocation(signer, 7)

	// replay the proof against an invocation with a different value
	replayed := &protocol.Invocation{
		MethodName: signed.MethodName,
		Arguments: []*protocol.Argument{
			signed.Arguments[0],
			protocol.Uint32Argument(8),
		},
		SignerPublicKey: signed.SignerPublicKey,
		Signature:       signed.Signature,
	}

	oracle := NewEd25519Oracle()
	require.False(t, oracle.Verifies(builders.CallerAddressOf(signer), replayed), "proof replayed across different arguments")
}

func TestEd25519OracleRejectsSignerMismatchingClaimedCaller(t *testing.T) {
	signer := testKeys.Ed25519KeyPairForTests(0)
	otherIdentity := testKeys.Ed25519KeyPairForTests(1)

	// signed by key pair 0 but claiming key pair 1's address
	invocation := builders.Invocation().
		WithMethod("write").
		WithArgs(protocol.BytesArgument(builders.CallerAddressOf(otherIdentity)), protocol.Uint32Argument(7)).
		SignedBy(signer).
		Build()

	oracle := NewEd25519Oracle()
	require.False(t, oracle.Verifies(builders.CallerAddressOf(otherIdentity), invocation), "signer verified on behalf of another identity")
}
