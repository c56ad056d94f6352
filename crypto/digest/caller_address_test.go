package digest

import (
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"testing"
)

// sha256 of this key is c6b9b757741fae26a8666e34cec54f492d25201a59be2488a9b4b6b267a6e564,
// the caller address is its low 20 bytes.
var (
	somePublicKey         = "dfc06c5be24a67adee80b35ab4f147bb1a35c55ff85eda69f40ef827bddec173"
	expectedCallerAddress = "cec54f492d25201a59be2488a9b4b6b267a6e564"
)

func TestCalcCallerAddressOfEd25519PublicKey(t *testing.T) {
	publicKey, err := hex.DecodeString(somePublicKey)
	require.NoError(t, err)

	addr, err := CalcCallerAddressOfEd25519PublicKey(publicKey)
	require.NoError(t, err)
	require.Equal(t, CALLER_ADDRESS_SIZE_BYTES, len(addr), "caller address length mismatch")
	require.Equal(t, expectedCallerAddress, addr.String())
}

func TestCalcCallerAddressOfInvalidPublicKey(t *testing.T) {
	_, err := CalcCallerAddressOfEd25519PublicKey([]byte{0x01, 0x02})
	require.Error(t, err, "derivation succeeded with invalid public key")
}
