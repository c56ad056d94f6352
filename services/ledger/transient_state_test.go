package ledger

import (
	"github.com/ledgernet/smoke-ledger-go/instrumentation/metric"
	"github.com/ledgernet/smoke-ledger-go/services/statestorage/adapter/memory"
	"github.com/stretchr/testify/require"
	"testing"
)

type dirtyPair struct {
	key   string
	value []byte
}

func requireDirtyPairs(t *testing.T, s *transientState, expected []dirtyPair) {
	d := []dirtyPair{}
	s.forDirty("Contract1", func(key string, value []byte) {
		d = append(d, dirtyPair{key, value})
	})
	require.ElementsMatch(t, expected, d, "dirty keys should be equal")
}

func TestTransientStateReadMissingContract(t *testing.T) {
	s := newTransientState()

	_, found := s.getValue("Contract1", "k1")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, []dirtyPair{})
}

func TestTransientStateReadMissingKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k2", []byte{0x77, 0x88}, false)

	_, found := s.getValue("Contract1", "k1")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, []dirtyPair{})
}

func TestTransientStateWriteReadKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x77, 0x88}, false)

	v, found := s.getValue("Contract1", "k1")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x77, 0x88}, v, "value should be equal")

	requireDirtyPairs(t, s, []dirtyPair{})
}

func TestTransientStateReplaceKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x77, 0x88}, false)
	s.setValue("Contract1", "k1", []byte{0x99, 0xaa, 0xbb}, false)

	v, found := s.getValue("Contract1", "k1")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x99, 0xaa, 0xbb}, v, "value should be equal")

	requireDirtyPairs(t, s, []dirtyPair{})
}

func TestTransientStateWriteDirtyReadKeys(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x22, 0x33}, true)
	s.setValue("Contract1", "k2", []byte{0x33, 0x44}, false)
	s.setValue("Contract1", "k3", []byte{0x44, 0x55}, false)
	s.setValue("Contract1", "k3", []byte{0x55, 0x66}, true)
	s.setValue("Contract1", "k4", []byte{0x66, 0x77}, true)
	s.setValue("Contract1", "k4", []byte{0x77, 0x88}, false)

	v, found := s.getValue("Contract1", "k1")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x22, 0x33}, v, "value should be equal")

	requireDirtyPairs(t, s, []dirtyPair{
		{"k1", []byte{0x22, 0x33}},
		{"k3", []byte{0x55, 0x66}},
	})
}

func TestTransientStateCommitWritesOnlyDirtyPairs(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x22, 0x33}, true)
	s.setValue("Contract1", "k2", []byte{0x33, 0x44}, false)

	persistence := memory.NewStatePersistence(metric.NewRegistry())
	require.NoError(t, s.commitTo(persistence))

	_, found, err := persistence.Read("Contract1", "k1")
	require.NoError(t, err)
	require.True(t, found, "dirty pair was not committed")

	_, found, err = persistence.Read("Contract1", "k2")
	require.NoError(t, err)
	require.False(t, found, "clean read-cache pair leaked into persistence")
}

func TestTransientStateCommitWithNoDirtyPairsWritesNothing(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "k1", []byte{0x22, 0x33}, false)

	persistence := memory.NewStatePersistence(metric.NewRegistry())
	require.NoError(t, s.commitTo(persistence))
	require.Equal(t, "{}", persistence.Dump(), "persistence should stay empty")
}
